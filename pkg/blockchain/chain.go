package blockchain

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"
)

// GetBestBlockHash returns the hash of the tip of the best chain.
func (c *Client) GetBestBlockHash(ctx context.Context) (hash string, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetBestBlockHash.metric, err, started)
	}()
	err = c.get(ctx, c.endpoint(opGetBestBlockHash), &hash)
	return hash, err
}

// GetBlock returns a block by hash. Verbose defaults to true.
func (c *Client) GetBlock(ctx context.Context, blockHash string, opts ...Option) (block *Block, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetBlock.metric, err, started)
	}()

	verbose := applyOptions(opts).verboseOr(defaultBlockVerbose)
	block = &Block{}
	if err = c.get(ctx, withQuery(c.endpoint(opGetBlock, blockHash), verboseQuery(verbose)), block); err != nil {
		return nil, err
	}
	return block, nil
}

// GetBlockchainInfo returns the chain state summary.
func (c *Client) GetBlockchainInfo(ctx context.Context) (info *ChainInfo, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetBlockchainInfo.metric, err, started)
	}()

	info = &ChainInfo{}
	if err = c.get(ctx, c.endpoint(opGetBlockchainInfo), info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetBlockCount returns the height of the best chain.
func (c *Client) GetBlockCount(ctx context.Context) (count int64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetBlockCount.metric, err, started)
	}()
	err = c.get(ctx, c.endpoint(opGetBlockCount), &count)
	return count, err
}

// GetBlockHash returns the hash of the block at height. The zero Arg requests height 1; numeric
// and string heights produce the same request.
func (c *Client) GetBlockHash(ctx context.Context, height Arg) (hash string, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetBlockHash.metric, err, started)
	}()

	segment, err := height.height(opGetBlockHash.path, defaultBlockHeight)
	if err != nil {
		return "", err
	}
	err = c.get(ctx, c.endpoint(opGetBlockHash, segment), &hash)
	return hash, err
}

// GetBlockHeader looks up one header (GET) or a batch of headers (POST). Verbose defaults to
// true. A single hash yields a one-element slice.
func (c *Client) GetBlockHeader(ctx context.Context, hashes Arg, opts ...Option) (headers []BlockHeader, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetBlockHeader.metric, err, started)
	}()

	verbose := applyOptions(opts).verboseOr(defaultHeaderVerbose)
	return dispatch[BlockHeader](ctx, c, opGetBlockHeader, hashes, "hashes",
		verboseQuery(verbose), map[string]any{"verbose": verbose})
}

// GetChainTips returns every known tip of the block tree.
func (c *Client) GetChainTips(ctx context.Context) (tips []ChainTip, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetChainTips.metric, err, started)
	}()
	err = c.get(ctx, c.endpoint(opGetChainTips), &tips)
	return tips, err
}

// GetDifficulty returns the proof-of-work difficulty.
func (c *Client) GetDifficulty(ctx context.Context) (difficulty float64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetDifficulty.metric, err, started)
	}()
	err = c.get(ctx, c.endpoint(opGetDifficulty), &difficulty)
	return difficulty, err
}

// PreciousBlock treats the block as if it were received before others with the same work.
// The gateway's reply is returned undecoded.
func (c *Client) PreciousBlock(ctx context.Context, blockHash string) (res json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opPreciousBlock.metric, err, started)
	}()
	err = c.get(ctx, c.endpoint(opPreciousBlock, blockHash), &res)
	return res, err
}

// PruneBlockchain prunes the node's block files up to height and returns the height of the last
// pruned block.
func (c *Client) PruneBlockchain(ctx context.Context, height int64) (pruned int64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opPruneBlockchain.metric, err, started)
	}()
	err = c.post(ctx, c.endpoint(opPruneBlockchain, strconv.FormatInt(height, 10)), nil, &pruned)
	return pruned, err
}

// VerifyChain asks the node to verify its block database. Check level defaults to 3 and block
// count to 6.
func (c *Client) VerifyChain(ctx context.Context, opts ...Option) (ok bool, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opVerifyChain.metric, err, started)
	}()

	params := applyOptions(opts)
	query := url.Values{
		"checklevel": []string{strconv.Itoa(params.checkLevelOr(defaultCheckLevel))},
		"nblocks":    []string{strconv.Itoa(params.blockCountOr(defaultBlockCount))},
	}
	err = c.get(ctx, withQuery(c.endpoint(opVerifyChain), query), &ok)
	return ok, err
}
