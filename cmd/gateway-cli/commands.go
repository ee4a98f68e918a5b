package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-gateway-client/internal/headers"
	"github.com/goodnatureofminers/blockinsight7000-gateway-client/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-gateway-client/internal/watcher"
	"github.com/goodnatureofminers/blockinsight7000-gateway-client/pkg/blockchain"
	"github.com/goodnatureofminers/blockinsight7000-gateway-client/pkg/safe"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type env struct {
	client  *blockchain.Client
	network string
	logger  *zap.Logger
	out     io.Writer
}

func (e *env) print(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type command interface {
	run(ctx context.Context, e *env) error
}

func registerCommands(parser *flags.Parser) (map[string]command, error) {
	table := []struct {
		name  string
		short string
		cmd   command
	}{
		{"best-block-hash", "Hash of the best block", &bestBlockHashCommand{}},
		{"block", "Block by hash", &blockCommand{}},
		{"blockchain-info", "Chain state summary", &blockchainInfoCommand{}},
		{"block-count", "Height of the best chain", &blockCountCommand{}},
		{"block-hash", "Hash of the block at a height", &blockHashCommand{}},
		{"block-header", "One or more block headers", &blockHeaderCommand{}},
		{"chain-tips", "Every known chain tip", &chainTipsCommand{}},
		{"difficulty", "Proof-of-work difficulty", &difficultyCommand{}},
		{"mempool-ancestors", "In-mempool ancestors of transactions", &mempoolRelativesCommand{descendants: false}},
		{"mempool-descendants", "In-mempool descendants of transactions", &mempoolRelativesCommand{descendants: true}},
		{"mempool-entry", "Mempool data of transactions", &mempoolEntryCommand{}},
		{"mempool-info", "Mempool summary", &mempoolInfoCommand{}},
		{"raw-mempool", "Every mempool transaction", &rawMempoolCommand{}},
		{"txout", "Unspent transaction output", &txOutCommand{}},
		{"txout-proof", "Inclusion proofs of transactions", &txOutProofCommand{}},
		{"verify-txout-proof", "Transactions committed to by proofs", &verifyTxOutProofCommand{}},
		{"precious-block", "Prefer a block among equal-work tips", &preciousBlockCommand{}},
		{"prune-blockchain", "Prune block files up to a height", &pruneBlockchainCommand{}},
		{"verify-chain", "Verify the block database", &verifyChainCommand{}},
		{"header-range", "Headers for a range of heights", &headerRangeCommand{}},
		{"watch", "Follow the best chain tip", &watchCommand{}},
	}

	commands := make(map[string]command, len(table))
	for _, c := range table {
		if _, err := parser.AddCommand(c.name, c.short, c.short+".", c.cmd); err != nil {
			return nil, fmt.Errorf("add command %s: %w", c.name, err)
		}
		commands[c.name] = c.cmd
	}
	return commands, nil
}

// identifiers sends a single value as a lookup and several values, or any value with --batch,
// as a batch.
func identifiers(values []string, batch bool) blockchain.Arg {
	if len(values) == 1 && !batch {
		return blockchain.ID(values[0])
	}
	return blockchain.IDs(values...)
}

type bestBlockHashCommand struct{}

func (c *bestBlockHashCommand) run(ctx context.Context, e *env) error {
	hash, err := e.client.GetBestBlockHash(ctx)
	if err != nil {
		return err
	}
	return e.print(hash)
}

type blockCommand struct {
	Raw  bool `long:"raw" description:"return the serialized block"`
	Args struct {
		Hash string `positional-arg-name:"hash"`
	} `positional-args:"yes" required:"yes"`
}

func (c *blockCommand) run(ctx context.Context, e *env) error {
	block, err := e.client.GetBlock(ctx, c.Args.Hash, blockchain.Verbose(!c.Raw))
	if err != nil {
		return err
	}
	return e.print(block)
}

type blockchainInfoCommand struct{}

func (c *blockchainInfoCommand) run(ctx context.Context, e *env) error {
	info, err := e.client.GetBlockchainInfo(ctx)
	if err != nil {
		return err
	}
	return e.print(info)
}

type blockCountCommand struct{}

func (c *blockCountCommand) run(ctx context.Context, e *env) error {
	count, err := e.client.GetBlockCount(ctx)
	if err != nil {
		return err
	}
	return e.print(count)
}

type blockHashCommand struct {
	Args struct {
		Height string `positional-arg-name:"height" description:"block height, defaults to 1"`
	} `positional-args:"yes"`
}

func (c *blockHashCommand) run(ctx context.Context, e *env) error {
	var height blockchain.Arg
	if c.Args.Height != "" {
		h, err := strconv.ParseInt(c.Args.Height, 10, 64)
		if err != nil {
			return fmt.Errorf("parse height %q: %w", c.Args.Height, err)
		}
		height = blockchain.Height(h)
	}
	hash, err := e.client.GetBlockHash(ctx, height)
	if err != nil {
		return err
	}
	return e.print(hash)
}

type blockHeaderCommand struct {
	Raw   bool `long:"raw" description:"return serialized headers"`
	Batch bool `long:"batch" description:"send a batch request even for a single hash"`
	Args  struct {
		Hashes []string `positional-arg-name:"hash" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *blockHeaderCommand) run(ctx context.Context, e *env) error {
	hdrs, err := e.client.GetBlockHeader(ctx, identifiers(c.Args.Hashes, c.Batch), blockchain.Verbose(!c.Raw))
	if err != nil {
		return err
	}
	return e.print(hdrs)
}

type chainTipsCommand struct{}

func (c *chainTipsCommand) run(ctx context.Context, e *env) error {
	tips, err := e.client.GetChainTips(ctx)
	if err != nil {
		return err
	}
	return e.print(tips)
}

type difficultyCommand struct{}

func (c *difficultyCommand) run(ctx context.Context, e *env) error {
	difficulty, err := e.client.GetDifficulty(ctx)
	if err != nil {
		return err
	}
	return e.print(difficulty)
}

type mempoolRelativesCommand struct {
	Verbose bool `long:"verbose" description:"return mempool entries instead of txids"`
	Batch   bool `long:"batch" description:"send a batch request even for a single txid"`
	Args    struct {
		TxIDs []string `positional-arg-name:"txid" required:"1"`
	} `positional-args:"yes" required:"yes"`

	descendants bool
}

func (c *mempoolRelativesCommand) run(ctx context.Context, e *env) error {
	lookup := e.client.GetMempoolAncestors
	if c.descendants {
		lookup = e.client.GetMempoolDescendants
	}
	res, err := lookup(ctx, identifiers(c.Args.TxIDs, c.Batch), blockchain.Verbose(c.Verbose))
	if err != nil {
		return err
	}
	return e.print(res)
}

type mempoolEntryCommand struct {
	Batch bool `long:"batch" description:"send a batch request even for a single txid"`
	Args  struct {
		TxIDs []string `positional-arg-name:"txid" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *mempoolEntryCommand) run(ctx context.Context, e *env) error {
	entries, err := e.client.GetMempoolEntry(ctx, identifiers(c.Args.TxIDs, c.Batch))
	if err != nil {
		return err
	}
	return e.print(entries)
}

type mempoolInfoCommand struct{}

func (c *mempoolInfoCommand) run(ctx context.Context, e *env) error {
	info, err := e.client.GetMempoolInfo(ctx)
	if err != nil {
		return err
	}
	return e.print(info)
}

type rawMempoolCommand struct {
	Verbose bool `long:"verbose" description:"return mempool entries keyed by txid"`
}

func (c *rawMempoolCommand) run(ctx context.Context, e *env) error {
	listing, err := e.client.GetRawMempool(ctx, blockchain.Verbose(c.Verbose))
	if err != nil {
		return err
	}
	return e.print(listing)
}

type txOutCommand struct {
	ExcludeMempool bool `long:"exclude-mempool" description:"ignore outputs created by mempool transactions"`
	Args           struct {
		TxID  string `positional-arg-name:"txid"`
		Index int64  `positional-arg-name:"n"`
	} `positional-args:"yes" required:"yes"`
}

func (c *txOutCommand) run(ctx context.Context, e *env) error {
	n, err := safe.Uint32(c.Args.Index)
	if err != nil {
		return fmt.Errorf("output index: %w", err)
	}
	out, found, err := e.client.GetTxOut(ctx, c.Args.TxID, n, blockchain.IncludeMempool(!c.ExcludeMempool))
	if err != nil {
		return err
	}
	if !found {
		e.logger.Info("output not found or spent", zap.String("txid", c.Args.TxID), zap.Uint32("n", n))
		return e.print(nil)
	}
	return e.print(out)
}

type txOutProofCommand struct {
	Batch bool `long:"batch" description:"send a batch request even for a single txid"`
	Args  struct {
		TxIDs []string `positional-arg-name:"txid" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *txOutProofCommand) run(ctx context.Context, e *env) error {
	proofs, err := e.client.GetTxOutProof(ctx, identifiers(c.Args.TxIDs, c.Batch))
	if err != nil {
		return err
	}
	return e.print(proofs)
}

type verifyTxOutProofCommand struct {
	Batch bool `long:"batch" description:"send a batch request even for a single proof"`
	Args  struct {
		Proofs []string `positional-arg-name:"proof" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *verifyTxOutProofCommand) run(ctx context.Context, e *env) error {
	txids, err := e.client.VerifyTxOutProof(ctx, identifiers(c.Args.Proofs, c.Batch))
	if err != nil {
		return err
	}
	return e.print(txids)
}

type preciousBlockCommand struct {
	Args struct {
		Hash string `positional-arg-name:"hash"`
	} `positional-args:"yes" required:"yes"`
}

func (c *preciousBlockCommand) run(ctx context.Context, e *env) error {
	res, err := e.client.PreciousBlock(ctx, c.Args.Hash)
	if err != nil {
		return err
	}
	return e.print(res)
}

type pruneBlockchainCommand struct {
	Args struct {
		Height int64 `positional-arg-name:"height"`
	} `positional-args:"yes" required:"yes"`
}

func (c *pruneBlockchainCommand) run(ctx context.Context, e *env) error {
	pruned, err := e.client.PruneBlockchain(ctx, c.Args.Height)
	if err != nil {
		return err
	}
	return e.print(pruned)
}

type verifyChainCommand struct {
	CheckLevel int `long:"check-level" description:"thoroughness of the check, 0 to 4" default:"3"`
	NBlocks    int `long:"nblocks" description:"number of blocks to check, 0 for all" default:"6"`
}

func (c *verifyChainCommand) run(ctx context.Context, e *env) error {
	ok, err := e.client.VerifyChain(ctx, blockchain.CheckLevel(c.CheckLevel), blockchain.BlockCount(c.NBlocks))
	if err != nil {
		return err
	}
	return e.print(ok)
}

type headerRangeCommand struct {
	From    uint64 `long:"from" description:"first height" required:"true"`
	To      uint64 `long:"to" description:"last height, inclusive" required:"true"`
	Workers int    `long:"workers" description:"concurrent height lookups" default:"8"`
}

func (c *headerRangeCommand) run(ctx context.Context, e *env) error {
	fetcher, err := headers.NewRangeFetcher(e.client, c.Workers, e.logger.Named("header-range"))
	if err != nil {
		return err
	}
	hdrs, err := fetcher.Fetch(ctx, c.From, c.To)
	if err != nil {
		return err
	}
	return e.print(hdrs)
}

type watchCommand struct {
	Interval    time.Duration `long:"interval" env:"GATEWAY_WATCH_INTERVAL" description:"poll interval" default:"10s"`
	MetricsAddr string        `long:"metrics-addr" env:"GATEWAY_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func (c *watchCommand) run(ctx context.Context, e *env) error {
	startMetricsServer(ctx, c.MetricsAddr, e.logger)

	w, err := watcher.NewTipWatcher(
		e.client,
		metrics.NewTipWatcher(e.network),
		c.Interval,
		e.logger.Named("watcher"),
		func(tip watcher.Tip) {
			if err := e.print(tip); err != nil {
				e.logger.Warn("print tip failed", zap.Error(err))
			}
		},
	)
	if err != nil {
		return err
	}
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
