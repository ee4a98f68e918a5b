package blockchain

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

const literalTxOutIndex = "n"

// GetTxOut returns an unspent transaction output. found is false when the output does not exist
// or is already spent. Include-mempool defaults to true.
func (c *Client) GetTxOut(ctx context.Context, txid string, n uint32, opts ...Option) (out *TxOut, found bool, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetTxOut.metric, err, started)
	}()

	index := strconv.FormatUint(uint64(n), 10)
	if c.literalTxOutIndex {
		index = literalTxOutIndex
	}
	includeMempool := applyOptions(opts).includeMempoolOr(defaultIncludeMempool)
	query := url.Values{"include_mempool": []string{strconv.FormatBool(includeMempool)}}

	if err = c.get(ctx, withQuery(c.endpoint(opGetTxOut, txid, index), query), &out); err != nil {
		return nil, false, err
	}
	return out, out != nil, nil
}

// GetTxOutProof returns the inclusion proof of one transaction (GET) or of each transaction of a
// batch (POST).
func (c *Client) GetTxOutProof(ctx context.Context, txids Arg) (proofs []Proof, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetTxOutProof.metric, err, started)
	}()
	return dispatch[Proof](ctx, c, opGetTxOutProof, txids, "txids", nil, nil)
}

// VerifyTxOutProof has the gateway verify one proof (GET) or each proof of a batch (POST) and
// returns the txids every proof commits to.
func (c *Client) VerifyTxOutProof(ctx context.Context, proofs Arg) (txids [][]string, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opVerifyTxOutProof.metric, err, started)
	}()
	return dispatch[[]string](ctx, c, opVerifyTxOutProof, proofs, "proofs", nil, nil)
}
