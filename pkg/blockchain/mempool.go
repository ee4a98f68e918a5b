package blockchain

import (
	"context"
	"time"
)

// GetMempoolAncestors returns the in-mempool ancestors of one transaction (GET) or of each
// transaction of a batch (POST). Verbose defaults to false.
func (c *Client) GetMempoolAncestors(ctx context.Context, txids Arg, opts ...Option) (res []MempoolListing, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetMempoolAncestors.metric, err, started)
	}()
	return c.mempoolRelatives(ctx, opGetMempoolAncestors, txids, opts)
}

// GetMempoolDescendants returns the in-mempool descendants of one transaction (GET) or of each
// transaction of a batch (POST). Verbose defaults to false.
func (c *Client) GetMempoolDescendants(ctx context.Context, txids Arg, opts ...Option) (res []MempoolListing, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetMempoolDescendants.metric, err, started)
	}()
	return c.mempoolRelatives(ctx, opGetMempoolDescendants, txids, opts)
}

func (c *Client) mempoolRelatives(ctx context.Context, op operation, txids Arg, opts []Option) ([]MempoolListing, error) {
	verbose := applyOptions(opts).verboseOr(defaultMempoolVerbose)
	return dispatch[MempoolListing](ctx, c, op, txids, "txids",
		verboseQuery(verbose), map[string]any{"verbose": verbose})
}

// GetMempoolEntry returns the mempool data of one transaction (GET) or of a batch (POST).
func (c *Client) GetMempoolEntry(ctx context.Context, txids Arg) (entries []MempoolEntry, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetMempoolEntry.metric, err, started)
	}()
	return dispatch[MempoolEntry](ctx, c, opGetMempoolEntry, txids, "txids", nil, nil)
}

// GetMempoolInfo returns the mempool summary.
func (c *Client) GetMempoolInfo(ctx context.Context) (info *MempoolInfo, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetMempoolInfo.metric, err, started)
	}()

	info = &MempoolInfo{}
	if err = c.get(ctx, c.endpoint(opGetMempoolInfo), info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetRawMempool lists every mempool transaction. Verbose defaults to false.
func (c *Client) GetRawMempool(ctx context.Context, opts ...Option) (listing *MempoolListing, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(opGetRawMempool.metric, err, started)
	}()

	verbose := applyOptions(opts).verboseOr(defaultMempoolVerbose)
	listing = &MempoolListing{}
	if err = c.get(ctx, withQuery(c.endpoint(opGetRawMempool), verboseQuery(verbose)), listing); err != nil {
		return nil, err
	}
	return listing, nil
}
