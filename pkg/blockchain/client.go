// Package blockchain is a typed client for the blockchain endpoints of a REST gateway that fronts a
// full node. Every operation issues exactly one HTTP exchange through a Transport and returns the
// decoded response or an error normalized by the client.
package blockchain

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const resourcePath = "blockchain/"

type operation struct {
	path   string
	metric string
}

var (
	opGetBestBlockHash      = operation{path: "getBestBlockHash", metric: "get_best_block_hash"}
	opGetBlock              = operation{path: "getBlock", metric: "get_block"}
	opGetBlockchainInfo     = operation{path: "getBlockchainInfo", metric: "get_blockchain_info"}
	opGetBlockCount         = operation{path: "getBlockCount", metric: "get_block_count"}
	opGetBlockHash          = operation{path: "getBlockHash", metric: "get_block_hash"}
	opGetBlockHeader        = operation{path: "getBlockHeader", metric: "get_block_header"}
	opGetChainTips          = operation{path: "getChainTips", metric: "get_chain_tips"}
	opGetDifficulty         = operation{path: "getDifficulty", metric: "get_difficulty"}
	opGetMempoolAncestors   = operation{path: "getMempoolAncestors", metric: "get_mempool_ancestors"}
	opGetMempoolDescendants = operation{path: "getMempoolDescendants", metric: "get_mempool_descendants"}
	opGetMempoolEntry       = operation{path: "getMempoolEntry", metric: "get_mempool_entry"}
	opGetMempoolInfo        = operation{path: "getMempoolInfo", metric: "get_mempool_info"}
	opGetRawMempool         = operation{path: "getRawMempool", metric: "get_raw_mempool"}
	opGetTxOut              = operation{path: "getTxOut", metric: "get_tx_out"}
	opGetTxOutProof         = operation{path: "getTxOutProof", metric: "get_tx_out_proof"}
	opPreciousBlock         = operation{path: "preciousBlock", metric: "precious_block"}
	opPruneBlockchain       = operation{path: "pruneBlockchain", metric: "prune_blockchain"}
	opVerifyChain           = operation{path: "verifyChain", metric: "verify_chain"}
	opVerifyTxOutProof      = operation{path: "verifyTxOutProof", metric: "verify_tx_out_proof"}
)

// Client issues blockchain queries against a gateway root. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	root              string
	transport         Transport
	rpcMetrics        RPCMetrics
	literalTxOutIndex bool
}

// New constructs a Client for the gateway rooted at root, e.g. "https://rest.example.com/v2/".
func New(root string, transport Transport, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("gateway root url is required")
	}
	parsed, err := url.Parse(root)
	if err != nil {
		return nil, fmt.Errorf("parse gateway root url: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("gateway root url %q must be absolute", root)
	}
	if transport == nil {
		return nil, errors.New("transport is required")
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}

	c := &Client{
		root:       root,
		transport:  transport,
		rpcMetrics: noopMetrics{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Root returns the gateway root the client was built with.
func (c *Client) Root() string {
	return c.root
}

func (c *Client) endpoint(op operation, segments ...string) string {
	var b strings.Builder
	b.WriteString(c.root)
	b.WriteString(resourcePath)
	b.WriteString(op.path)
	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(segment))
	}
	return b.String()
}

func withQuery(endpoint string, query url.Values) string {
	if len(query) == 0 {
		return endpoint
	}
	return endpoint + "?" + query.Encode()
}

func verboseQuery(verbose bool) url.Values {
	return url.Values{"verbose": []string{strconv.FormatBool(verbose)}}
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	return normalizeError(c.transport.Get(ctx, endpoint, out))
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	return normalizeError(c.transport.Post(ctx, endpoint, body, out))
}

// dispatch sends a scalar argument as GET <op>/<id>?<query> and a batch argument as POST <op>
// with {field: ids} merged into extra. Both forms decode into a slice; a scalar response is the
// single element.
func dispatch[T any](
	ctx context.Context,
	c *Client,
	op operation,
	arg Arg,
	field string,
	query url.Values,
	extra map[string]any,
) ([]T, error) {
	scalar, batch, err := arg.identifiers(op.path)
	if err != nil {
		return nil, err
	}

	if !arg.IsBatch() {
		var one T
		if err := c.get(ctx, withQuery(c.endpoint(op, scalar), query), &one); err != nil {
			return nil, err
		}
		return []T{one}, nil
	}

	body := make(map[string]any, len(extra)+1)
	for k, v := range extra {
		body[k] = v
	}
	body[field] = batch

	var many []T
	if err := c.post(ctx, c.endpoint(op), body, &many); err != nil {
		return nil, err
	}
	return many, nil
}
