package blockchain

import "time"

const (
	defaultBlockVerbose   = true
	defaultHeaderVerbose  = true
	defaultMempoolVerbose = false
	defaultIncludeMempool = true
	defaultCheckLevel     = 3
	defaultBlockCount     = 6
	defaultBlockHeight    = "1"
)

// Option adjusts an optional argument of a single call. Options an operation does not take are
// ignored.
type Option func(*callParams)

type callParams struct {
	verbose        *bool
	includeMempool *bool
	checkLevel     *int
	blockCount     *int
}

// Verbose sets the verbose flag of block, header and mempool queries.
func Verbose(v bool) Option {
	return func(p *callParams) { p.verbose = &v }
}

// IncludeMempool sets whether GetTxOut considers mempool outputs.
func IncludeMempool(v bool) Option {
	return func(p *callParams) { p.includeMempool = &v }
}

// CheckLevel sets the thoroughness of VerifyChain.
func CheckLevel(level int) Option {
	return func(p *callParams) { p.checkLevel = &level }
}

// BlockCount sets the number of blocks VerifyChain checks.
func BlockCount(n int) Option {
	return func(p *callParams) { p.blockCount = &n }
}

func applyOptions(opts []Option) callParams {
	var p callParams
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

func (p callParams) verboseOr(def bool) bool {
	if p.verbose == nil {
		return def
	}
	return *p.verbose
}

func (p callParams) includeMempoolOr(def bool) bool {
	if p.includeMempool == nil {
		return def
	}
	return *p.includeMempool
}

func (p callParams) checkLevelOr(def int) int {
	if p.checkLevel == nil {
		return def
	}
	return *p.checkLevel
}

func (p callParams) blockCountOr(def int) int {
	if p.blockCount == nil {
		return def
	}
	return *p.blockCount
}

// ClientOption configures a Client at construction.
type ClientOption func(*Client)

// WithMetrics observes every operation with m.
func WithMetrics(m RPCMetrics) ClientOption {
	return func(c *Client) {
		if m != nil {
			c.rpcMetrics = m
		}
	}
}

// WithLiteralTxOutIndex makes GetTxOut request the literal path segment "n" instead of the output
// index, matching gateways built against the legacy route.
func WithLiteralTxOutIndex() ClientOption {
	return func(c *Client) { c.literalTxOutIndex = true }
}

type noopMetrics struct{}

func (noopMetrics) Observe(string, error, time.Time) {}
