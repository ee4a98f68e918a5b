package blockchain

import (
	"bytes"
	"encoding/json"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ChainInfo is the state summary reported by getBlockchainInfo.
type ChainInfo struct {
	Chain                string          `json:"chain"`
	Blocks               int64           `json:"blocks"`
	Headers              int64           `json:"headers"`
	BestBlockHash        string          `json:"bestblockhash"`
	Difficulty           float64         `json:"difficulty"`
	MedianTime           int64           `json:"mediantime"`
	VerificationProgress float64         `json:"verificationprogress"`
	ChainWork            string          `json:"chainwork"`
	Pruned               bool            `json:"pruned"`
	SoftForks            json.RawMessage `json:"softforks,omitempty"`
	Bip9SoftForks        json.RawMessage `json:"bip9_softforks,omitempty"`
}

// BestBlock parses BestBlockHash.
func (i ChainInfo) BestBlock() (*chainhash.Hash, error) {
	return chainhash.NewHashFromStr(i.BestBlockHash)
}

// BlockHeader is a header as returned by getBlockHeader. A non-verbose lookup yields only Hex.
type BlockHeader struct {
	Hash              string  `json:"hash"`
	Confirmations     int64   `json:"confirmations"`
	Height            int64   `json:"height"`
	Version           int32   `json:"version"`
	VersionHex        string  `json:"versionHex"`
	MerkleRoot        string  `json:"merkleroot"`
	Time              int64   `json:"time"`
	MedianTime        int64   `json:"mediantime"`
	Nonce             uint64  `json:"nonce"`
	Bits              string  `json:"bits"`
	Difficulty        float64 `json:"difficulty"`
	ChainWork         string  `json:"chainwork"`
	PreviousBlockHash string  `json:"previousblockhash,omitempty"`
	NextBlockHash     string  `json:"nextblockhash,omitempty"`

	Hex string `json:"-"`
}

type blockHeaderFields BlockHeader

// UnmarshalJSON accepts both the verbose object and the serialized hex string.
func (h *BlockHeader) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		*h = BlockHeader{}
		return json.Unmarshal(data, &h.Hex)
	}
	return json.Unmarshal(data, (*blockHeaderFields)(h))
}

// MarshalJSON writes back whichever form was decoded.
func (h BlockHeader) MarshalJSON() ([]byte, error) {
	if h.Hex != "" {
		return json.Marshal(h.Hex)
	}
	return json.Marshal(blockHeaderFields(h))
}

// PrevHash parses the link to the previous header; nil when the header has none.
func (h BlockHeader) PrevHash() (*chainhash.Hash, error) {
	return parseOptionalHash(h.PreviousBlockHash)
}

// NextHash parses the link to the next header; nil for the current tip.
func (h BlockHeader) NextHash() (*chainhash.Hash, error) {
	return parseOptionalHash(h.NextBlockHash)
}

// Block is the result of getBlock: Verbose for verbose lookups, Hex otherwise.
type Block struct {
	Verbose *btcjson.GetBlockVerboseResult
	Hex     string
}

// UnmarshalJSON accepts both the verbose object and the serialized hex string.
func (b *Block) UnmarshalJSON(data []byte) error {
	*b = Block{}
	if isJSONString(data) {
		return json.Unmarshal(data, &b.Hex)
	}
	b.Verbose = &btcjson.GetBlockVerboseResult{}
	return json.Unmarshal(data, b.Verbose)
}

// MarshalJSON writes back whichever form was decoded.
func (b Block) MarshalJSON() ([]byte, error) {
	if b.Verbose != nil {
		return json.Marshal(b.Verbose)
	}
	return json.Marshal(b.Hex)
}

// ChainTipStatus is the validation state of a chain tip.
type ChainTipStatus string

const (
	ChainTipActive       ChainTipStatus = "active"
	ChainTipValidFork    ChainTipStatus = "valid-fork"
	ChainTipValidHeaders ChainTipStatus = "valid-headers"
	ChainTipHeadersOnly  ChainTipStatus = "headers-only"
	ChainTipInvalid      ChainTipStatus = "invalid"
)

// ChainTip is one entry of getChainTips.
type ChainTip struct {
	Height    int64          `json:"height"`
	Hash      string         `json:"hash"`
	BranchLen int64          `json:"branchlen"`
	Status    ChainTipStatus `json:"status"`
}

// TxOut describes an unspent output as returned by getTxOut.
type TxOut struct {
	BestBlock     string                     `json:"bestblock"`
	Confirmations int64                      `json:"confirmations"`
	Value         float64                    `json:"value"`
	ScriptPubKey  btcjson.ScriptPubKeyResult `json:"scriptPubKey"`
	Version       int32                      `json:"version,omitempty"`
	Coinbase      bool                       `json:"coinbase"`
}

// Amount converts Value into base units.
func (o TxOut) Amount() (btcutil.Amount, error) {
	return btcutil.NewAmount(o.Value)
}

// MempoolInfo is the pool summary reported by getMempoolInfo.
type MempoolInfo struct {
	Size          int64   `json:"size"`
	Bytes         int64   `json:"bytes"`
	Usage         int64   `json:"usage"`
	MaxMempool    int64   `json:"maxmempool"`
	MempoolMinFee float64 `json:"mempoolminfee"`
}

// MempoolEntry describes a single mempool transaction.
type MempoolEntry = btcjson.GetMempoolEntryResult

// MempoolListing is a set of mempool transactions: TxIDs for non-verbose queries, Entries keyed
// by txid for verbose ones.
type MempoolListing struct {
	TxIDs   []string
	Entries map[string]MempoolEntry
}

// UnmarshalJSON accepts both the txid array and the txid-keyed object.
func (l *MempoolListing) UnmarshalJSON(data []byte) error {
	*l = MempoolListing{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return json.Unmarshal(trimmed, &l.Entries)
	}
	return json.Unmarshal(trimmed, &l.TxIDs)
}

// MarshalJSON writes back whichever form was decoded.
func (l MempoolListing) MarshalJSON() ([]byte, error) {
	if l.Entries != nil {
		return json.Marshal(l.Entries)
	}
	if l.TxIDs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.TxIDs)
}

// Proof is a serialized merkle inclusion proof. The client never interprets it.
type Proof string

func isJSONString(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func parseOptionalHash(s string) (*chainhash.Hash, error) {
	if s == "" {
		return nil, nil
	}
	return chainhash.NewHashFromStr(s)
}
