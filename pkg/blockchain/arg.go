package blockchain

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

type argKind uint8

const (
	argAbsent argKind = iota
	argScalar
	argBatch
	argInvalid
)

// Arg is the argument of an operation that takes either one value or a list of values.
// The zero Arg means "not supplied".
type Arg struct {
	kind    argKind
	numeric bool
	scalar  string
	batch   []string
	raw     any
}

// ID returns a single identifier argument.
func ID(id string) Arg {
	return Arg{kind: argScalar, scalar: id, raw: id}
}

// IDs returns a batch argument. Order and duplicates are kept.
func IDs(ids ...string) Arg {
	batch := make([]string, len(ids))
	copy(batch, ids)
	return Arg{kind: argBatch, batch: batch, raw: ids}
}

// Height returns a block height argument.
func Height(h int64) Arg {
	return Arg{kind: argScalar, numeric: true, scalar: strconv.FormatInt(h, 10), raw: h}
}

// ArgOf resolves a dynamically typed value into an Arg. Values that are neither a single
// string-like value nor a list of strings resolve to an invalid Arg, which every operation
// rejects with ErrInvalidArgument before reaching the network.
func ArgOf(v any) Arg {
	switch value := v.(type) {
	case nil:
		return Arg{}
	case Arg:
		return value
	case string:
		return ID(value)
	case chainhash.Hash:
		return Arg{kind: argScalar, scalar: value.String(), raw: v}
	case *chainhash.Hash:
		if value == nil {
			return invalidArg(v)
		}
		return Arg{kind: argScalar, scalar: value.String(), raw: v}
	case []string:
		return IDs(value...)
	case []chainhash.Hash:
		batch := make([]string, len(value))
		for i := range value {
			batch[i] = value[i].String()
		}
		return Arg{kind: argBatch, batch: batch, raw: v}
	case []any:
		batch := make([]string, len(value))
		for i, item := range value {
			s, ok := item.(string)
			if !ok {
				return invalidArg(v)
			}
			batch[i] = s
		}
		return Arg{kind: argBatch, batch: batch, raw: v}
	case int:
		return numericArg(strconv.FormatInt(int64(value), 10), v)
	case int8:
		return numericArg(strconv.FormatInt(int64(value), 10), v)
	case int16:
		return numericArg(strconv.FormatInt(int64(value), 10), v)
	case int32:
		return numericArg(strconv.FormatInt(int64(value), 10), v)
	case int64:
		return numericArg(strconv.FormatInt(value, 10), v)
	case uint:
		return numericArg(strconv.FormatUint(uint64(value), 10), v)
	case uint8:
		return numericArg(strconv.FormatUint(uint64(value), 10), v)
	case uint16:
		return numericArg(strconv.FormatUint(uint64(value), 10), v)
	case uint32:
		return numericArg(strconv.FormatUint(uint64(value), 10), v)
	case uint64:
		return numericArg(strconv.FormatUint(value, 10), v)
	default:
		return invalidArg(v)
	}
}

func numericArg(s string, raw any) Arg {
	return Arg{kind: argScalar, numeric: true, scalar: s, raw: raw}
}

func invalidArg(raw any) Arg {
	return Arg{kind: argInvalid, raw: raw}
}

// IsBatch reports whether the argument carries a list of values.
func (a Arg) IsBatch() bool {
	return a.kind == argBatch
}

// String implements fmt.Stringer.
func (a Arg) String() string {
	switch a.kind {
	case argAbsent:
		return "<absent>"
	case argScalar:
		return a.scalar
	case argBatch:
		return fmt.Sprintf("%v", a.batch)
	default:
		return fmt.Sprintf("<invalid %T>", a.raw)
	}
}

// identifiers resolves an argument of a hash, txid or proof operation.
func (a Arg) identifiers(operation string) (scalar string, batch []string, err error) {
	switch {
	case a.kind == argScalar && !a.numeric:
		return a.scalar, nil, nil
	case a.kind == argBatch:
		return "", a.batch, nil
	default:
		return "", nil, &InvalidArgumentError{Operation: operation, Value: a.raw}
	}
}

// height resolves a height argument into its path segment.
func (a Arg) height(operation, def string) (string, error) {
	switch a.kind {
	case argAbsent:
		return def, nil
	case argScalar:
		return a.scalar, nil
	default:
		return "", &InvalidArgumentError{Operation: operation, Value: a.raw}
	}
}
