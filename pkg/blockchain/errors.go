package blockchain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError is returned before any network call when an operation receives a value
// that is neither a single identifier nor a list of identifiers.
type InvalidArgumentError struct {
	Operation string
	Value     any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: input must be a string or a list of strings, got %T", e.Operation, e.Value)
}

// Is reports ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// GatewayError carries the error payload returned by the gateway. Payload is the response body
// exactly as received; Code and Message are filled when the payload is an object that has them.
type GatewayError struct {
	StatusCode int
	Code       int
	Message    string
	Payload    json.RawMessage
}

func (e *GatewayError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("gateway error %d: %s", e.Code, e.Message)
	default:
		return fmt.Sprintf("gateway error (status %d): %s", e.StatusCode, string(e.Payload))
	}
}

// Fields returns the top-level fields of an object payload, or nil for any other payload.
func (e *GatewayError) Fields() map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(e.Payload, &fields); err != nil {
		return nil
	}
	return fields
}

// normalizeError maps a transport outcome onto the client's error contract: gateway payloads
// become *GatewayError, everything else is returned unchanged.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}

	var respErr ResponseError
	if !errors.As(err, &respErr) {
		return err
	}

	payload := bytes.TrimSpace(respErr.Payload())
	if len(payload) == 0 || !json.Valid(payload) {
		return err
	}

	gwErr := &GatewayError{
		StatusCode: respErr.StatusCode(),
		Payload:    append(json.RawMessage(nil), respErr.Payload()...),
	}
	if fields := gwErr.Fields(); fields != nil {
		var code int
		if json.Unmarshal(fields["code"], &code) == nil {
			gwErr.Code = code
		}
		gwErr.Message = stringField(fields, "message")
		if gwErr.Message == "" {
			gwErr.Message = stringField(fields, "error")
		}
	}
	return gwErr
}

// stringField decodes fields[key] as a string; any other value yields "".
func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if err := json.Unmarshal(fields[key], &s); err != nil {
		return ""
	}
	return s
}
