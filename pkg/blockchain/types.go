package blockchain

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Transport performs a single HTTP exchange against an absolute URL and decodes the JSON
	// response into out.
	Transport interface {
		Get(ctx context.Context, url string, out any) error
		Post(ctx context.Context, url string, body any, out any) error
	}

	// ResponseError is implemented by transport errors raised for a gateway response with a
	// non-success status. Payload returns the response body as received.
	ResponseError interface {
		error
		StatusCode() int
		Payload() []byte
	}

	// RPCMetrics records metrics for gateway operations.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
