// Package transport implements the HTTP exchange used by the gateway client: one JSON request,
// one JSON response, no retries.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	tracerName         = "blockinsight7000/gateway-transport"
	defaultDialTimeout = 10 * time.Second
)

// Options configures the HTTP transport. Zero values mean no limit.
type Options struct {
	// Timeout bounds a whole exchange including reading the body.
	Timeout     time.Duration
	DialTimeout time.Duration
	// MaxConnsPerHost limits concurrent connections to the gateway.
	MaxConnsPerHost int
	// RequestsPerSecond caps the outgoing request rate.
	RequestsPerSecond int
}

// ResponseError is returned when the gateway answers with a non-2xx status.
type ResponseError struct {
	Status int
	Body   []byte
}

func (e *ResponseError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("gateway responded with status %d", e.Status)
	}
	return fmt.Sprintf("gateway responded with status %d: %s", e.Status, bytes.TrimSpace(e.Body))
}

// StatusCode returns the HTTP status of the response.
func (e *ResponseError) StatusCode() int {
	return e.Status
}

// Payload returns the response body as received.
func (e *ResponseError) Payload() []byte {
	return e.Body
}

// HTTP sends JSON requests over net/http.
type HTTP struct {
	client *http.Client
	rl     ratelimit.Limiter
	tracer trace.Tracer
	logger *zap.Logger
}

// NewHTTP constructs an HTTP transport.
func NewHTTP(opts Options, logger *zap.Logger) *HTTP {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}

	rl := ratelimit.NewUnlimited()
	if opts.RequestsPerSecond > 0 {
		rl = ratelimit.New(opts.RequestsPerSecond)
	}

	return &HTTP{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: opts.DialTimeout,
				}).DialContext,
				MaxConnsPerHost: opts.MaxConnsPerHost,
			},
		},
		rl:     rl,
		tracer: otel.Tracer(tracerName),
		logger: logger,
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (t *HTTP) Get(ctx context.Context, url string, out any) error {
	return t.do(ctx, http.MethodGet, url, nil, out)
}

// Post issues a POST request with body encoded as JSON and decodes the JSON response into out.
// A nil body sends an empty request.
func (t *HTTP) Post(ctx context.Context, url string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}
	return t.do(ctx, http.MethodPost, url, payload, out)
}

func (t *HTTP) do(ctx context.Context, method, url string, payload []byte, out any) (err error) {
	ctx, span := t.tracer.Start(ctx, "gateway."+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.url", url),
		),
	)
	started := time.Now()
	status := 0
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		t.logger.Debug("gateway exchange",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(started)),
			zap.Error(err),
		)
	}()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	t.rl.Take()
	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	status = resp.StatusCode
	span.SetAttributes(attribute.Int("http.status_code", status))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("read error response (status %d): %w", resp.StatusCode, readErr)
		}
		return &ResponseError{Status: resp.StatusCode, Body: respBody}
	}

	if out == nil {
		_, err = io.Copy(io.Discard, resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
