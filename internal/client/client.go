// Package client fetches the sentiment summary from the FinPulse API.
package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"finpulse/internal/jsonutil"
	"finpulse/internal/summary"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultTimeout bounds a single summary request.
const DefaultTimeout = 5 * time.Second

type requestIDKey struct{}

// WithRequestID attaches the id Fetch sends in RequestIDHeader.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the id set by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDHeader carries a per-request id so server logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("summary endpoint returned %s", e.Status)
}

// Client performs single, unretried GETs against the summary endpoint.
type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
	tracer  oteltrace.Tracer
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTracer sets the tracer used for fetch spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for summaryURL. A non-positive timeout uses DefaultTimeout.
func New(summaryURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		url:     summaryURL,
		timeout: timeout,
		http:    &http.Client{},
		tracer:  noop.NewTracerProvider().Tracer("finpulse/client"),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint this client polls.
func (c *Client) URL() string { return c.url }

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Fetch performs one GET. Timeouts, transport errors, non-2xx responses
// and undecodable bodies are all returned as errors.
func (c *Client) Fetch(ctx context.Context) (summary.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := RequestIDFrom(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx, span := c.tracer.Start(ctx, "summary.fetch",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.url", c.url),
			attribute.String("finpulse.request_id", requestID),
		),
	)
	defer span.End()

	s, err := c.do(ctx, requestID, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("finpulse.outcome", "error"))
		c.logger.Debug("summary fetch failed", "url", c.url, "request_id", requestID, "error", err)
		return summary.Summary{}, err
	}
	span.SetAttributes(
		attribute.String("finpulse.outcome", "ok"),
		attribute.Int("finpulse.total_analyzed", s.TotalAnalyzed),
	)
	return s, nil
}

func (c *Client) do(ctx context.Context, requestID string, span oteltrace.Span) (summary.Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("building summary request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("requesting %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, jsonutil.MaxBodyBytes))
		return summary.Summary{}, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var s summary.Summary
	if err := jsonutil.DecodeWithContext(resp.Body, &s, "decoding summary"); err != nil {
		return summary.Summary{}, err
	}
	return s, nil
}
