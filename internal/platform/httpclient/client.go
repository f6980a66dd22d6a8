// Package httpclient is the outbound HTTP client used to reach the places
// catalog API. Each call passes, in order, through a circuit breaker, a token
// bucket limiter, request/correlation id header injection, an OpenTelemetry
// client span, and retry with jittered exponential backoff.
//
//	client := httpclient.New(&cfg.Client, "places-catalog", metrics, logger)
//	req, err := client.NewRequest(ctx, http.MethodGet, "/api/v1/places", query)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware stores the ids that are forwarded as headers:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/travel-planner/internal/platform/config"
	"github.com/jsamuelsen11/travel-planner/internal/platform/telemetry"
)

const tracerName = "travel-planner/httpclient"

// forwardedIDs are the inbound ids echoed on every catalog request.
type forwardedIDs struct {
	requestID     string
	correlationID string
}

type idsKey struct{}

func idsFrom(ctx context.Context) forwardedIDs {
	ids, _ := ctx.Value(idsKey{}).(forwardedIDs)
	return ids
}

// WithRequestID returns a context whose outbound catalog requests carry id
// as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.requestID = id
	return context.WithValue(ctx, idsKey{}, ids)
}

// WithCorrelationID returns a context whose outbound catalog requests carry
// id as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.correlationID = id
	return context.WithValue(ctx, idsKey{}, ids)
}

// retryConfig is the retry policy copied out of config.RetryConfig.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is the instrumented outbound HTTP client.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a client for the downstream named serviceName. The name labels
// spans, metrics, and the circuit breaker. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		userAgent:   cfg.UserAgent,
		serviceName: serviceName,
		breaker:     cb,
		limiter:     limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// NewRequest builds a request for path (relative to the base URL) with the
// given query parameters. The catalog asks callers to identify themselves,
// so the configured user agent goes out as both User-Agent and
// AIC-User-Agent.
func (c *Client) NewRequest(ctx context.Context, method, path string, query url.Values) (*http.Request, error) {
	target := strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("AIC-User-Agent", c.userAgent)
	}
	return req, nil
}

// Do sends req through the breaker, limiter, span, and retry pipeline.
//
// A non-retryable response comes back with a nil error and an open body the
// caller must close. When retries run out on a retryable status, both resp
// and err are non-nil and the caller still closes resp.Body. Breaker
// rejections and transport errors return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return nil, err
		}

		ids := idsFrom(ctx)
		if ids.requestID != "" {
			req.Header.Set("X-Request-ID", ids.requestID)
		}
		if ids.correlationID != "" {
			req.Header.Set("X-Correlation-ID", ids.correlationID)
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		resp, attempts, err := c.doWithRetry(spanCtx, req.WithContext(spanCtx))

		span.SetAttributes(attribute.Int("http.request.resend_count", max(attempts-1, 0)))
		if resp != nil {
			span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return resp, err
	})

	c.recordMetrics(ctx, req.Method, start, resp, err)

	return resp, err
}

// BaseURL returns the base URL configured for this client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service identifier.
func (c *Client) Name() string {
	return c.serviceName
}

// CircuitBreakerState returns the breaker state as "closed", "half-open"
// or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// waitForRateLimit blocks until a token is available. No-op when rate
// limiting is disabled.
func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// startSpan opens a client span named after the catalog route and injects
// W3C trace context headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, req.Method+" "+req.URL.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL.String()),
			attribute.String("server.address", req.URL.Hostname()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	statusCode := 0
	result := "error"
	if resp != nil {
		statusCode = resp.StatusCode
		if statusCode < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	c.metrics.RecordClientRequest(ctx, c.serviceName, method, statusCode, result, time.Since(start))
}

// toUint32 clamps v into [0, MaxUint32].
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
