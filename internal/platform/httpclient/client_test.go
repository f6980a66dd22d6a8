package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/travel-planner/internal/platform/config"
	"github.com/jsamuelsen11/travel-planner/internal/platform/httpclient"
)

const peer = "places-catalog"

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL:   baseURL,
		UserAgent: "travel-planner-test",
		Timeout:   5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       50 * time.Millisecond,
			HalfOpenLimit: 1,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func get(t *testing.T, c *httpclient.Client, ctx context.Context, path string, q url.Values) (*http.Response, error) {
	t.Helper()

	req, err := c.NewRequest(ctx, http.MethodGet, path, q)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	return c.Do(ctx, req)
}

func TestNewRequest_JoinsBaseURLAndQuery(t *testing.T) {
	t.Parallel()

	c := httpclient.New(testConfig("https://api.artic.edu/"), peer, nil, testLogger())

	req, err := c.NewRequest(context.Background(), http.MethodGet, "/api/v1/places",
		url.Values{"page": {"2"}, "limit": {"100"}})
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	want := "https://api.artic.edu/api/v1/places?limit=100&page=2"
	if got := req.URL.String(); got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q, want application/json", got)
	}
	for _, h := range []string{"User-Agent", "AIC-User-Agent"} {
		if got := req.Header.Get(h); got != "travel-planner-test" {
			t.Errorf("%s = %q, want travel-planner-test", h, got)
		}
	}
}

func TestDo_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/places" {
			t.Errorf("path = %q, want /api/v1/places", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	t.Cleanup(srv.Close)

	c := httpclient.New(testConfig(srv.URL), peer, nil, testLogger())

	resp, err := get(t, c, context.Background(), "/api/v1/places", nil)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"data":[]}` {
		t.Errorf("body = %q, want %q", body, `{"data":[]}`)
	}
}

func TestDo_Retries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		statuses     []int
		wantAttempts int32
		wantStatus   int
		wantErr      bool
	}{
		{name: "recovers after 503", statuses: []int{503, 200}, wantAttempts: 2, wantStatus: 200},
		{name: "recovers after 429", statuses: []int{429, 429, 200}, wantAttempts: 3, wantStatus: 200},
		{name: "no retry on 404", statuses: []int{404}, wantAttempts: 1, wantStatus: 404},
		{name: "exhausted returns last response", statuses: []int{500, 502, 503}, wantAttempts: 3, wantStatus: 503, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				n := int(attempts.Add(1)) - 1
				w.WriteHeader(tt.statuses[min(n, len(tt.statuses)-1)])
			}))
			t.Cleanup(srv.Close)

			cfg := testConfig(srv.URL)
			cfg.CircuitBreaker.MaxFailures = 10
			c := httpclient.New(cfg, peer, nil, testLogger())

			resp, err := get(t, c, context.Background(), "/api/v1/places", nil)
			if resp != nil {
				defer func() { _ = resp.Body.Close() }()
			}

			if (err != nil) != tt.wantErr {
				t.Fatalf("Do() error = %v, wantErr %v", err, tt.wantErr)
			}
			if resp == nil || resp.StatusCode != tt.wantStatus {
				t.Fatalf("resp = %v, want status %d", resp, tt.wantStatus)
			}
			if got := attempts.Load(); got != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", got, tt.wantAttempts)
			}
		})
	}
}

func TestDo_RetryAfterCappedAtMaxInterval(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) == 1 {
			w.Header().Set("Retry-After", "30")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := httpclient.New(testConfig(srv.URL), peer, nil, testLogger())

	start := time.Now()
	resp, err := get(t, c, context.Background(), "/api/v1/places", nil)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	_ = resp.Body.Close()

	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Do() took %v, want the 30s hint capped at max_interval", elapsed)
	}
	if got := attempts.Load(); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestDo_RejectsRequestBody(t *testing.T) {
	t.Parallel()

	c := httpclient.New(testConfig("http://127.0.0.1:1"), peer, nil, testLogger())

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		"http://127.0.0.1:1/api/v1/places", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	if _, err := c.Do(context.Background(), req); err == nil {
		t.Error("Do() error = nil, want request body rejected")
	}
}

func TestDo_ForwardsIDs(t *testing.T) {
	t.Parallel()

	var gotReq, gotCorr string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Header.Get("X-Request-ID")
		gotCorr = r.Header.Get("X-Correlation-ID")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := httpclient.New(testConfig(srv.URL), peer, nil, testLogger())

	ctx := httpclient.WithRequestID(context.Background(), "req-1")
	ctx = httpclient.WithCorrelationID(ctx, "corr-1")

	resp, err := get(t, c, ctx, "/api/v1/places", nil)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	_ = resp.Body.Close()

	if gotReq != "req-1" || gotCorr != "corr-1" {
		t.Errorf("headers = (%q, %q), want (req-1, corr-1)", gotReq, gotCorr)
	}
}

func TestDo_CircuitBreaker(t *testing.T) {
	t.Parallel()

	var healthy atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if healthy.Load() {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	c := httpclient.New(cfg, peer, nil, testLogger())

	if got := c.CircuitBreakerState(); got != "closed" {
		t.Fatalf("CircuitBreakerState() before failures = %q, want closed", got)
	}

	for range cfg.CircuitBreaker.MaxFailures {
		resp, _ := get(t, c, context.Background(), "/api/v1/places", nil)
		if resp != nil {
			_ = resp.Body.Close()
		}
	}

	if got := c.CircuitBreakerState(); got != "open" {
		t.Fatalf("CircuitBreakerState() = %q, want open", got)
	}
	_, err := get(t, c, context.Background(), "/api/v1/places", nil)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Do() with open breaker error = %v, want gobreaker.ErrOpenState", err)
	}

	healthy.Store(true)
	time.Sleep(cfg.CircuitBreaker.Timeout + 20*time.Millisecond)

	if got := c.CircuitBreakerState(); got != "half-open" {
		t.Fatalf("CircuitBreakerState() after timeout = %q, want half-open", got)
	}

	resp, err := get(t, c, context.Background(), "/api/v1/places", nil)
	if err != nil {
		t.Fatalf("Do() probe error = %v", err)
	}
	_ = resp.Body.Close()

	if got := c.CircuitBreakerState(); got != "closed" {
		t.Errorf("CircuitBreakerState() after probe = %q, want closed", got)
	}
}

func TestDo_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1}
	c := httpclient.New(cfg, peer, nil, testLogger())

	resp, err := get(t, c, context.Background(), "/api/v1/places", nil)
	if err != nil {
		t.Fatalf("first Do() error = %v", err)
	}
	_ = resp.Body.Close()

	// The bucket is empty and the next token is a second away.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := get(t, c, ctx, "/api/v1/places", nil); err == nil {
		t.Error("second Do() error = nil, want rate limiter wait to fail")
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c := httpclient.New(testConfig(srv.URL), peer, nil, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := get(t, c, ctx, "/api/v1/places", nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Do() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	c := httpclient.New(testConfig("http://localhost"), peer, nil, testLogger())
	if got := c.Name(); got != peer {
		t.Errorf("Name() = %q, want %q", got, peer)
	}
}

// Not parallel: swaps the global tracer provider.
func TestDo_ClientSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := httpclient.New(testConfig(srv.URL), peer, nil, testLogger())

	resp, err := get(t, c, context.Background(), "/api/v1/places", nil)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	_ = resp.Body.Close()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	span := spans[0]
	if span.Name != "GET /api/v1/places" {
		t.Errorf("span name = %q, want %q", span.Name, "GET /api/v1/places")
	}

	want := map[attribute.Key]int64{
		"http.request.resend_count": 1,
		"http.response.status_code": http.StatusOK,
	}
	for _, kv := range span.Attributes {
		if v, ok := want[kv.Key]; ok {
			if kv.Value.AsInt64() != v {
				t.Errorf("%s = %d, want %d", kv.Key, kv.Value.AsInt64(), v)
			}
			delete(want, kv.Key)
		}
	}
	for k := range want {
		t.Errorf("span attribute %s missing", k)
	}
}
