package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/travel-planner/internal/domain"
	"github.com/jsamuelsen11/travel-planner/internal/platform/config"
	"github.com/jsamuelsen11/travel-planner/internal/platform/httpclient"
)

// newTestCatalogClient points a CatalogClient at baseURL with a single
// attempt per request and a breaker that trips after two failures.
func newTestCatalogClient(t *testing.T, baseURL string) *CatalogClient {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)

	return NewCatalogClient(httpclient.New(cfg, CatalogName, nil, logger), logger)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encoding response: %v", err)
	}
}

func TestCatalogClient_FetchPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/places" {
			t.Errorf("request = %s %s, want GET /api/v1/places", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "100" || q.Get("fields") != "id,title" {
			t.Errorf("query = %v, want page=2 limit=100 fields=id,title", q)
		}

		writeJSON(t, w, map[string]any{
			"pagination": map[string]any{"total": 250, "limit": 100, "total_pages": 3, "current_page": 2},
			"data": []map[string]any{
				{"id": 101, "title": "Izumo"},
				{"id": 102, "title": "Kyoto"},
			},
		})
	}))
	t.Cleanup(srv.Close)

	c := newTestCatalogClient(t, srv.URL)

	page, err := c.FetchPage(context.Background(), 2, 100)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}

	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
	if len(page.Entries) != 2 || page.Entries[1].ID != 102 || page.Entries[1].Title != "Kyoto" {
		t.Errorf("Entries = %+v, want [101 Izumo] [102 Kyoto]", page.Entries)
	}
}

func TestCatalogClient_FetchPage_InvalidArguments(t *testing.T) {
	t.Parallel()

	c := newTestCatalogClient(t, "http://127.0.0.1:0")

	for _, args := range [][2]int{{0, 100}, {1, 0}, {-1, -1}} {
		if _, err := c.FetchPage(context.Background(), args[0], args[1]); err == nil {
			t.Errorf("FetchPage(%d, %d) error = nil, want error", args[0], args[1])
		}
	}
}

func TestCatalogClient_FetchPage_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "page out of range",
			status:  http.StatusNotFound,
			body:    `{"status":404,"error":"Not found","detail":"page does not exist"}`,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "limit rejected",
			status:  http.StatusForbidden,
			body:    `{"status":403,"error":"Invalid limit","detail":"You have requested too many resources per page."}`,
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "catalog down",
			status:  http.StatusServiceUnavailable,
			body:    `{"status":503,"error":"Service unavailable"}`,
			wantErr: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			_, err := newTestCatalogClient(t, srv.URL).FetchPage(context.Background(), 1, 100)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FetchPage() error = %v, want errors.Is %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalogClient_FetchPage_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [`))
	}))
	t.Cleanup(srv.Close)

	if _, err := newTestCatalogClient(t, srv.URL).FetchPage(context.Background(), 1, 10); err == nil {
		t.Fatal("FetchPage() error = nil, want decode error")
	}
}

func TestCatalogClient_HealthCheck(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := newTestCatalogClient(t, srv.URL)

	if c.Name() != CatalogName {
		t.Errorf("Name() = %q, want %q", c.Name(), CatalogName)
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() with closed breaker = %v, want nil", err)
	}

	for range 2 {
		_, _ = c.FetchPage(context.Background(), 1, 10)
	}

	if err := c.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() after repeated failures = nil, want open breaker error")
	}

	_, err := c.FetchPage(context.Background(), 1, 10)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("FetchPage() with open breaker error = %v, want ErrUnavailable", err)
	}
}
