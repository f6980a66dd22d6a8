package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/travel-planner/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	headers.Set("Authorization", "Bearer abc123")
	headers.Set("X-Api-Key", "k-1")
	headers.Set("Cookie", "session=s")
	headers.Set("Content-Type", "application/json")
	headers.Add("Accept", "application/json")
	headers.Add("Accept", "application/problem+json")

	attrs := middleware.RedactHeaders(headers)

	want := []struct{ key, val string }{
		{"Accept", "application/json,application/problem+json"},
		{"Authorization", "[REDACTED]"},
		{"Content-Type", "application/json"},
		{"Cookie", "[REDACTED]"},
		{"X-Api-Key", "[REDACTED]"},
	}
	if len(attrs) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(want))
	}
	for i, w := range want {
		if attrs[i].Key != w.key || attrs[i].Value.String() != w.val {
			t.Errorf("attrs[%d] = %s=%s, want %s=%s", i, attrs[i].Key, attrs[i].Value.String(), w.key, w.val)
		}
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("RedactHeaders(empty) = %v, want none", attrs)
	}
}
