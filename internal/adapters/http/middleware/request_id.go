package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/travel-planner/internal/platform/httpclient"
)

const (
	headerRequestID = "X-Request-ID"

	// maxIDLength caps inbound request and correlation ids.
	maxIDLength = 128
)

// requestIDKey is the middleware's own context key. httpclient keeps a
// separate key so neither package imports the other's internals.
type requestIDKey struct{}

// WithRequestID stores id in ctx, both for RequestIDFromContext and for
// outbound catalog calls made through httpclient.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request id, or "" when none is stored.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID returns middleware that assigns every request an X-Request-ID.
// A usable inbound header is kept; otherwise a random UUID is minted. The id
// is echoed on the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := acceptID(r.Header.Get(headerRequestID))
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// acceptID returns the trimmed id when it is short printable ASCII without
// spaces, and "" otherwise.
func acceptID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxIDLength {
		return ""
	}
	for i := range len(id) {
		if id[i] <= ' ' || id[i] > '~' {
			return ""
		}
	}
	return id
}
