package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/cairn"
)

// RequestID tags the request with a uuid,
// stashing it in the request context under [cairn.RequestIDKey]
// and echoing it back in the "X-Request-Id" response header.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set("X-Request-Id", id)

			ctx := context.WithValue(r.Context(), cairn.RequestIDKey, id)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
