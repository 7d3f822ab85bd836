// internal/middleware/requestid.go
//
// Request-ID middleware.
//
// Stamps every request with a UUID, echoes it on the X-Request-ID response
// header, and stores it in the request context so handlers and the render
// adapter can thread it through zap fields.  An inbound X-Request-ID from
// a trusted proxy is reused rather than replaced.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey struct{}

const headerRequestID = "X-Request-ID"

// RequestID wraps h with request-ID stamping.
func RequestID(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request's ID, or "" outside the middleware.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
