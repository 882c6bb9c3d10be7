package middleware

import (
	"context"
	"net/http"
	"time"
)

// Deadline bounds the request context by timeout. It writes nothing itself:
// handlers see the expired context as an error and answer through their
// usual error path. A non-positive timeout disables it.
func Deadline(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
