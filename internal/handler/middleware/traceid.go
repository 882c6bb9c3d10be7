package middleware

import (
	"net/http"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/utils"
)

// TraceIDHeader carries the request's trace id in both directions.
const TraceIDHeader = "X-Trace-ID"

// TraceID reuses the incoming X-Trace-ID or generates a new UUIDv7, attaches a
// child of log stamped with it to the request context and echoes it in the
// response header.
func TraceID(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = utils.NewTraceID()
				r.Header.Set(TraceIDHeader, traceID)
			}

			ctx := log.WithTraceID(traceID).WithContext(r.Context())

			w.Header().Set(TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
