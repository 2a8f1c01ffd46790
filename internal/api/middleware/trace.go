// Package middleware provides HTTP middleware applied around the routed handlers.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mwhitby/signup-api/internal/api/shared"
	"github.com/mwhitby/signup-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that attaches a trace ID and a
// trace-scoped logger to the request context. It should be applied early in
// the chain so all subsequent handlers see the trace ID.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			reqLog := log.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, reqLog)

			reqLog.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
