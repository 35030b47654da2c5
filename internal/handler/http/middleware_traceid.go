package http

import (
	"net/http"

	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID assigns each request a trace id and scopes the request logger
// with it. The id is echoed in the response header so clients can quote it
// when reporting a failure.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := requestTraceID(r)
		w.Header().Set(traceIDHeader, traceID)

		scoped := h.logger.With().Str("trace_id", traceID).Logger()
		next.ServeHTTP(w, r.WithContext(scoped.WithContext(r.Context())))
	})
}

// requestTraceID reuses an incoming X-Trace-ID so traces survive proxy hops,
// falling back to a fresh UUID when the request carries none.
func requestTraceID(r *http.Request) string {
	if traceID := r.Header.Get(traceIDHeader); traceID != "" {
		return traceID
	}

	return uuid.NewString()
}
