package http

import (
	"net/http"
	"time"

	"github.com/tgusarov/notekeep/internal/logger"
)

// withLogging emits one structured entry per completed request. Status and
// response size are captured through the responseWriter decorator.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", lw.status).
			Dur("elapsed", time.Since(start)).
			Int("bytes", lw.size).
			Msg("request served")
	})
}
