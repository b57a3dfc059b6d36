package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-contacts/internal/logger"
)

// withLogging writes one access-log line per request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		// a handler that never writes still answers 200
		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
