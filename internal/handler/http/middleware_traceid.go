package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request with the caller's X-Trace-ID or a fresh uuid,
// echoes it in the response and puts a child logger carrying it into the
// request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
