package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-blog-api/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID honours an incoming X-Trace-ID or generates one, echoes it in
// the response and attaches a child logger carrying it to the context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
