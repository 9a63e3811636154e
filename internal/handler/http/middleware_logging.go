package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
)

// withLogging writes one access log line per request. Development mode
// gets a short human readable line; production gets the "combined" field
// set as JSON.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		if h.env.IsDevelopment() {
			log.Info().Msgf("%s %s %d %s - %d", method, uri, lw.Status(), duration.Round(time.Microsecond), lw.size)
			return
		}

		log.Info().
			Str("remote_addr", r.RemoteAddr).
			Str("method", method).
			Str("uri", uri).
			Str("proto", r.Proto).
			Int("status", lw.Status()).
			Int("size", lw.size).
			Str("referer", r.Referer()).
			Str("user_agent", r.UserAgent()).
			Dur("duration", duration).
			Send()
	})
}
