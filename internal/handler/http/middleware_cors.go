package http

import (
	"net/http"
	"strings"
)

var (
	corsAllowedMethods = strings.Join([]string{
		http.MethodGet, http.MethodHead, http.MethodPut,
		http.MethodPatch, http.MethodPost, http.MethodDelete,
	}, ",")
	corsDefaultHeaders = "Content-Type, Authorization"
	corsExposedHeaders = "RateLimit-Limit, RateLimit-Remaining, RateLimit-Reset, Retry-After, " + traceIDHeader
)

// withCORS sets the CORS headers on every response and answers preflight
// requests with 204 without reaching the routers.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	origin := h.server.CORSOrigin

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", origin)
		header.Set("Access-Control-Expose-Headers", corsExposedHeaders)
		if origin != "*" {
			header.Add("Vary", "Origin")
		}

		if r.Method != http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		header.Set("Access-Control-Allow-Methods", corsAllowedMethods)
		if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
			header.Set("Access-Control-Allow-Headers", requested)
			header.Add("Vary", "Access-Control-Request-Headers")
		} else {
			header.Set("Access-Control-Allow-Headers", corsDefaultHeaders)
		}
		header.Set("Content-Length", "0")
		w.WriteHeader(http.StatusNoContent)
	})
}
