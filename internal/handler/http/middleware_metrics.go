package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	unmatchedRoute = "unmatched"
	otherMethod    = "other"
)

// methodLabel keeps the method label bounded: anything outside the
// standard methods is counted as "other".
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions, http.MethodConnect, http.MethodTrace:
		return method
	}
	return otherMethod
}

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.metrics.HTTPRequestsInFlight.Inc()
		defer h.metrics.HTTPRequestsInFlight.Dec()

		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		h.metrics.ObserveRequest(methodLabel(r.Method), route, rw.Status(), time.Since(start))
	})
}
