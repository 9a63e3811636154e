package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// withRecovery turns a handler panic into a 500 from the global error
// handler. http.ErrAbortHandler is re-raised so net/http can abort the
// connection as documented.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			h.logger.Error().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			h.writeError(w, r, fmt.Errorf("%w: %v", ErrPanicRecovered, rvr))
		}()

		next.ServeHTTP(w, r)
	})
}
