package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the user id
// and role in the request context (see [utils.WithActor]).
//
// A missing header, a malformed header and an invalid or expired token all
// end in 401 from the global error handler.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrEmptyAuthorizationHeader))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			h.writeError(w, r, err)
			return
		}

		ctx = utils.WithActor(ctx, token.UserID, token.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
