package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

func idFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func actorFromRequest(r *http.Request) (models.User, error) {
	actor, ok := utils.ActorFromContext(r.Context())
	if !ok {
		return models.User{}, ErrUnauthenticated
	}
	return actor, nil
}
