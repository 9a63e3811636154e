package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// errorStatusMap is checked in order; the first target matched with
// errors.Is decides the status. Entries marked detailed keep the wrapped
// text that follows the target in the client message.
var errorStatusMap = []struct {
	target   error
	status   int
	detailed bool
}{
	{ErrMalformedJSON, http.StatusBadRequest, false},
	{ErrInvalidGzip, http.StatusBadRequest, false},
	{ErrInvalidID, http.StatusBadRequest, false},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge, false},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, false},
	{ErrUnauthenticated, http.StatusUnauthorized, false},
	{ErrRouteNotFound, http.StatusNotFound, false},

	{service.ErrValidation, http.StatusBadRequest, true},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, false},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, false},
	{service.ErrForbidden, http.StatusForbidden, false},

	{utils.ErrInvalidBearer, http.StatusUnauthorized, false},

	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, false},
	{store.ErrEmailAlreadyExists, http.StatusConflict, false},
	{store.ErrUserNotFound, http.StatusNotFound, false},
	{store.ErrPostNotFound, http.StatusNotFound, false},
	{store.ErrCommentNotFound, http.StatusNotFound, false},
	{store.ErrReferencedRowNotFound, http.StatusNotFound, false},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, false},
	{store.ErrExecutingQuery, http.StatusInternalServerError, false},
	{store.ErrExecutingStatement, http.StatusInternalServerError, false},
	{store.ErrScanningRow, http.StatusInternalServerError, false},
	{store.ErrScanningRows, http.StatusInternalServerError, false},
}

func statusFromError(err error) int {
	status, _ := classifyError(err)
	return status
}

// classifyError returns the status and the message safe to show a client.
// Unmatched errors become an internal server error.
func classifyError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if !errors.Is(err, e.target) {
			continue
		}
		message := e.target.Error()
		if e.detailed {
			if i := strings.Index(err.Error(), message); i >= 0 {
				message = err.Error()[i:]
			}
		}
		return e.status, message
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError is the global error handler. Outside development client
// errors carry only the text of the matched error kind, so driver and
// wrapping details never reach the response. Server errors carry the
// status text.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classifyError(err)

	switch {
	case status >= http.StatusInternalServerError:
		message = http.StatusText(status)
	case h.env.IsDevelopment():
		message = err.Error()
	}

	h.respondError(w, r, status, message, err)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	log := logger.FromRequest(r)

	resp := models.ErrorResponse{
		Status:  "fail",
		Message: message,
	}
	if status >= http.StatusInternalServerError {
		resp.Status = "error"
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	if h.env.IsDevelopment() && err != nil {
		resp.Error = err.Error()
	}

	if _, wErr := utils.WriteJSON(w, resp, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("%s %s not found in this server", r.Method, r.URL.Path)
	h.respondError(w, r, http.StatusNotFound, message, ErrRouteNotFound)
}
