package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), actor, id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := idFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), actor, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
