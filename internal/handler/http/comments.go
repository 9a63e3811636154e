package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.CommentService.ListComments(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.GetComment(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.CreateCommentRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.CreateComment(r.Context(), actor, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdateCommentRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.UpdateComment(r.Context(), actor, id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.CommentService.DeleteComment(r.Context(), actor, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
