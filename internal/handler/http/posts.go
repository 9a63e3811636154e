package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.CreatePostRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), actor, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdatePostRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), actor, id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.PostService.DeletePost(r.Context(), actor, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
