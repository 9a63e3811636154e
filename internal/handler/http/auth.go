package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user signed up")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", resp.User.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", resp.Token))
	utils.WriteJSON(w, resp, http.StatusOK)
}
