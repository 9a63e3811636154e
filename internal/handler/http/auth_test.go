// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

func TestSignup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		signupErr  error
		wantStatus int
	}{
		{name: "success", body: `{"name":"Ann","email":"ann@example.com","password":"password1"}`, wantStatus: http.StatusCreated},
		{name: "validation", body: `{"name":"Ann"}`, signupErr: fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidEmail), wantStatus: http.StatusBadRequest},
		{name: "duplicate email", body: `{"name":"Ann","email":"ann@example.com","password":"password1"}`, signupErr: store.ErrEmailAlreadyExists, wantStatus: http.StatusConflict},
		{name: "database down", body: `{"name":"Ann","email":"ann@example.com","password":"password1"}`, signupErr: store.ErrDatabaseUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.SignupRequest
			svcs := newTestServices()
			svcs.AuthService = &mockAuthService{
				signupFn: func(_ context.Context, req models.SignupRequest) (models.User, error) {
					got = req
					if tt.signupErr != nil {
						return models.User{}, tt.signupErr
					}
					return models.User{ID: 7, Name: req.Name, Email: req.Email, Password: "hash", Role: models.RoleNormal}, nil
				},
				createTokenFn: func(context.Context, models.User) (models.Token, error) {
					return models.Token{SignedString: "signed"}, nil
				},
			}
			h := newTestHandler(t, svcs, Options{})

			rec := serve(h, http.MethodPost, "/api/v1/users/signup", tt.body, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "Ann", got.Name)
			if tt.wantStatus != http.StatusCreated {
				return
			}
			assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
			assert.NotContains(t, rec.Body.String(), "hash")

			var user models.User
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
			assert.Equal(t, int64(7), user.ID)
		})
	}
}

func TestSignup_TokenFailure(t *testing.T) {
	svcs := newTestServices()
	svcs.AuthService = &mockAuthService{
		signupFn: func(context.Context, models.SignupRequest) (models.User, error) { return models.User{ID: 1}, nil },
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHandler(t, svcs, Options{})

	rec := serve(h, http.MethodPost, "/api/v1/users/signup", `{}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	svcs := newTestServices()
	svcs.AuthService = &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.LoginResponse, error) {
			if req.Password != "password1" {
				return models.LoginResponse{}, service.ErrInvalidCredentials
			}
			return models.LoginResponse{Token: "signed", User: models.User{ID: 3, Email: req.Email}}, nil
		},
	}
	h := newTestHandler(t, svcs, Options{})

	rec := serve(h, http.MethodPost, "/api/v1/users/login", `{"email":"ann@example.com","password":"password1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed", resp.Token)
	assert.Equal(t, int64(3), resp.User.ID)

	rec = serve(h, http.MethodPost, "/api/v1/users/login", `{"email":"ann@example.com","password":"nope"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), decodeError(t, rec).Message)
}
