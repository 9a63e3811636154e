// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-api/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func validSignup() models.SignupRequest {
	return models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "password1"}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("value and pointer", func(t *testing.T) {
		s := validSignup()
		require.NoError(t, v.Validate(ctx, s))
		require.NoError(t, v.Validate(ctx, &s))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validSignup(), "nope"), ErrUnknownField)
	})

	t.Run("scoped fields skip others", func(t *testing.T) {
		s := validSignup()
		s.Password = ""
		require.NoError(t, v.Validate(ctx, s, FieldName, FieldEmail))
	})
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestValidate_Signup(t *testing.T) {
	v := NewBlogValidator()

	tests := []struct {
		name    string
		mutate  func(*models.SignupRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.SignupRequest) {}},
		{name: "empty name", mutate: func(r *models.SignupRequest) { r.Name = "   " }, wantErr: ErrEmptyName},
		{name: "long name", mutate: func(r *models.SignupRequest) { r.Name = strings.Repeat("n", 101) }, wantErr: ErrNameTooLong},
		{name: "bad email", mutate: func(r *models.SignupRequest) { r.Email = "not-an-email" }, wantErr: ErrInvalidEmail},
		{name: "email with display name", mutate: func(r *models.SignupRequest) { r.Email = "Ann <ann@example.com>" }, wantErr: ErrInvalidEmail},
		{name: "empty password", mutate: func(r *models.SignupRequest) { r.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "short password", mutate: func(r *models.SignupRequest) { r.Password = "1234567" }, wantErr: ErrPasswordTooShort},
		{name: "exactly 8", mutate: func(r *models.SignupRequest) { r.Password = "12345678" }},
		{name: "too long password", mutate: func(r *models.SignupRequest) { r.Password = strings.Repeat("p", 73) }, wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)
			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Login(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.io", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.io"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Email: "ab.io", Password: "x"}), ErrInvalidEmail)
}

func TestValidate_UpdateUser(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.UpdateUserRequest{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.UpdateUserRequest{Name: ptr("New")}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateUserRequest{Name: ptr("")}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, &models.UpdateUserRequest{Email: ptr("bad")}), ErrInvalidEmail)
}

// ---------------------------------------------------------------------------
// Posts
// ---------------------------------------------------------------------------

func TestValidate_CreatePost(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.CreatePostRequest
		wantErr error
	}{
		{name: "valid", req: models.CreatePostRequest{Title: "T", Content: "C"}},
		{name: "no title", req: models.CreatePostRequest{Content: "C"}, wantErr: ErrEmptyTitle},
		{name: "long title", req: models.CreatePostRequest{Title: strings.Repeat("t", 256), Content: "C"}, wantErr: ErrTitleTooLong},
		{name: "no content", req: models.CreatePostRequest{Title: "T", Content: " "}, wantErr: ErrEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_UpdatePost(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.UpdatePostRequest{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.UpdatePostRequest{Content: ptr("new body")}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdatePostRequest{Title: ptr(" ")}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, models.UpdatePostRequest{Content: ptr("")}), ErrEmptyContent)
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

func TestValidate_CreateComment(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateCommentRequest{PostID: 1, Comment: "hi"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateCommentRequest{Comment: "hi"}), ErrInvalidPostID)
	assert.ErrorIs(t, v.Validate(ctx, models.CreateCommentRequest{PostID: 1}), ErrEmptyComment)
}

func TestValidate_UpdateComment(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UpdateCommentRequest{Comment: ptr("edited")}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateCommentRequest{}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, &models.UpdateCommentRequest{Comment: ptr("  ")}), ErrEmptyComment)
}
