// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-blog-api REST interface.
//
// [BlogAPI] hides the transport from its callers; the package ships an
// HTTP implementation built on resty ([NewHTTPBlogAdapter]). It is used by
// the healthcheck command and by tests that drive a running server.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// BlogAPI defines communication with a go-blog-api server. Implementations
// keep the bearer token issued by Signup or Login and attach it to every
// authenticated request.
type BlogAPI interface {
	// SetToken stores the bearer token used by subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Health fetches GET /health. A degraded server still answers and is
	// reported through the returned status, not as an error.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version fetches GET /api/version.
	Version(ctx context.Context) (models.VersionResponse, error)

	// Signup registers a user and stores the token from the Authorization
	// response header.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Login authenticates a user and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error)
	CreateComment(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error)
}
