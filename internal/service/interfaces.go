// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the blog: account signup and
// login, token issuing, and ownership checks on users, posts and comments.
//
// Mutating operations take the acting user (ID and Role only, as decoded
// from the access token) and reject it with [ErrForbidden] unless it owns
// the resource or is an admin.
package service

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, actor models.User, id int64, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, actor models.User, id int64) error
}

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, actor models.User, req models.CreatePostRequest) (models.Post, error)
	UpdatePost(ctx context.Context, actor models.User, id int64, req models.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, actor models.User, id int64) error
}

type CommentService interface {
	ListComments(ctx context.Context) ([]models.Comment, error)
	GetComment(ctx context.Context, id int64) (models.Comment, error)
	CreateComment(ctx context.Context, actor models.User, req models.CreateCommentRequest) (models.Comment, error)
	UpdateComment(ctx context.Context, actor models.User, id int64, req models.UpdateCommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, actor models.User, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}
