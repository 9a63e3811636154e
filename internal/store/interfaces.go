// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for users, posts and comments on top
// of database/sql. Queries are rendered with squirrel so the same
// repositories serve both the pgx (postgres) and sqlite3 drivers.
package store

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// ErrorClassificator maps a driver error onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists user accounts. Lookups only return active users.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// PostRepository persists posts. Reads load the author and the active
// comments of each post.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, id int64) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// CommentRepository persists comments. Reads load the author.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindCommentByID(ctx context.Context, id int64) (models.Comment, error)
	ListComments(ctx context.Context) ([]models.Comment, error)
	UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
