package store

import "github.com/MKhiriev/go-blog-api/internal/logger"

// Storages groups every repository built on a single [DB].
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository
}

// NewStorages wires the repositories. relations must come from
// [InitRelations].
func NewStorages(db *DB, relations *Relations, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PostRepository:    NewPostRepository(db, relations, log),
		CommentRepository: NewCommentRepository(db, relations, log),
	}
}
