package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

type commentRepository struct {
	logger    *logger.Logger
	db        *DB
	relations *Relations
}

func NewCommentRepository(db *DB, relations *Relations, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:        db,
		relations: relations,
		logger:    logger,
	}
}

// CreateComment inserts a comment. A missing post or author is reported as
// [ErrReferencedRowNotFound].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertCommentQuery(r.db.builder, comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error building query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error inserting comment")
		return models.Comment{}, r.translate(err)
	}

	return created, nil
}

func (r *commentRepository) FindCommentByID(ctx context.Context, id int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectCommentsQuery(r.db.builder, r.relations.CommentAuthor).
		Where(sq.Eq{"comments.id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.FindCommentByID").Msg("error building query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	comment, err := scanCommentWithAuthor(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.FindCommentByID").Int64("comment_id", id).Msg("error finding comment")
		return models.Comment{}, r.translate(err)
	}

	return comment, nil
}

func (r *commentRepository) ListComments(ctx context.Context) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectCommentsQuery(r.db.builder, r.relations.CommentAuthor).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error querying comments")
		return nil, r.db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, err := scanCommentWithAuthor(rows)
		if err != nil {
			log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error scanning comment")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

func (r *commentRepository) UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateCommentQuery(r.db.builder, comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("error building query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Int64("comment_id", comment.ID).Msg("error updating comment")
		return models.Comment{}, r.translate(err)
	}

	return updated, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, id int64) error {
	query, args, err := softDeleteQuery(r.db.builder, "comments", id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execSoftDelete(ctx, r.db, query, args, ErrCommentNotFound)
}

func (r *commentRepository) translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCommentNotFound
	}
	if r.db.classify(err) == ForeignKeyViolation {
		return fmt.Errorf("%w: %w", ErrReferencedRowNotFound, err)
	}
	return r.db.wrapError(err, ErrExecutingQuery)
}
