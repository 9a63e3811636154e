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

// postRepository is the database/sql implementation of [PostRepository].
// Reads join the author through [Relations.PostAuthor] and fill
// Post.Comments with a second query over [Relations.PostComments].
type postRepository struct {
	logger    *logger.Logger
	db        *DB
	relations *Relations
}

func NewPostRepository(db *DB, relations *Relations, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:        db,
		relations: relations,
		logger:    logger,
	}
}

// CreatePost inserts a post owned by post.UserID. A missing author is
// reported as [ErrReferencedRowNotFound].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertPostQuery(r.db.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, r.translate(err)
	}

	return created, nil
}

// FindPostByID returns an active post with its author and active comments.
func (r *postRepository) FindPostByID(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPostsQuery(r.db.builder, r.relations.PostAuthor).
		Where(sq.Eq{"posts.id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostByID").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPostWithAuthor(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostByID").Int64("post_id", id).Msg("error finding post")
		return models.Post{}, r.translate(err)
	}

	posts := []models.Post{post}
	if err := r.loadComments(ctx, posts); err != nil {
		return models.Post{}, err
	}

	return posts[0], nil
}

// ListPosts returns every active post with its author and active comments.
func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPostsQuery(r.db.builder, r.relations.PostAuthor).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error querying posts")
		return nil, r.db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPostWithAuthor(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error scanning post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err := r.loadComments(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := updatePostQuery(r.db.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Int64("post_id", post.ID).Msg("error updating post")
		return models.Post{}, r.translate(err)
	}

	return updated, nil
}

func (r *postRepository) DeletePost(ctx context.Context, id int64) error {
	query, args, err := softDeleteQuery(r.db.builder, "posts", id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execSoftDelete(ctx, r.db, query, args, ErrPostNotFound)
}

// loadComments fills Comments of every post in place with one query.
func (r *postRepository) loadComments(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := make([]int64, len(posts))
	index := make(map[int64]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		index[p.ID] = i
		posts[i].Comments = make([]models.Comment, 0)
	}

	fk := r.relations.PostComments.ForeignKey
	query, args, err := selectCommentsQuery(r.db.builder, r.relations.CommentAuthor).
		Where(sq.Eq{"comments." + fk: ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.loadComments").Msg("error querying comments")
		return r.db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	for rows.Next() {
		comment, err := scanCommentWithAuthor(rows)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := index[comment.PostID]; ok {
			posts[i].Comments = append(posts[i].Comments, comment)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func (r *postRepository) translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPostNotFound
	}
	if r.db.classify(err) == ForeignKeyViolation {
		return fmt.Errorf("%w: %w", ErrReferencedRowNotFound, err)
	}
	return r.db.wrapError(err, ErrExecutingQuery)
}
