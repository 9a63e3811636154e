package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	postRepository    store.PostRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, postRepository store.PostRepository, validator validators.Validator, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		postRepository:    postRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (s *commentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	return s.commentRepository.ListComments(ctx)
}

func (s *commentService) GetComment(ctx context.Context, id int64) (models.Comment, error) {
	return s.commentRepository.FindCommentByID(ctx, id)
}

// CreateComment attaches a comment by actor to an active post. A missing or
// deleted post yields [store.ErrPostNotFound].
func (s *commentService) CreateComment(ctx context.Context, actor models.User, req models.CreateCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if _, err := s.postRepository.FindPostByID(ctx, req.PostID); err != nil {
		log.Info().Err(err).Int64("post_id", req.PostID).Msg("comment on unavailable post")
		return models.Comment{}, err
	}

	comment, err := s.commentRepository.CreateComment(ctx, models.Comment{
		Comment: req.Comment,
		UserID:  actor.ID,
		PostID:  req.PostID,
	})
	if err != nil {
		log.Err(err).Int64("post_id", req.PostID).Msg("comment creation failed")
		return models.Comment{}, err
	}

	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, actor models.User, id int64, req models.UpdateCommentRequest) (models.Comment, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	existing, err := s.commentRepository.FindCommentByID(ctx, id)
	if err != nil {
		return models.Comment{}, err
	}
	if !actor.CanModify(existing.UserID) {
		logger.FromContext(ctx).Warn().Int64("actor_id", actor.ID).Int64("comment_id", id).Msg("comment update forbidden")
		return models.Comment{}, ErrForbidden
	}

	existing.Comment = *req.Comment

	updated, err := s.commentRepository.UpdateComment(ctx, existing)
	if err != nil {
		return models.Comment{}, err
	}

	updated.User = existing.User
	return updated, nil
}

func (s *commentService) DeleteComment(ctx context.Context, actor models.User, id int64) error {
	existing, err := s.commentRepository.FindCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(existing.UserID) {
		logger.FromContext(ctx).Warn().Int64("actor_id", actor.ID).Int64("comment_id", id).Msg("comment delete forbidden")
		return ErrForbidden
	}

	return s.commentRepository.DeleteComment(ctx, id)
}
