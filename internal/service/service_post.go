package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

type postService struct {
	postRepository store.PostRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewPostService(postRepository store.PostRepository, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepository.ListPosts(ctx)
}

func (s *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return s.postRepository.FindPostByID(ctx, id)
}

// CreatePost stores a post authored by actor.
func (s *postService) CreatePost(ctx context.Context, actor models.User, req models.CreatePostRequest) (models.Post, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	post, err := s.postRepository.CreatePost(ctx, models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  actor.ID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", actor.ID).Msg("post creation failed")
		return models.Post{}, err
	}

	post.Comments = make([]models.Comment, 0)
	return post, nil
}

// UpdatePost applies the non-nil fields of req. The returned post keeps the
// author and comments loaded before the update.
func (s *postService) UpdatePost(ctx context.Context, actor models.User, id int64, req models.UpdatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		req.Title = &title
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	existing, err := s.postRepository.FindPostByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if !actor.CanModify(existing.UserID) {
		log.Warn().Int64("actor_id", actor.ID).Int64("post_id", id).Msg("post update forbidden")
		return models.Post{}, ErrForbidden
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}

	updated, err := s.postRepository.UpdatePost(ctx, existing)
	if err != nil {
		log.Err(err).Int64("post_id", id).Msg("post update failed")
		return models.Post{}, err
	}

	updated.User = existing.User
	updated.Comments = existing.Comments
	return updated, nil
}

func (s *postService) DeletePost(ctx context.Context, actor models.User, id int64) error {
	existing, err := s.postRepository.FindPostByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(existing.UserID) {
		logger.FromContext(ctx).Warn().Int64("actor_id", actor.ID).Int64("post_id", id).Msg("post delete forbidden")
		return ErrForbidden
	}

	return s.postRepository.DeletePost(ctx, id)
}
