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

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

// UpdateUser applies the non-nil fields of req to user id.
func (s *userService) UpdateUser(ctx context.Context, actor models.User, id int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		req.Email = &email
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if !actor.CanModify(id) {
		log.Warn().Int64("actor_id", actor.ID).Int64("user_id", id).Msg("user update forbidden")
		return models.User{}, ErrForbidden
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", id).Msg("user update failed")
		return models.User{}, err
	}

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, actor models.User, id int64) error {
	if !actor.CanModify(id) {
		logger.FromContext(ctx).Warn().Int64("actor_id", actor.ID).Int64("user_id", id).Msg("user delete forbidden")
		return ErrForbidden
	}

	return s.userRepository.DeleteUser(ctx, id)
}
