package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification, and JWT token lifecycle
// using a UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup validates req, hashes the password and creates a normal user.
// A taken email surfaces as [store.ErrEmailAlreadyExists].
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleNormal,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login checks the credentials and issues a token. Unknown email and wrong
// password both yield [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", req.Email).Msg("login for unknown email")
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.LoginResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := utils.ComparePassword(user.Password, req.Password); err != nil {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{Token: token.SignedString, User: user}, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT and checks that its subject is still an
// active user. Any validation failure (expired, wrong issuer, malformed,
// deleted account) is reported as ErrTokenIsExpiredOrInvalid. The role is
// taken from the stored user, not from the token.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Int64("user_id", token.UserID).Msg("token of a deleted or unknown user rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("token owner lookup failed")
		return models.Token{}, fmt.Errorf("token owner lookup failed: %w", err)
	}

	token.Role = user.Role
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
