package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

type httpBlogAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogAdapter constructs an HTTP/REST implementation of [BlogAPI]
// rooted at address. A missing scheme defaults to http. A zero timeout
// leaves requests unbounded apart from the caller's context.
func NewHTTPBlogAdapter(address string, timeout time.Duration, logger *logger.Logger) (BlogAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpBlogAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlogAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBlogAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return health, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return health, err
	}

	return health, nil
}

func (h *httpBlogAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return version, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return version, err
	}

	return version, nil
}

// Signup POSTs to /api/v1/users/signup. The token is taken from the
// Authorization response header.
func (h *httpBlogAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/api/v1/users/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("signup parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "*httpBlogAdapter.Signup").Int64("user_id", user.ID).Msg("bearer token stored")
	return user, nil
}

// Login POSTs to /api/v1/users/login and stores the token from the body.
func (h *httpBlogAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&login).
		Post("/api/v1/users/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(login.Token)
	h.logger.Debug().Str("func", "*httpBlogAdapter.Login").Int64("user_id", login.User.ID).Msg("bearer token stored")
	return login, nil
}

func (h *httpBlogAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	resp, err := h.authedRequest(ctx).
		SetResult(&posts).
		Get("/api/v1/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpBlogAdapter) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	var post models.Post

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&post).
		Post("/api/v1/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpBlogAdapter) CreateComment(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error) {
	var comment models.Comment

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&comment).
		Post("/api/v1/comments")
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

func (h *httpBlogAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
