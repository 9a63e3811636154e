package service

import (
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	PostService    PostService
	CommentService CommentService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewBlogValidator()

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, validator, logger),
		PostService:    NewPostService(storages.PostRepository, validator, logger),
		CommentService: NewCommentService(storages.CommentRepository, storages.PostRepository, validator, logger),
		AppInfoService: appInfo,
	}, nil
}
