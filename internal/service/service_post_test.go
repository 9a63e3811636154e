package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

func newTestPostService(ctrl *gomock.Controller) (PostService, *mock.MockPostRepository) {
	repo := mock.NewMockPostRepository(ctrl)
	return NewPostService(repo, validators.NewBlogValidator(), logger.Nop()), repo
}

func ownedPost() models.Post {
	return models.Post{
		ID:       10,
		Title:    "Old",
		Content:  "Body",
		UserID:   owner.ID,
		User:     &models.User{ID: owner.ID, Name: "Owner"},
		Comments: []models.Comment{{ID: 1, Comment: "hi"}},
	}
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestPostService_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPostService(ctrl)
	ctx := context.Background()

	repo.EXPECT().CreatePost(ctx, models.Post{Title: "Title", Content: "Body", UserID: owner.ID}).
		Return(models.Post{ID: 10, Title: "Title", Content: "Body", UserID: owner.ID}, nil)

	post, err := svc.CreatePost(ctx, owner, models.CreatePostRequest{Title: "  Title ", Content: "Body"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), post.ID)
	assert.NotNil(t, post.Comments)
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestPostService(ctrl)

	_, err := svc.CreatePost(context.Background(), owner, models.CreatePostRequest{Content: "Body"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestPostService_UpdatePost(t *testing.T) {
	tests := []struct {
		name    string
		actor   models.User
		wantErr error
	}{
		{name: "owner", actor: owner},
		{name: "admin", actor: admin},
		{name: "stranger", actor: stranger, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestPostService(ctrl)
			ctx := context.Background()

			repo.EXPECT().FindPostByID(ctx, int64(10)).Return(ownedPost(), nil)
			if tt.wantErr == nil {
				repo.EXPECT().UpdatePost(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, p models.Post) (models.Post, error) {
						assert.Equal(t, "New", p.Title)
						assert.Equal(t, "Body", p.Content)
						return models.Post{ID: p.ID, Title: p.Title, Content: p.Content, UserID: p.UserID}, nil
					})
			}

			post, err := svc.UpdatePost(ctx, tt.actor, 10, models.UpdatePostRequest{Title: strPtr("New")})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "New", post.Title)
			require.NotNil(t, post.User)
			assert.Len(t, post.Comments, 1)
		})
	}
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPostService(ctrl)

	repo.EXPECT().FindPostByID(gomock.Any(), int64(10)).Return(models.Post{}, store.ErrPostNotFound)

	_, err := svc.UpdatePost(context.Background(), owner, 10, models.UpdatePostRequest{Title: strPtr("New")})
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

// ─────────────────────────────────────────────
// Delete / read
// ─────────────────────────────────────────────

func TestPostService_DeletePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPostService(ctrl)
	ctx := context.Background()

	repo.EXPECT().FindPostByID(ctx, int64(10)).Return(ownedPost(), nil).Times(2)
	repo.EXPECT().DeletePost(ctx, int64(10)).Return(nil)

	assert.ErrorIs(t, svc.DeletePost(ctx, stranger, 10), ErrForbidden)
	assert.NoError(t, svc.DeletePost(ctx, owner, 10))
}

func TestPostService_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPostService(ctrl)
	ctx := context.Background()

	repo.EXPECT().ListPosts(ctx).Return([]models.Post{ownedPost()}, nil)
	repo.EXPECT().FindPostByID(ctx, int64(10)).Return(ownedPost(), nil)

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	post, err := svc.GetPost(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Owner", post.User.Name)
}
