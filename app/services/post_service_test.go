package services

import (
	"strings"
	"testing"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostServiceFixture(t *testing.T) (*PostService, *models.User, *mock.PostRepository) {
	userRepo := mock.NewUserRepository()
	postRepo := mock.NewPostRepository()

	owner := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, userRepo.Create(owner))

	return NewPostService(postRepo, userRepo), owner, postRepo
}

func TestCreatePost(t *testing.T) {
	svc, owner, _ := newPostServiceFixture(t)

	post, err := svc.CreatePost("Hello", "First post body", owner.ID)
	require.NoError(t, err)
	assert.Greater(t, post.ID, 0)
	assert.Equal(t, owner.ID, post.OwnerID)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestCreatePostRejectsUnknownOwner(t *testing.T) {
	svc, _, _ := newPostServiceFixture(t)

	_, err := svc.CreatePost("Hello", "Body", 999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCreatePostRejectsInvalidInput(t *testing.T) {
	svc, owner, _ := newPostServiceFixture(t)

	tests := []struct {
		name  string
		title string
		body  string
	}{
		{"empty title", "", "Body"},
		{"empty body", "Title", ""},
		{"title over 100 chars", strings.Repeat("a", 101), "Body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(tt.title, tt.body, owner.ID)
			assert.Error(t, err)
		})
	}
}

func TestGetPost(t *testing.T) {
	svc, owner, _ := newPostServiceFixture(t)

	created, err := svc.CreatePost("Hello", "Body", owner.ID)
	require.NoError(t, err)

	post, err := svc.GetPost(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)

	_, err = svc.GetPost(999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestListPosts(t *testing.T) {
	svc, owner, postRepo := newPostServiceFixture(t)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, postRepo.Create(&models.Post{Title: "old", Body: "b", OwnerID: owner.ID, CreatedAt: base}))
	require.NoError(t, postRepo.Create(&models.Post{Title: "other", Body: "b", OwnerID: 999, CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, postRepo.Create(&models.Post{Title: "new", Body: "b", OwnerID: owner.ID, CreatedAt: base.Add(2 * time.Hour)}))

	t.Run("all posts newest first", func(t *testing.T) {
		posts, err := svc.ListPosts(nil)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "new", posts[0].Title)
		assert.Equal(t, "other", posts[1].Title)
		assert.Equal(t, "old", posts[2].Title)
	})

	t.Run("owner filter", func(t *testing.T) {
		posts, err := svc.ListPosts(&owner.ID)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "new", posts[0].Title)
		assert.Equal(t, "old", posts[1].Title)
	})
}
