package services

import (
	"fmt"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost creates a post owned by ownerID. The owner always comes
// from the authenticated caller, never from request data.
func (s *PostService) CreatePost(title, body string, ownerID int) (*models.Post, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		return nil, fmt.Errorf("invalid post owner %d: %w", ownerID, err)
	}

	post := &models.Post{
		Title:   title,
		Body:    body,
		OwnerID: ownerID,
	}
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %v", err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves posts most recent first, optionally restricted to
// one owner.
func (s *PostService) ListPosts(ownerID *int) ([]*models.Post, error) {
	if ownerID != nil {
		return s.postRepo.ListByOwner(*ownerID)
	}
	return s.postRepo.List()
}
