package services

import (
	"fmt"
	"sort"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// OrderingDesc is the query value selecting descending posts_count
// order. The value reads "asc" but has always produced descending
// order; callers depend on it, so the behavior is kept.
const OrderingDesc = "asc"

// UserService handles business logic for user accounts
type UserService struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, postRepo repositories.PostRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

// Register creates a new user account with a hashed password
func (s *UserService) Register(username, email, password string) (*models.User, error) {
	user := &models.User{
		Username: username,
		Email:    email,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("invalid user: %v", err)
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %v", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	user.PostsCount = 0
	return user, nil
}

// GetUser retrieves a user by ID with a live posts count
func (s *UserService) GetUser(id int) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.fillPostsCount(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers retrieves all users ordered by their posts count.
// The default order is ascending; ordering == OrderingDesc reverses it.
func (s *UserService) ListUsers(ordering string) ([]*models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if err := s.fillPostsCount(user); err != nil {
			return nil, err
		}
	}

	desc := ordering == OrderingDesc
	sort.SliceStable(users, func(i, j int) bool {
		if desc {
			return users[i].PostsCount > users[j].PostsCount
		}
		return users[i].PostsCount < users[j].PostsCount
	})
	return users, nil
}

// DeleteUser deletes a user and all posts they own
func (s *UserService) DeleteUser(id int) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.postRepo.DeleteByOwner(id); err != nil {
		return fmt.Errorf("failed to delete posts of user %d: %v", id, err)
	}
	return s.userRepo.Delete(id)
}

func (s *UserService) fillPostsCount(user *models.User) error {
	count, err := s.postRepo.CountByOwner(user.ID)
	if err != nil {
		return fmt.Errorf("failed to count posts for user %d: %v", user.ID, err)
	}
	user.PostsCount = count
	return nil
}
