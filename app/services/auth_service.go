package services

import (
	"errors"

	"blogapi/app/auth"
	"blogapi/app/repositories"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService authenticates credentials and manages token lifecycles
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login checks the credentials and issues a token on success
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !user.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID, user.Username)
}

// Refresh exchanges a valid token for a fresh one
func (s *AuthService) Refresh(token string) (string, error) {
	return s.tokens.Refresh(token)
}

// Verify checks a token and returns its claims
func (s *AuthService) Verify(token string) (*auth.Claims, error) {
	return s.tokens.Verify(token)
}
