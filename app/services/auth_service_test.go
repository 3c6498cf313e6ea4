package services

import (
	"testing"
	"time"

	"blogapi/app/auth"
	"blogapi/app/models"
	"blogapi/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServiceFixture(t *testing.T) (*AuthService, *models.User) {
	userRepo := mock.NewUserRepository()
	tokens := auth.NewTokenManager("test-secret", time.Hour, 7*24*time.Hour)

	user := &models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, user.SetPassword("s3cret-pass"))
	require.NoError(t, userRepo.Create(user))

	return NewAuthService(userRepo, tokens), user
}

func TestLogin(t *testing.T) {
	svc, user := newAuthServiceFixture(t)

	token, err := svc.Login("alice", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthServiceFixture(t)

	_, err := svc.Login("alice", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRoundTrip(t *testing.T) {
	svc, user := newAuthServiceFixture(t)

	token, err := svc.Login("alice", "s3cret-pass")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(token)
	require.NoError(t, err)

	claims, err := svc.Verify(refreshed)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRefreshAndVerifyRejectCorruptedToken(t *testing.T) {
	svc, _ := newAuthServiceFixture(t)

	token, err := svc.Login("alice", "s3cret-pass")
	require.NoError(t, err)

	corrupted := token + "garbage"
	_, err = svc.Refresh(corrupted)
	assert.Error(t, err)
	_, err = svc.Verify(corrupted)
	assert.Error(t, err)
}
