package repositories

import (
	"testing"

	"blogapi/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	t.Run("create and get user", func(t *testing.T) {
		user := &models.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "hashed",
		}

		err := repo.Create(user)
		assert.NoError(t, err)
		assert.Greater(t, user.ID, 0)
		assert.False(t, user.CreatedAt.IsZero())

		retrieved, err := repo.GetByID(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "alice", retrieved.Username)
		assert.Equal(t, "alice@example.com", retrieved.Email)
		assert.Equal(t, "hashed", retrieved.PasswordHash)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		user := &models.User{
			Username:     "alice",
			Email:        "other@example.com",
			PasswordHash: "hashed",
		}

		err := repo.Create(user)
		assert.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("get by username", func(t *testing.T) {
		user, err := repo.GetByUsername("alice")
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		_, err = repo.GetByUsername("nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("get missing user", func(t *testing.T) {
		_, err := repo.GetByID(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list users", func(t *testing.T) {
		err := repo.Create(&models.User{
			Username:     "bob",
			Email:        "bob@example.com",
			PasswordHash: "hashed",
		})
		assert.NoError(t, err)

		users, err := repo.List()
		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("delete frees the username", func(t *testing.T) {
		user := &models.User{
			Username:     "carol",
			Email:        "carol@example.com",
			PasswordHash: "hashed",
		}
		require.NoError(t, repo.Create(user))

		err := repo.Delete(user.ID)
		assert.NoError(t, err)

		_, err = repo.GetByID(user.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repo.GetByUsername("carol")
		assert.ErrorIs(t, err, ErrNotFound)

		// The username can be registered again after deletion
		err = repo.Create(&models.User{
			Username:     "carol",
			Email:        "carol2@example.com",
			PasswordHash: "hashed",
		})
		assert.NoError(t, err)
	})

	t.Run("delete missing user", func(t *testing.T) {
		err := repo.Delete(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
