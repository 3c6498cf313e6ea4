package repositories

import (
	"fmt"
	"sort"

	"blogapi/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a new post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id
		post.BeforeCreate()

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, post.ID))
		return txn.Set(key, data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts, most recent first
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	posts, err := r.scan(func(*models.Post) bool { return true })
	if err != nil {
		return nil, err
	}
	sortNewestFirst(posts)
	return posts, nil
}

// ListByOwner retrieves the posts of one owner, most recent first
func (r *BadgerPostRepository) ListByOwner(ownerID int) ([]*models.Post, error) {
	posts, err := r.scan(func(p *models.Post) bool { return p.OwnerID == ownerID })
	if err != nil {
		return nil, err
	}
	sortNewestFirst(posts)
	return posts, nil
}

// CountByOwner counts the posts of one owner
func (r *BadgerPostRepository) CountByOwner(ownerID int) (int, error) {
	posts, err := r.scan(func(p *models.Post) bool { return p.OwnerID == ownerID })
	if err != nil {
		return 0, err
	}
	return len(posts), nil
}

// DeleteByOwner deletes all posts belonging to one owner
func (r *BadgerPostRepository) DeleteByOwner(ownerID int) error {
	posts, err := r.scan(func(p *models.Post) bool { return p.OwnerID == ownerID })
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		for _, post := range posts {
			key := []byte(fmt.Sprintf("%s%d", PostKeyPrefix, post.ID))
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// scan iterates all stored posts and keeps the ones matching the filter
func (r *BadgerPostRepository) scan(match func(*models.Post) bool) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			if match(&post) {
				posts = append(posts, &post)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// sortNewestFirst orders posts by creation time descending, breaking
// ties by ID so the order stays deterministic.
func sortNewestFirst(posts []*models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
