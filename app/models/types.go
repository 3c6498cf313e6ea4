package models

import "time"

// User represents a registered account that can own blog posts.
// The JSON tags describe the stored record; API responses are shaped by
// the controllers and never include the password hash. PostsCount is
// derived on read from the post store and is not persisted.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Username     string    `json:"username" validate:"required,min=3,max=32"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"password_hash" validate:"-"`
	CreatedAt    time.Time `json:"created_at" validate:"-"`
	PostsCount   int       `json:"-" validate:"-"`
}

// Post represents a blog post permanently bound to one owner.
// The stored record and the API representation share one shape.
type Post struct {
	ID        int       `json:"id" validate:"gte=0"`
	CreatedAt time.Time `json:"created" validate:"-"`
	Title     string    `json:"title" validate:"required,max=100"`
	Body      string    `json:"body" validate:"required"`
	OwnerID   int       `json:"owner" validate:"required,gt=0"`
}
