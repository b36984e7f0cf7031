package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// FindAll retrieves every post, in id order.
	FindAll(ctx context.Context) ([]*entity.Post, error)

	// FindByUserID retrieves all posts owned by the given user id.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Post, error)

	// FindByUsername retrieves all posts whose owner has the given username.
	FindByUsername(ctx context.Context, username string) ([]*entity.Post, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies an existing post entity in the storage.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes an existing post entity from the storage.
	Delete(ctx context.Context, post *entity.Post) error
}
