package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// --- Input DTOs ---

// UpdatePostInput defines the fields a post update may touch. Owner and
// timestamps are out of reach by construction.
type UpdatePostInput struct {
	Title   string
	Content string
}

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	// GetAllPosts returns every post.
	GetAllPosts(ctx context.Context) ([]*entity.Post, error)

	// GetPostByID returns the post with the given id, or
	// repository.ErrPostNotFound when it does not exist.
	GetPostByID(ctx context.Context, id int64) (*entity.Post, error)

	// GetPostsByUserID returns all posts owned by the given user id.
	GetPostsByUserID(ctx context.Context, userID int64) ([]*entity.Post, error)

	// GetPostsByUsername returns all posts whose owner has the given username.
	GetPostsByUsername(ctx context.Context, username string) ([]*entity.Post, error)

	// CreatePost resolves userID to an existing user, assigns it as the
	// post's owner and persists. A missing owner is a hard precondition
	// failure (domainerrors.ErrPostOwnerNotFound), not ordinary absence.
	CreatePost(ctx context.Context, post *entity.Post, userID int64) (*entity.Post, error)

	// UpdatePost overwrites only title and content of the post with the given
	// id and returns the updated record, or repository.ErrPostNotFound.
	UpdatePost(ctx context.Context, id int64, input *UpdatePostInput) (*entity.Post, error)

	// DeletePost removes the post with the given id. True exactly once per
	// existing id; a repeat call reports false.
	DeletePost(ctx context.Context, id int64) (bool, error)

	// IsPostOwner reports whether the post exists and is owned by userID.
	// Not routed by the current API; kept for a future authorization layer.
	IsPostOwner(ctx context.Context, postID, userID int64) (bool, error)
}
