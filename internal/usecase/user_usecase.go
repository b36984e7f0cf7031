// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new user.
// Password arrives in plaintext and is hashed inside the service.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// CreateUser hashes the password and persists the user. Uniqueness of
	// username/email is the caller's responsibility (the handler pre-checks).
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// GetAllUsers returns every user, hashed passwords included; mapping to
	// the wire format is responsible for omitting the hash.
	GetAllUsers(ctx context.Context) ([]*entity.User, error)

	// ExistsByUsername probes the store's unique username index.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail probes the store's unique email index.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// DeleteUserByUsernameAndEmail deletes the user whose username matches and
	// whose stored email equals the supplied one exactly. Returns false with
	// no mutation on any mismatch.
	DeleteUserByUsernameAndEmail(ctx context.Context, username, email string) (bool, error)

	// ChangePassword verifies oldPassword against the stored hash and, on
	// match, persists a hash of newPassword. Returns false with no mutation
	// when the user is missing or the old password does not verify.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (bool, error)
}
