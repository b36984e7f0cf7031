// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser hashes the plaintext password and persists the user. Uniqueness
// pre-checks happen at the API boundary; the store's unique indexes back them up.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during user creation", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("User created", slog.Int64("userID", user.ID), slog.String("username", user.Username))

	return user, nil
}

// GetAllUsers returns every user. The hashed password stays on the entity;
// the transfer mapper is responsible for never exposing it.
func (srv *userService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ExistsByUsername probes the unique username index.
func (srv *userService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	exists, err := srv.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, errors.Wrap(err, "failed to check username existence")
	}

	return exists, nil
}

// ExistsByEmail probes the unique email index.
func (srv *userService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := srv.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return exists, nil
}

// DeleteUserByUsernameAndEmail deletes only when the username resolves and the
// stored email matches exactly. The lookup and delete share one transaction.
// No credential check happens here; closing that gap is left to an external
// auth layer.
func (srv *userService) DeleteUserByUsernameAndEmail(ctx context.Context, username, email string) (bool, error) {
	var deleted bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByUsername(ctx, username)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by username")
		}

		if user.Email != email {
			return nil
		}

		if err := userRepo.Delete(ctx, user); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}
		deleted = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user deletion transaction", slog.String("username", username), slog.Any("error", err))

		return false, err
	}

	if deleted {
		srv.log(ctx).Info("User deleted", slog.String("username", username))
	}

	return deleted, nil
}

// ChangePassword verifies the old password against the stored hash and, on
// match, persists a hash of the new one. Any failure leaves the store untouched.
func (srv *userService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (bool, error) {
	var changed bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByUsername(ctx, username)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by username")
		}

		if !srv.hasher.Check(oldPassword, user.Password) {
			return nil
		}

		hashedPassword, err := srv.hasher.Hash(newPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		user.Password = hashedPassword
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to persist new password")
		}
		changed = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute password change transaction", slog.String("username", username), slog.Any("error", err))

		return false, err
	}

	if changed {
		srv.log(ctx).Info("Password changed", slog.String("username", username))
	} else {
		srv.log(ctx).Warn("Password change rejected", slog.String("username", username))
	}

	return changed, nil
}
