package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
	mockService "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher *mockService.MockPasswordHasher,
) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    discardLogger(),
	})
}

// passthroughTx returns a transaction manager mock that simply invokes the
// given function with the provided factory, mimicking a committed transaction.
func passthroughTx(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager
}

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("hashes password before persisting", func(t *testing.T) {
		t.Parallel()

		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockService.NewMockPasswordHasher(t)

		hasher.EXPECT().Hash("plaintext").Return("$2a$10$hashed", nil)
		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(_ context.Context, user *entity.User) error {
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, "alice@example.com", user.Email)
				assert.Equal(t, "$2a$10$hashed", user.Password)
				user.ID = 1

				return nil
			})

		srv := newUserService(mockRepo.NewMockTransactionManager(t), userRepo, hasher)

		user, err := srv.CreateUser(ctx, &usecase.CreateUserInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "plaintext",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "$2a$10$hashed", user.Password)
	})

	t.Run("propagates hasher failure without touching the store", func(t *testing.T) {
		t.Parallel()

		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockService.NewMockPasswordHasher(t)

		hasher.EXPECT().Hash("plaintext").Return("", errors.New("cost out of range"))

		srv := newUserService(mockRepo.NewMockTransactionManager(t), userRepo, hasher)

		user, err := srv.CreateUser(ctx, &usecase.CreateUserInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "plaintext",
		})
		require.Error(t, err)
		assert.Nil(t, user)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_ExistenceProbes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("username probe", func(t *testing.T) {
		t.Parallel()

		userRepo := mockRepo.NewMockUserRepository(t)
		userRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil)

		srv := newUserService(mockRepo.NewMockTransactionManager(t), userRepo, mockService.NewMockPasswordHasher(t))

		exists, err := srv.ExistsByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("email probe", func(t *testing.T) {
		t.Parallel()

		userRepo := mockRepo.NewMockUserRepository(t)
		userRepo.EXPECT().ExistsByEmail(ctx, "bob@example.com").Return(false, nil)

		srv := newUserService(mockRepo.NewMockTransactionManager(t), userRepo, mockService.NewMockPasswordHasher(t))

		exists, err := srv.ExistsByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestUserService_DeleteUserByUsernameAndEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	stored := &entity.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "$2a$10$hashed"}

	t.Run("deletes when username and email both match", func(t *testing.T) {
		t.Parallel()

		txUserRepo := mockRepo.NewMockUserRepository(t)
		txUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
		txUserRepo.EXPECT().Delete(ctx, stored).Return(nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		srv := newUserService(passthroughTx(t, factory), mockRepo.NewMockUserRepository(t), mockService.NewMockPasswordHasher(t))

		deleted, err := srv.DeleteUserByUsernameAndEmail(ctx, "alice", "alice@example.com")
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("reports false when the username is unknown", func(t *testing.T) {
		t.Parallel()

		txUserRepo := mockRepo.NewMockUserRepository(t)
		txUserRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		srv := newUserService(passthroughTx(t, factory), mockRepo.NewMockUserRepository(t), mockService.NewMockPasswordHasher(t))

		deleted, err := srv.DeleteUserByUsernameAndEmail(ctx, "ghost", "ghost@example.com")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("reports false without deleting when the email differs", func(t *testing.T) {
		t.Parallel()

		txUserRepo := mockRepo.NewMockUserRepository(t)
		txUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		srv := newUserService(passthroughTx(t, factory), mockRepo.NewMockUserRepository(t), mockService.NewMockPasswordHasher(t))

		deleted, err := srv.DeleteUserByUsernameAndEmail(ctx, "alice", "wrong@example.com")
		require.NoError(t, err)
		assert.False(t, deleted)
		txUserRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("replaces the hash when the old password verifies", func(t *testing.T) {
		t.Parallel()

		stored := &entity.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "$2a$10$old"}

		hasher := mockService.NewMockPasswordHasher(t)
		hasher.EXPECT().Check("old-secret", "$2a$10$old").Return(true)
		hasher.EXPECT().Hash("new-secret").Return("$2a$10$new", nil)

		txUserRepo := mockRepo.NewMockUserRepository(t)
		txUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
		txUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(_ context.Context, user *entity.User) error {
				assert.Equal(t, "$2a$10$new", user.Password)

				return nil
			})

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		srv := newUserService(passthroughTx(t, factory), mockRepo.NewMockUserRepository(t), hasher)

		changed, err := srv.ChangePassword(ctx, "alice", "old-secret", "new-secret")
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("rejects a wrong old password without mutation", func(t *testing.T) {
		t.Parallel()

		stored := &entity.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "$2a$10$old"}

		hasher := mockService.NewMockPasswordHasher(t)
		hasher.EXPECT().Check("not-the-old-one", "$2a$10$old").Return(false)

		txUserRepo := mockRepo.NewMockUserRepository(t)
		txUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		srv := newUserService(passthroughTx(t, factory), mockRepo.NewMockUserRepository(t), hasher)

		changed, err := srv.ChangePassword(ctx, "alice", "not-the-old-one", "new-secret")
		require.NoError(t, err)
		assert.False(t, changed)
		txUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown username", func(t *testing.T) {
		t.Parallel()

		txUserRepo := mockRepo.NewMockUserRepository(t)
		txUserRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		srv := newUserService(passthroughTx(t, factory), mockRepo.NewMockUserRepository(t), mockService.NewMockPasswordHasher(t))

		changed, err := srv.ChangePassword(ctx, "ghost", "old-secret", "new-secret")
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("surfaces a transaction failure", func(t *testing.T) {
		t.Parallel()

		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().
			Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			Return(errors.New("connection reset"))

		srv := newUserService(txManager, mockRepo.NewMockUserRepository(t), mockService.NewMockPasswordHasher(t))

		changed, err := srv.ChangePassword(ctx, "alice", "old-secret", "new-secret")
		require.Error(t, err)
		assert.False(t, changed)
	})
}
