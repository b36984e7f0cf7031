package mapper

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserMapper_ToDTO(t *testing.T) {
	t.Parallel()

	m := NewUserMapper()

	t.Run("never carries the password hash", func(t *testing.T) {
		t.Parallel()

		dto := m.ToDTO(&entity.User{
			ID:       1,
			Username: "alice",
			Email:    "alice@example.com",
			Password: "$2a$10$hashed",
		})

		require.NotNil(t, dto)
		assert.Equal(t, int64(1), dto.ID)
		assert.Equal(t, "alice", dto.Username)
		assert.Equal(t, "alice@example.com", dto.Email)
		assert.Empty(t, dto.Password)
	})

	t.Run("nil in, nil out", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, m.ToDTO(nil))
	})
}

func TestUserMapper_ToEntity(t *testing.T) {
	t.Parallel()

	m := NewUserMapper()

	user := m.ToEntity(&UserDTO{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "secret123", user.Password)
}

func TestPostMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	owner := &entity.User{ID: 7, Username: "alice", Email: "alice@example.com"}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(owner, nil)

	m := NewPostMapper(userRepo)

	post, err := m.ToEntity(ctx, &PostDTO{Title: "First post", Content: "Hello", UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, "First post", post.Title)
	assert.Equal(t, "Hello", post.Content)
	assert.Equal(t, int64(7), post.UserID)
	assert.Equal(t, "alice", post.Username)

	dto := m.ToDTO(post)
	require.NotNil(t, dto)
	assert.Equal(t, "First post", dto.Title)
	assert.Equal(t, "Hello", dto.Content)
	assert.Equal(t, int64(7), dto.UserID)
	assert.Equal(t, "alice", dto.Username)
	assert.Nil(t, dto.CreatedAt)
	assert.Nil(t, dto.UpdatedAt)
}

func TestPostMapper_ToEntity_MissingOwner(t *testing.T) {
	t.Parallel()

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, repository.ErrUserNotFound)

	m := NewPostMapper(userRepo)

	post, err := m.ToEntity(context.Background(), &PostDTO{Title: "Orphan", Content: "No owner", UserID: 99})
	require.Error(t, err)
	assert.Nil(t, post)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "POST_OWNER_NOT_FOUND", appErr.ErrorCode())
}

func TestPostMapper_ToDTO_Timestamps(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)

	m := NewPostMapper(mockRepo.NewMockUserRepository(t))
	dto := m.ToDTO(&entity.Post{
		ID:        1,
		Title:     "First post",
		Content:   "Hello",
		UserID:    7,
		Username:  "alice",
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	})

	require.NotNil(t, dto)
	require.NotNil(t, dto.CreatedAt)
	require.NotNil(t, dto.UpdatedAt)
	assert.True(t, dto.CreatedAt.Equal(createdAt))
	assert.True(t, dto.UpdatedAt.Equal(updatedAt))
}

func TestPostMapper_ToDTOList_PreservesOrder(t *testing.T) {
	t.Parallel()

	m := NewPostMapper(mockRepo.NewMockUserRepository(t))

	dtos := m.ToDTOList([]*entity.Post{
		{ID: 2, Title: "Second post", Content: "World", UserID: 7, Username: "alice"},
		{ID: 1, Title: "First post", Content: "Hello", UserID: 7, Username: "alice"},
	})

	require.Len(t, dtos, 2)
	assert.Equal(t, int64(2), dtos[0].ID)
	assert.Equal(t, int64(1), dtos[1].ID)
}
