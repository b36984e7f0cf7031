package handler

import (
	"net/http"
	"testing"

	"blog/internal/delivery/http/mapper"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
	mockUsecase "blog/internal/mocks/usecase"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPostHandler(t *testing.T, uc usecase.PostUsecase, userRepo repository.UserRepository) *PostHandler {
	t.Helper()

	if userRepo == nil {
		userRepo = mockRepo.NewMockUserRepository(t)
	}

	return NewPostHandler(uc, mapper.NewPostMapper(userRepo), discardLogger())
}

func withParam(name, value string) func(echo.Context) {
	return func(c echo.Context) {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}
}

func TestPostHandler_GetAllPosts(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	uc := mockUsecase.NewMockPostUsecase(t)
	h := newPostHandler(t, uc, nil)

	uc.EXPECT().GetAllPosts(mock.Anything).Return([]*entity.Post{
		{ID: 1, Title: "First post", Content: "Hello", UserID: 7, Username: "alice"},
		{ID: 2, Title: "Second post", Content: "World", UserID: 7, Username: "alice"},
	}, nil)

	rec, resp := serveJSON(t, e, http.MethodGet, "/api/posts", "", nil, h.GetAllPosts)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Posts retrieved successfully", resp.Message)
}

func TestPostHandler_GetPostByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the post", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockPostUsecase(t)
		h := newPostHandler(t, uc, nil)

		uc.EXPECT().GetPostByID(mock.Anything, int64(1)).
			Return(&entity.Post{ID: 1, Title: "First post", Content: "Hello", UserID: 7, Username: "alice"}, nil)

		rec, resp := serveJSON(t, e, http.MethodGet, "/api/posts/1", "", withParam("id", "1"), h.GetPostByID)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
	})

	t.Run("404 for a missing post", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockPostUsecase(t)
		h := newPostHandler(t, uc, nil)

		uc.EXPECT().GetPostByID(mock.Anything, int64(42)).Return(nil, repository.ErrPostNotFound)

		rec, resp := serveJSON(t, e, http.MethodGet, "/api/posts/42", "", withParam("id", "42"), h.GetPostByID)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "POST_NOT_FOUND", resp.Error.Code)
	})

	t.Run("400 for a non-numeric id", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockPostUsecase(t)
		h := newPostHandler(t, uc, nil)

		rec, resp := serveJSON(t, e, http.MethodGet, "/api/posts/abc", "", withParam("id", "abc"), h.GetPostByID)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
		uc.AssertNotCalled(t, "GetPostByID", mock.Anything, mock.Anything)
	})
}

func TestPostHandler_GetPostsByUserID(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	uc := mockUsecase.NewMockPostUsecase(t)
	h := newPostHandler(t, uc, nil)

	uc.EXPECT().GetPostsByUserID(mock.Anything, int64(7)).Return([]*entity.Post{
		{ID: 1, Title: "First post", Content: "Hello", UserID: 7, Username: "alice"},
	}, nil)

	rec, resp := serveJSON(t, e, http.MethodGet, "/api/posts/user/7", "", withParam("userId", "7"), h.GetPostsByUserID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestPostHandler_GetPostsByUsername(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	uc := mockUsecase.NewMockPostUsecase(t)
	h := newPostHandler(t, uc, nil)

	uc.EXPECT().GetPostsByUsername(mock.Anything, "alice").Return([]*entity.Post{
		{ID: 1, Title: "First post", Content: "Hello", UserID: 7, Username: "alice"},
	}, nil)

	rec, resp := serveJSON(t, e, http.MethodGet, "/api/posts/username/alice", "", withParam("username", "alice"), h.GetPostsByUsername)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestPostHandler_CreatePost(t *testing.T) {
	t.Parallel()

	t.Run("creates a post for an existing owner", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockPostUsecase(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		h := newPostHandler(t, uc, userRepo)

		owner := &entity.User{ID: 7, Username: "alice", Email: "alice@example.com"}
		userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(owner, nil)
		uc.EXPECT().
			CreatePost(mock.Anything, mock.AnythingOfType("*entity.Post"), int64(7)).
			Return(&entity.Post{ID: 1, Title: "First post", Content: "Hello", UserID: 7, Username: "alice"}, nil)

		body := `{"title":"First post","content":"Hello","userId":7}`
		rec, resp := serveJSON(t, e, http.MethodPost, "/api/posts", body, nil, h.CreatePost)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Post created successfully", resp.Message)
	})

	t.Run("400 when the referenced owner is missing", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockPostUsecase(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		h := newPostHandler(t, uc, userRepo)

		userRepo.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, repository.ErrUserNotFound)

		body := `{"title":"Orphan","content":"No owner","userId":99}`
		rec, resp := serveJSON(t, e, http.MethodPost, "/api/posts", body, nil, h.CreatePost)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "POST_OWNER_NOT_FOUND", resp.Error.Code)
		uc.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("400 when the title is too short", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockPostUsecase(t)
		h := newPostHandler(t, uc, nil)

		body := `{"title":"ab","content":"Hello","userId":7}`
		rec, resp := serveJSON(t, e, http.MethodPost, "/api/posts", body, nil, h.CreatePost)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	})
}

func TestPostHandler_UpdatePost(t *testing.T) {
	t.Parallel()

	t.Run("updates title and content", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockPostUsecase(t)
		h := newPostHandler(t, uc, nil)

		uc.EXPECT().
			UpdatePost(mock.Anything, int64(1), &usecase.UpdatePostInput{Title: "New title", Content: "New content"}).
			Return(&entity.Post{ID: 1, Title: "New title", Content: "New content", UserID: 7, Username: "alice"}, nil)

		body := `{"title":"New title","content":"New content","userId":7}`
		rec, resp := serveJSON(t, e, http.MethodPut, "/api/posts/1", body, withParam("id", "1"), h.UpdatePost)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Post updated successfully", resp.Message)
	})

	t.Run("404 for a missing post", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockPostUsecase(t)
		h := newPostHandler(t, uc, nil)

		uc.EXPECT().
			UpdatePost(mock.Anything, int64(42), &usecase.UpdatePostInput{Title: "New title", Content: "New content"}).
			Return(nil, repository.ErrPostNotFound)

		body := `{"title":"New title","content":"New content","userId":7}`
		rec, resp := serveJSON(t, e, http.MethodPut, "/api/posts/42", body, withParam("id", "42"), h.UpdatePost)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "POST_NOT_FOUND", resp.Error.Code)
	})
}

func TestPostHandler_DeletePost(t *testing.T) {
	t.Parallel()

	t.Run("200 when the post existed", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockPostUsecase(t)
		h := newPostHandler(t, uc, nil)

		uc.EXPECT().DeletePost(mock.Anything, int64(1)).Return(true, nil)

		rec, resp := serveJSON(t, e, http.MethodDelete, "/api/posts/1", "", withParam("id", "1"), h.DeletePost)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Post deleted successfully", resp.Message)
	})

	t.Run("404 when nothing was deleted", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockPostUsecase(t)
		h := newPostHandler(t, uc, nil)

		uc.EXPECT().DeletePost(mock.Anything, int64(1)).Return(false, nil)

		rec, resp := serveJSON(t, e, http.MethodDelete, "/api/posts/1", "", withParam("id", "1"), h.DeletePost)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "POST_NOT_FOUND", resp.Error.Code)
	})
}
