package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog/internal/delivery/http/mapper"
	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/response"
	"blog/internal/delivery/http/validator"
	"blog/internal/domain/entity"
	mockUsecase "blog/internal/mocks/usecase"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// serveJSON runs the handler and, if it returns an error, renders it through
// the central error handler so the recorder holds the final wire response.
func serveJSON(t *testing.T, e *echo.Echo, method, target string, body string, setup func(echo.Context), h echo.HandlerFunc) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	if err := h(c); err != nil {
		middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError(err, c)
	}

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return rec, resp
}

func TestUserHandler_GetAllUsers(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, mapper.NewUserMapper(), discardLogger())

	uc.EXPECT().GetAllUsers(mock.Anything).Return([]*entity.User{
		{ID: 1, Username: "alice", Email: "alice@example.com", Password: "$2a$10$hashed"},
	}, nil)

	rec, resp := serveJSON(t, e, http.MethodGet, "/api/users", "", nil, h.GetAllUsers)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$10$hashed")
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("creates the user after both uniqueness probes pass", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, mapper.NewUserMapper(), discardLogger())

		uc.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(false, nil)
		uc.EXPECT().ExistsByEmail(mock.Anything, "alice@example.com").Return(false, nil)
		uc.EXPECT().
			CreateUser(mock.Anything, &usecase.CreateUserInput{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret123",
			}).
			Return(&entity.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "$2a$10$hashed"}, nil)

		body := `{"username":"alice","email":"alice@example.com","password":"secret123"}`
		rec, resp := serveJSON(t, e, http.MethodPost, "/api/users", body, nil, h.CreateUser)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "User created successfully", resp.Message)
		assert.NotContains(t, rec.Body.String(), "$2a$10$hashed")
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, mapper.NewUserMapper(), discardLogger())

		uc.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(true, nil)

		body := `{"username":"alice","email":"alice@example.com","password":"secret123"}`
		rec, resp := serveJSON(t, e, http.MethodPost, "/api/users", body, nil, h.CreateUser)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "USERNAME_TAKEN", resp.Error.Code)
		assert.Equal(t, "This username is already taken", resp.Message)
		uc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, mapper.NewUserMapper(), discardLogger())

		uc.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(false, nil)
		uc.EXPECT().ExistsByEmail(mock.Anything, "alice@example.com").Return(true, nil)

		body := `{"username":"alice","email":"alice@example.com","password":"secret123"}`
		rec, resp := serveJSON(t, e, http.MethodPost, "/api/users", body, nil, h.CreateUser)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "EMAIL_TAKEN", resp.Error.Code)
		assert.Equal(t, "This email is already in use", resp.Message)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, mapper.NewUserMapper(), discardLogger())

		body := `{"username":"alice"}`
		rec, resp := serveJSON(t, e, http.MethodPost, "/api/users", body, nil, h.CreateUser)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
		uc.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("deletes when both params match a user", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, mapper.NewUserMapper(), discardLogger())

		uc.EXPECT().DeleteUserByUsernameAndEmail(mock.Anything, "alice", "alice@example.com").Return(true, nil)

		rec, resp := serveJSON(t, e, http.MethodDelete, "/api/users?username=alice&email=alice@example.com", "", nil, h.DeleteUser)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "User deleted successfully", resp.Message)
	})

	t.Run("404 when the usecase reports no deletion", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, mapper.NewUserMapper(), discardLogger())

		uc.EXPECT().DeleteUserByUsernameAndEmail(mock.Anything, "alice", "wrong@example.com").Return(false, nil)

		rec, resp := serveJSON(t, e, http.MethodDelete, "/api/users?username=alice&email=wrong@example.com", "", nil, h.DeleteUser)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "USER_NOT_FOUND", resp.Error.Code)
		assert.Equal(t, "User not found or details incorrect", resp.Message)
	})

	t.Run("400 when a query param is missing", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, mapper.NewUserMapper(), discardLogger())

		rec, resp := serveJSON(t, e, http.MethodDelete, "/api/users?username=alice", "", nil, h.DeleteUser)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
		uc.AssertNotCalled(t, "DeleteUserByUsernameAndEmail", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserHandler_ChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("changes the password on a valid request", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, mapper.NewUserMapper(), discardLogger())

		uc.EXPECT().ChangePassword(mock.Anything, "alice", "old-secret", "new-secret").Return(true, nil)

		body := `{"username":"alice","oldPassword":"old-secret","newPassword":"new-secret"}`
		rec, resp := serveJSON(t, e, http.MethodPut, "/api/users/password", body, nil, h.ChangePassword)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Password changed successfully", resp.Message)
	})

	t.Run("401 on credential mismatch", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, mapper.NewUserMapper(), discardLogger())

		uc.EXPECT().ChangePassword(mock.Anything, "alice", "wrong", "new-secret").Return(false, nil)

		body := `{"username":"alice","oldPassword":"wrong","newPassword":"new-secret"}`
		rec, resp := serveJSON(t, e, http.MethodPut, "/api/users/password", body, nil, h.ChangePassword)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
		assert.Equal(t, "Username or old password incorrect", resp.Message)
	})

	t.Run("400 when the new password is too short", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, mapper.NewUserMapper(), discardLogger())

		body := `{"username":"alice","oldPassword":"old-secret","newPassword":"short"}`
		rec, resp := serveJSON(t, e, http.MethodPut, "/api/users/password", body, nil, h.ChangePassword)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
		uc.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	rec, resp := serveJSON(t, e, http.MethodGet, "/health", "", nil, HealthCheck)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}
