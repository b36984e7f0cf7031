package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog/internal/delivery/http/response"
	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return rec, resp
}

func TestHandleHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("renders a taxonomy error with its own codes", func(t *testing.T) {
		t.Parallel()

		rec, resp := renderError(t, domainerrors.ErrPostNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "Post not found", resp.Message)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "POST_NOT_FOUND", resp.Error.Code)
	})

	t.Run("finds a wrapped taxonomy error", func(t *testing.T) {
		t.Parallel()

		rec, resp := renderError(t, errors.Wrap(domainerrors.ErrUsernameTaken, "creating user"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "USERNAME_TAKEN", resp.Error.Code)
		assert.Equal(t, "This username is already taken", resp.Message)
	})

	t.Run("honors an overridden message", func(t *testing.T) {
		t.Parallel()

		rec, resp := renderError(t, domainerrors.ErrUserNotFound.WithMessage("User not found or details incorrect"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found or details incorrect", resp.Message)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "USER_NOT_FOUND", resp.Error.Code)
	})

	t.Run("renders an echo HTTPError", func(t *testing.T) {
		t.Parallel()

		rec, resp := renderError(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "request too large"))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "HTTP_ERROR", resp.Error.Code)
	})

	t.Run("anything else falls back to the internal error", func(t *testing.T) {
		t.Parallel()

		rec, resp := renderError(t, errors.New("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", resp.Message)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
		assert.Equal(t, "connection reset", resp.Error.Details)
	})
}
