package validator

import (
	"net/http"
	"testing"

	"blog/internal/delivery/http/mapper"
	domainerrors "blog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Title   string `validate:"required,notblank,min=3,max=100"`
	Content string `validate:"required,notblank"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()

	cv := New()

	t.Run("accepts a valid struct", func(t *testing.T) {
		t.Parallel()

		err := cv.Validate(&sampleInput{Title: "First post", Content: "Hello"})
		assert.NoError(t, err)
	})

	t.Run("collects per-field messages", func(t *testing.T) {
		t.Parallel()

		err := cv.Validate(&sampleInput{Title: "ab"})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

		fields, ok := appErr.Details().(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "must be at least 3 characters", fields["Title"])
		assert.Equal(t, "is required", fields["Content"])
	})

	t.Run("rejects a whitespace-only post", func(t *testing.T) {
		t.Parallel()

		err := cv.Validate(&mapper.PostDTO{Title: "   ", Content: " ", UserID: 1})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)

		fields, ok := appErr.Details().(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "must not be blank", fields["Title"])
		assert.Equal(t, "must not be blank", fields["Content"])
	})

	t.Run("rejects a whitespace-only user", func(t *testing.T) {
		t.Parallel()

		err := cv.Validate(&mapper.UserDTO{Username: " ", Email: "\t", Password: "   "})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)

		fields, ok := appErr.Details().(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "must not be blank", fields["Username"])
		assert.Equal(t, "must not be blank", fields["Email"])
		assert.Equal(t, "must not be blank", fields["Password"])
	})
}
