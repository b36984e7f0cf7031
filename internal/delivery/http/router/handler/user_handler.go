package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/http/mapper"
	"blog/internal/delivery/http/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// passwordChangeRequest is the inbound shape for the password-change flow.
type passwordChangeRequest struct {
	Username    string `json:"username" validate:"required,notblank"`
	OldPassword string `json:"oldPassword" validate:"required,notblank"`
	NewPassword string `json:"newPassword" validate:"required,notblank,min=6"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	mapper *mapper.UserMapper
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, userMapper *mapper.UserMapper, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		mapper: userMapper,
		logger: logger,
	}
}

// GetAllUsers handles listing every user. The mapper strips the password
// hash before anything reaches the wire.
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.uc.GetAllUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.ToDTOList(users), "Users retrieved successfully")
}

// CreateUser handles user registration. Username and email uniqueness are
// pre-checked here, before the service is invoked.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var dto mapper.UserDTO
	if err := c.Bind(&dto); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&dto); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	usernameTaken, err := h.uc.ExistsByUsername(ctx, dto.Username)
	if err != nil {
		return errors.WithStack(err)
	}
	if usernameTaken {
		return domainerrors.ErrUsernameTaken
	}

	emailTaken, err := h.uc.ExistsByEmail(ctx, dto.Email)
	if err != nil {
		return errors.WithStack(err)
	}
	if emailTaken {
		return domainerrors.ErrEmailTaken
	}

	user, err := h.uc.CreateUser(ctx, &usecase.CreateUserInput{
		Username: dto.Username,
		Email:    dto.Email,
		Password: dto.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.mapper.ToDTO(user), "User created successfully")
}

// DeleteUser handles deleting a user matched by username and email query
// params. The operation is gated only by knowledge of both fields; an
// external auth layer is expected to close that gap.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	username := c.QueryParam("username")
	email := c.QueryParam("email")
	if username == "" || email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "username and email query parameters are required")
	}

	deleted, err := h.uc.DeleteUserByUsernameAndEmail(c.Request().Context(), username, email)
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return domainerrors.ErrUserNotFound.WithMessage("User not found or details incorrect")
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted successfully"}, "User deleted successfully")
}

// ChangePassword handles the password-change flow. A credential mismatch is
// reported as unauthorized, deliberately distinct from not-found.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var input passwordChangeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	changed, err := h.uc.ChangePassword(c.Request().Context(), input.Username, input.OldPassword, input.NewPassword)
	if err != nil {
		return errors.WithStack(err)
	}
	if !changed {
		return domainerrors.ErrInvalidCredentials
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed successfully"}, "Password changed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
