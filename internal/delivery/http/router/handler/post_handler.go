// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"blog/internal/delivery/http/mapper"
	"blog/internal/delivery/http/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	mapper *mapper.PostMapper
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, postMapper *mapper.PostMapper, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		mapper: postMapper,
		logger: logger,
	}
}

// GetAllPosts handles listing every post.
func (h *PostHandler) GetAllPosts(c echo.Context) error {
	posts, err := h.uc.GetAllPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.ToDTOList(posts), "Posts retrieved successfully")
}

// GetPostByID handles fetching a single post by id.
func (h *PostHandler) GetPostByID(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post id")
	}

	post, err := h.uc.GetPostByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.ToDTO(post), "Post retrieved successfully")
}

// GetPostsByUserID handles listing all posts owned by a user id.
func (h *PostHandler) GetPostsByUserID(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	posts, err := h.uc.GetPostsByUserID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.ToDTOList(posts), "Posts retrieved successfully")
}

// GetPostsByUsername handles listing all posts whose owner has the given username.
func (h *PostHandler) GetPostsByUsername(c echo.Context) error {
	username := c.Param("username")

	posts, err := h.uc.GetPostsByUsername(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.ToDTOList(posts), "Posts retrieved successfully")
}

// CreatePost handles post creation. The transfer mapper resolves the owner;
// the service re-resolves inside the creation transaction.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var dto mapper.PostDTO
	if err := c.Bind(&dto); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&dto); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.mapper.ToEntity(c.Request().Context(), &dto)
	if err != nil {
		return errors.WithStack(err)
	}

	created, err := h.uc.CreatePost(c.Request().Context(), post, dto.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.mapper.ToDTO(created), "Post created successfully")
}

// UpdatePost handles overwriting an existing post's title and content.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post id")
	}

	var dto mapper.PostDTO
	if err := c.Bind(&dto); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&dto); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.UpdatePost(c.Request().Context(), id, &usecase.UpdatePostInput{
		Title:   dto.Title,
		Content: dto.Content,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.ToDTO(updated), "Post updated successfully")
}

// DeletePost handles removing a post by id.
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post id")
	}

	deleted, err := h.uc.DeletePost(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return domainerrors.ErrPostNotFound
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Post deleted successfully"}, "Post deleted successfully")
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
