// Package mapper converts between persisted entities and the wire-facing
// transfer records exposed at the API boundary.
package mapper

import (
	"context"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"

	"github.com/pkg/errors"
)

// PostDTO is the wire shape of a post. The owner is denormalized into
// userId + username; the full user record never crosses the boundary.
type PostDTO struct {
	ID        int64      `json:"id,omitempty"`
	Title     string     `json:"title" validate:"required,notblank,min=3,max=100"`
	Content   string     `json:"content" validate:"required,notblank"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UserID    int64      `json:"userId" validate:"required"`
	Username  string     `json:"username,omitempty"`
}

// PostMapper converts posts between entity and DTO form. Resolving the owner
// id on the way in is the only store access the mapper performs.
type PostMapper struct {
	userRepo repository.UserRepository
}

// NewPostMapper is the constructor for PostMapper.
func NewPostMapper(userRepo repository.UserRepository) *PostMapper {
	return &PostMapper{userRepo: userRepo}
}

// ToDTO maps a post entity to its wire record.
func (m *PostMapper) ToDTO(post *entity.Post) *PostDTO {
	if post == nil {
		return nil
	}

	dto := &PostDTO{
		ID:       post.ID,
		Title:    post.Title,
		Content:  post.Content,
		UserID:   post.UserID,
		Username: post.Username,
	}
	if !post.CreatedAt.IsZero() {
		createdAt := post.CreatedAt
		dto.CreatedAt = &createdAt
	}
	if !post.UpdatedAt.IsZero() {
		updatedAt := post.UpdatedAt
		dto.UpdatedAt = &updatedAt
	}

	return dto
}

// ToEntity maps a wire record to a post entity, resolving userId to an
// existing user. A missing user fails the mapping with the owner-precondition
// error; id, title and content carry through untouched.
func (m *PostMapper) ToEntity(ctx context.Context, dto *PostDTO) (*entity.Post, error) {
	owner, err := m.userRepo.FindByID(ctx, dto.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrPostOwnerNotFound.WrapMessage("post references a missing user")
		}

		return nil, errors.Wrap(err, "failed to resolve post owner")
	}

	return &entity.Post{
		ID:       dto.ID,
		Title:    dto.Title,
		Content:  dto.Content,
		UserID:   owner.ID,
		Username: owner.Username,
	}, nil
}

// ToDTOList maps element-wise, preserving input order.
func (m *PostMapper) ToDTOList(posts []*entity.Post) []*PostDTO {
	dtos := make([]*PostDTO, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, m.ToDTO(post))
	}

	return dtos
}
