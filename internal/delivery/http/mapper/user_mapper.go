package mapper

import "blog/internal/domain/entity"

// UserDTO is the wire shape of a user. Password is accepted inbound (user
// creation) and never populated outbound; the stored hash does not exist on
// this type's output path.
type UserDTO struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password,omitempty" validate:"required,notblank"`
}

// UserMapper converts users between entity and DTO form. It is stateless.
type UserMapper struct{}

// NewUserMapper is the constructor for UserMapper.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToDTO maps a user entity to its wire record, omitting the password hash.
func (m *UserMapper) ToDTO(user *entity.User) *UserDTO {
	if user == nil {
		return nil
	}

	return &UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// ToEntity maps a wire record to a user entity. The plaintext password
// carries through untouched; hashing happens in the user service.
func (m *UserMapper) ToEntity(dto *UserDTO) *entity.User {
	if dto == nil {
		return nil
	}

	return &entity.User{
		ID:       dto.ID,
		Username: dto.Username,
		Email:    dto.Email,
		Password: dto.Password,
	}
}

// ToDTOList maps element-wise, preserving input order.
func (m *UserMapper) ToDTOList(users []*entity.User) []*UserDTO {
	dtos := make([]*UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, m.ToDTO(user))
	}

	return dtos
}
