package mapper

import (
	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(row *model.User) *entity.User {
	if row == nil {
		return nil
	}
	return &entity.User{
		Id:           row.Id,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         entity.UserRole(row.Role),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(user *entity.User) *model.User {
	if user == nil {
		return nil
	}
	return &model.User{
		Id:           user.Id,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(rows []*model.User) []*entity.User {
	entities := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, m.ToEntity(row))
	}
	return entities
}

func (m *UserMapper) ToResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func (m *UserMapper) ToResponses(users []*entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, *m.ToResponse(user))
	}
	return responses
}
