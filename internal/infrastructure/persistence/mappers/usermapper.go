package mappers

import (
	"time"

	"deskflow/internal/domain/user"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) *user.User
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:            u.ID(),
		Name:          u.Name(),
		Email:         u.Email(),
		PasswordHash:  u.PasswordHash(),
		Role:          u.Role().String(),
		CompanyID:     u.CompanyID(),
		DepartmentID:  u.DepartmentID(),
		DesignationID: u.DesignationID(),
		Active:        u.IsActive(),
		CreatedAt:     u.CreatedAt().UnixMilli(),
		UpdatedAt:     u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) *user.User {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		authorization.UserRole(model.Role),
		model.CompanyID,
		model.DepartmentID,
		model.DesignationID,
		model.Active,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
