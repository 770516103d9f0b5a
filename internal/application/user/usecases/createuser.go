package usecases

import (
	"context"

	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type CreateUserCommand struct {
	Name          string
	Email         string
	Password      string
	Role          string
	CompanyID     *uint
	DepartmentID  *uint
	DesignationID *uint
}

type CreateUserResult struct {
	UserID uint
	Email  string
	Role   string
}

type CreateUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email, "role", cmd.Role)

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	role := authorization.UserRole(cmd.Role)
	if cmd.Role == "" {
		role = authorization.RoleUser
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, hash, role)
	if err != nil {
		return nil, err
	}
	newUser.AssignOrganization(cmd.CompanyID, cmd.DepartmentID, cmd.DesignationID)

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", newUser.ID(), "email", newUser.Email())

	return &CreateUserResult{
		UserID: newUser.ID(),
		Email:  newUser.Email(),
		Role:   newUser.Role().String(),
	}, nil
}
