package usecases

import (
	"context"

	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenService issues signed access tokens.
type TokenService interface {
	Generate(userID uint, role authorization.UserRole) (token string, expiresIn int64, err error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uint
	Name        string
	Email       string
	Role        string
	AccessToken string
	ExpiresIn   int64
}

type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	// The same generic error covers a missing account and a wrong password.
	if existing == nil || !existing.IsActive() {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(existing.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokens.Generate(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate access token")
	}

	return &LoginResult{
		UserID:      existing.ID(),
		Name:        existing.Name(),
		Email:       existing.Email(),
		Role:        existing.Role().String(),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
