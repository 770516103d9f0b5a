package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	apperrors "deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hash, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(hash, password string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, password)
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(userID uint, role authorization.UserRole) (string, int64, error)
}

func (m *mockTokenService) Generate(userID uint, role authorization.UserRole) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return "token", 3600, nil
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	return user.ReconstructUser(
		7, "Pat Chen", "pat@example.com", "hashed:secret", authorization.RoleWorker,
		nil, nil, nil, true, time.Now(), time.Now(),
	)
}

func TestLogin(t *testing.T) {
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return testUser(t), nil
		},
	}

	uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenService{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), LoginCommand{Email: "pat@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "worker", result.Role)
	assert.Equal(t, "token", result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return testUser(t), nil
		},
	}
	hasher := &mockHasher{
		VerifyFunc: func(hash, password string) error {
			return errors.New("mismatch")
		},
	}

	uc := NewLoginUseCase(repo, hasher, &mockTokenService{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "pat@example.com", Password: "wrong"})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenService{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "nobody@example.com", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestCreateUser(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			u.SetID(8)
			return nil
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Sam Rivera",
		Email:    "sam@example.com",
		Password: "longenough",
		Role:     "approver",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(8), result.UserID)
	assert.Equal(t, "approver", result.Role)
	assert.Equal(t, "hashed:longenough", saved.PasswordHash())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreateUserUseCase(repo, &mockHasher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "longenough",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestCreateUser_ShortPassword(t *testing.T) {
	uc := NewCreateUserUseCase(&mockUserRepository{}, &mockHasher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "short",
	})
	assert.Error(t, err)
}
