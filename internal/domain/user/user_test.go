package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskflow/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  Pat Chen ", " Pat@Example.COM ", "hash", authorization.RoleWorker)
	require.NoError(t, err)

	assert.Equal(t, "Pat Chen", u.Name())
	assert.Equal(t, "pat@example.com", u.Email())
	assert.Equal(t, authorization.RoleWorker, u.Role())
	assert.True(t, u.IsActive())
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		hash     string
		role     authorization.UserRole
	}{
		{"empty name", "", "a@b.com", "hash", authorization.RoleUser},
		{"bad email", "Pat", "not-an-email", "hash", authorization.RoleUser},
		{"empty hash", "Pat", "a@b.com", "", authorization.RoleUser},
		{"bad role", "Pat", "a@b.com", "hash", authorization.UserRole("superuser")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.userName, tt.email, tt.hash, tt.role)
			assert.Error(t, err)
		})
	}
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := NewUser("Pat", "a@b.com", "hash", authorization.RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(authorization.RoleApprover))
	assert.Equal(t, authorization.RoleApprover, u.Role())

	assert.Error(t, u.ChangeRole(authorization.UserRole("nope")))
}
