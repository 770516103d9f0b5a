package auth

import (
	"testing"

	"deskflow/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	token, expiresIn, err := service.Generate(42, authorization.RoleWorker)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("Generate() expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := service.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("Verify() UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != authorization.RoleWorker {
		t.Errorf("Verify() Role = %s, want %s", claims.Role, authorization.RoleWorker)
	}
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	service := NewJWTService("test-secret", 60)
	other := NewJWTService("other-secret", 60)

	token, _, err := service.Generate(1, authorization.RoleUser)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Error("Verify() expected error for token signed with a different secret")
	}
}

func TestJWTService_VerifyInvalidTokens(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage", "not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.eyJ1c2VyX2lkIjo0Mn0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Verify(tt.token); err == nil {
				t.Errorf("Verify() expected error for token %q", tt.token)
			}
		})
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := NewJWTService("test-secret", -1)

	token, _, err := service.Generate(1, authorization.RoleUser)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := service.Verify(token); err == nil {
		t.Error("Verify() expected error for expired token")
	}
}
