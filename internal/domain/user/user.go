// Package user is the account aggregate. Password hashing lives in the
// infrastructure layer; the entity only carries the hash.
package user

import (
	"strings"
	"time"

	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
)

type User struct {
	id            uint
	name          string
	email         string
	passwordHash  string
	role          authorization.UserRole
	companyID     *uint
	departmentID  *uint
	designationID *uint
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(name, email, passwordHash string, role authorization.UserRole) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.NewValidationError("a valid email is required")
	}
	if passwordHash == "" {
		return nil, errors.NewValidationError("password hash is required")
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role: " + string(role))
	}

	now := time.Now()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	role authorization.UserRole,
	companyID *uint,
	departmentID *uint,
	designationID *uint,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		companyID:     companyID,
		departmentID:  departmentID,
		designationID: designationID,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) ID() uint                      { return u.id }
func (u *User) Name() string                  { return u.name }
func (u *User) Email() string                 { return u.email }
func (u *User) PasswordHash() string          { return u.passwordHash }
func (u *User) Role() authorization.UserRole  { return u.role }
func (u *User) CompanyID() *uint              { return u.companyID }
func (u *User) DepartmentID() *uint           { return u.departmentID }
func (u *User) DesignationID() *uint          { return u.designationID }
func (u *User) IsActive() bool                { return u.active }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }

func (u *User) SetID(id uint) {
	u.id = id
}

func (u *User) AssignOrganization(companyID, departmentID, designationID *uint) {
	u.companyID = companyID
	u.departmentID = departmentID
	u.designationID = designationID
	u.updatedAt = time.Now()
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return errors.NewValidationError("invalid role: " + string(role))
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return errors.NewValidationError("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}
