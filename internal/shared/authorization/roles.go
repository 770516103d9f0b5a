package authorization

// UserRole identifies the coarse role a user acts under.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleApprover UserRole = "approver"
	RoleWorker   UserRole = "worker"
	RoleUser     UserRole = "user"
)

var validRoles = map[UserRole]bool{
	RoleAdmin:    true,
	RoleApprover: true,
	RoleWorker:   true,
	RoleUser:     true,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}
