package models

// Role names stored in user_roles.role.
const (
	RoleUser       = "user"
	RoleChairman   = "chairman"
	RoleEnrollment = "enrollment"
)

// UserRole maps a user to a role. A missing row means RoleUser.
type UserRole struct {
	UserID string
	Role   string
}
