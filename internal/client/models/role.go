// Package models defines client-side records and enumerations used by the
// Hoopa Connect CLI.
package models

import "fmt"

// Role is a coarse permission label on a user.
type Role int

const (
	RoleUser Role = iota
	RoleChairman
	RoleEnrollment
)

var roleNames = map[Role]string{
	RoleUser:       "user",
	RoleChairman:   "chairman",
	RoleEnrollment: "enrollment",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole maps the stored role string to a Role.
func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return RoleUser, fmt.Errorf("unknown role %q", s)
}

// Screen names a top-level destination of the CLI.
type Screen string

const (
	ScreenWelcome             Screen = "welcome"
	ScreenHome                Screen = "home"
	ScreenChairmanDashboard   Screen = "chairman-dashboard"
	ScreenEnrollmentDashboard Screen = "enrollment-dashboard"
)
