package models

import "time"

type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// PasswordReset is a single-use token issued by a password reset request.
type PasswordReset struct {
	Token   string
	UserID  string
	Expires time.Time
	Used    bool
}
