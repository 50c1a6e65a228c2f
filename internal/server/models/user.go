// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an identity record. The password is never stored, only its
// argon2id hash and the per-user salt.
type User struct {
	ID           string
	Email        string
	Phone        string
	PasswordHash []byte
	Salt         []byte
	CreatedAt    time.Time
}

// Profile is the public, user-editable part of an account. A row is created
// with an empty FullName at sign-up.
type Profile struct {
	ID         string
	Email      string
	FullName   string
	Phone      string
	ProfilePic string
	UpdatedAt  time.Time
}
