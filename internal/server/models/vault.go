package models

import "time"

// VaultEntry holds the location of a user's ID document. One row per user.
type VaultEntry struct {
	UserID     string
	StorageKey string
	IDImageURL string
	UpdatedAt  time.Time
}
