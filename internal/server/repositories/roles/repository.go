// Package roles reads and assigns rows of user_roles.
package roles

import "context"

type Repository interface {
	// Get returns common.ErrorNotFound when the user has no role row.
	Get(ctx context.Context, userID string) (string, error)
	Set(ctx context.Context, userID string, role string) error
}
