// Package tokens persists the client's session tokens between launches.
package tokens

import "context"

// Names of the stored tokens.
const (
	AccessToken  = "access_token"
	RefreshToken = "refresh_token"
)

type Repository interface {
	// Get returns "" and no error when name is not stored.
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
	Clear(ctx context.Context) error
}
