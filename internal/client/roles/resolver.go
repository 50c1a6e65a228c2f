// Package roles resolves the signed-in user's role and the dashboard it
// lands on.
package roles

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
)

// Lookup fetches the stored role string for userID.
type Lookup interface {
	GetRole(ctx context.Context, userID string) (string, error)
}

type Resolver struct {
	lookup Lookup
	logger logging.Logger
}

func NewResolver(l Lookup, logger logging.Logger) *Resolver {
	return &Resolver{lookup: l, logger: logger.With("module", "roles")}
}

// Resolve performs one lookup. A missing row, an unknown value or any
// lookup failure yields models.RoleUser; the condition is logged and never
// returned.
func (r *Resolver) Resolve(ctx context.Context, userID string) models.Role {
	s, err := r.lookup.GetRole(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			r.logger.Info(ctx, "no role assigned, using default", "user_id", userID)
		} else {
			r.logger.Warn(ctx, "role lookup failed, using default", "user_id", userID, "error", err)
		}
		return models.RoleUser
	}

	role, err := models.ParseRole(s)
	if err != nil {
		r.logger.Warn(ctx, "unexpected role value, using default", "user_id", userID, "error", err)
		return models.RoleUser
	}
	return role
}

// Destination is the landing screen for role.
func Destination(role models.Role) models.Screen {
	switch role {
	case models.RoleChairman:
		return models.ScreenChairmanDashboard
	case models.RoleEnrollment:
		return models.ScreenEnrollmentDashboard
	default:
		return models.ScreenHome
	}
}
