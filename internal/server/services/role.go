package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/repomanager"
)

// RoleService answers role lookups and lets operators assign roles.
type RoleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRoleService(db *sql.DB, m repomanager.RepositoryManager) *RoleService {
	return &RoleService{db: db, repomanager: m}
}

// GetRole returns the stored role of userID, or common.ErrorNotFound when
// the user has no role row.
func (s *RoleService) GetRole(ctx context.Context, userID string) (string, error) {
	role, err := s.repomanager.Roles(s.db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", err
		}
		return "", fmt.Errorf("error loading role: %w", err)
	}
	return role, nil
}

// IsChairman reports whether userID holds the chairman role. A missing row
// is a plain "no".
func (s *RoleService) IsChairman(ctx context.Context, userID string) (bool, error) {
	role, err := s.GetRole(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}
	return role == models.RoleChairman, nil
}

// Assign sets the role of the user registered under email.
func (s *RoleService) Assign(ctx context.Context, email, role string) error {
	switch role {
	case models.RoleUser, models.RoleChairman, models.RoleEnrollment:
	default:
		return &common.ValidationError{Field: "role", Reason: fmt.Sprintf("unknown role %q", role)}
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return fmt.Errorf("error loading user: %w", err)
	}
	return s.repomanager.Roles(s.db).Set(ctx, user.ID, role)
}
