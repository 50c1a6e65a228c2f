package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/repomanager"
)

// ProfileService reads and edits the caller's own profile.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).Get(ctx, userID)
}

// Update writes the editable fields of userID's profile. The id always comes
// from the authenticated caller, never from the request.
func (s *ProfileService) Update(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).Update(ctx, &models.Profile{
		ID:         userID,
		FullName:   strings.TrimSpace(p.FullName),
		Phone:      strings.TrimSpace(p.Phone),
		ProfilePic: p.ProfilePic,
	})
}
