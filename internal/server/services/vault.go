package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/repomanager"
)

// VaultService keeps the reference to each user's uploaded ID document.
type VaultService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewVaultService(db *sql.DB, m repomanager.RepositoryManager) *VaultService {
	return &VaultService{db: db, repomanager: m}
}

func (s *VaultService) Get(ctx context.Context, userID string) (*models.VaultEntry, error) {
	return s.repomanager.Vault(s.db).Get(ctx, userID)
}

// Upsert records storageKey and its resolved url for userID. The key must
// live under the caller's own prefix.
func (s *VaultService) Upsert(ctx context.Context, userID, storageKey, url string) (*models.VaultEntry, error) {
	if !strings.HasPrefix(storageKey, userID+"/") {
		return nil, common.ErrorForbidden
	}
	if url == "" {
		return nil, &common.ValidationError{Field: "id_image_url", Reason: "required"}
	}
	return s.repomanager.Vault(s.db).Upsert(ctx, &models.VaultEntry{UserID: userID, StorageKey: storageKey, IDImageURL: url})
}
