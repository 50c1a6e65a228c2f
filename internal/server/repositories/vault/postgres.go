package vault

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/dbx"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.VaultEntry, error) {
	query := `
		SELECT user_id, storage_key, id_image_url, updated_at
		FROM id_vault
		WHERE user_id = $1
	`
	v := &models.VaultEntry{}
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&v.UserID, &v.StorageKey, &v.IDImageURL, &v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, v *models.VaultEntry) (*models.VaultEntry, error) {
	query := `
		INSERT INTO id_vault (user_id, storage_key, id_image_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET
			storage_key = EXCLUDED.storage_key,
			id_image_url = EXCLUDED.id_image_url,
			updated_at = now()
		RETURNING updated_at
	`
	if err := r.db.QueryRowContext(ctx, query, v.UserID, v.StorageKey, v.IDImageURL).Scan(&v.UpdatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}
