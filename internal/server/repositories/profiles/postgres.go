package profiles

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

func (r *PostgresRepository) Create(ctx context.Context, p *models.Profile) error {
	query := `
		INSERT INTO profiles (id, email, full_name, phone)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Email, p.FullName, p.Phone); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Profile, error) {
	query := `
		SELECT id, email, full_name, phone, profile_pic, updated_at
		FROM profiles
		WHERE id = $1
	`
	p := &models.Profile{}
	var pic sql.NullString
	if err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &pic, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	p.ProfilePic = pic.String
	return p, nil
}

// Update overwrites the editable columns. An empty ProfilePic clears the
// stored picture.
func (r *PostgresRepository) Update(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET full_name = $2, phone = $3, profile_pic = NULLIF($4, ''), updated_at = now()
		WHERE id = $1
		RETURNING email, updated_at
	`
	if err := r.db.QueryRowContext(ctx, query, p.ID, p.FullName, p.Phone, p.ProfilePic).
		Scan(&p.Email, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
