package messages

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

func (r *PostgresRepository) Latest(ctx context.Context) (*models.ChairmanMessage, error) {
	query := `
		SELECT id, message, created_by, created_at
		FROM chairman_messages
		ORDER BY created_at DESC
		LIMIT 1
	`
	m := &models.ChairmanMessage{}
	var createdBy sql.NullString
	if err := r.db.QueryRowContext(ctx, query).Scan(&m.ID, &m.Message, &createdBy, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	m.CreatedBy = createdBy.String
	return m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.ChairmanMessage) (*models.ChairmanMessage, error) {
	query := `
		INSERT INTO chairman_messages (message, created_by)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	if err := r.db.QueryRowContext(ctx, query, m.Message, m.CreatedBy).Scan(&m.ID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM chairman_messages
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
