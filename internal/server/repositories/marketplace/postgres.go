package marketplace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/dbx"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
)

const selectColumns = `id, user_id, title, description, price, category, image_url, seller_email, seller_phone, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.MarketplaceItem, error) {
	var item models.MarketplaceItem
	if err := s.Scan(&item.ID, &item.UserID, &item.Title, &item.Description, &item.Price,
		&item.Category, &item.ImageURL, &item.SellerEmail, &item.SellerPhone, &item.CreatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string) ([]*models.MarketplaceItem, error) {
	query := `SELECT ` + selectColumns + ` FROM marketplace_items
		WHERE ($1::text = '' OR user_id::text = $1)
		ORDER BY created_at DESC
		`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	var result []*models.MarketplaceItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.MarketplaceItem, error) {
	query := `SELECT ` + selectColumns + ` FROM marketplace_items WHERE id = $1`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	query := `
		INSERT INTO marketplace_items (user_id, title, description, price, category, image_url, seller_email, seller_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	if err := r.db.QueryRowContext(ctx, query, item.UserID, item.Title, item.Description, item.Price,
		item.Category, item.ImageURL, item.SellerEmail, item.SellerPhone).Scan(&item.ID, &item.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	query := `
		UPDATE marketplace_items
		SET title = $3, description = $4, price = $5, category = $6, image_url = $7
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectColumns
	updated, err := scanItem(r.db.QueryRowContext(ctx, query, item.ID, item.UserID, item.Title, item.Description,
		item.Price, item.Category, item.ImageURL))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, ownerID string) error {
	query := `
		DELETE FROM marketplace_items
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
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
