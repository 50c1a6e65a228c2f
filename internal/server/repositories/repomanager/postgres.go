// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/hoopaconnect/internal/dbx"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/migrations"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/marketplace"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/messages"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/resets"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/roles"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/users"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/vault"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Roles(db dbx.DBTX) roles.Repository {
	return roles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Resets(db dbx.DBTX) resets.Repository {
	return resets.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Messages(db dbx.DBTX) messages.Repository {
	return messages.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Vault(db dbx.DBTX) vault.Repository {
	return vault.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Marketplace(db dbx.DBTX) marketplace.Repository {
	return marketplace.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
