package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/hoopaconnect/internal/dbx"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/marketplace"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/messages"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/resets"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/roles"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/users"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/vault"
)

// RepositoryManager vends repositories bound to a DBTX so services can run
// the same code against *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Roles(db dbx.DBTX) roles.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Resets(db dbx.DBTX) resets.Repository
	Messages(db dbx.DBTX) messages.Repository
	Vault(db dbx.DBTX) vault.Repository
	Marketplace(db dbx.DBTX) marketplace.Repository
}
