package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/dbx"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/marketplace"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/messages"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/resets"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/roles"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/users"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/vault"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// --- users ---

type fakeUsersRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*models.User
	createErr error
	getErr    error
	updated   map[string][]byte
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}, updated: map[string][]byte{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = "id-" + u.Email
	u.CreatedAt = time.Now()
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, id string, hash, salt []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			u.PasswordHash, u.Salt = hash, salt
			f.updated[id] = hash
			return nil
		}
	}
	return common.ErrorNotFound
}

// --- profiles ---

type fakeProfilesRepo struct {
	rows      map[string]*models.Profile
	createErr error
	getErr    error
}

func newFakeProfilesRepo() *fakeProfilesRepo {
	return &fakeProfilesRepo{rows: map[string]*models.Profile{}}
}

func (f *fakeProfilesRepo) Create(ctx context.Context, p *models.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rows[p.ID] = p
	return nil
}

func (f *fakeProfilesRepo) Get(ctx context.Context, id string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

func (f *fakeProfilesRepo) Update(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	old, ok := f.rows[p.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	p.Email = old.Email
	f.rows[p.ID] = p
	return p, nil
}

// --- roles ---

type fakeRolesRepo struct {
	rows   map[string]string
	getErr error
}

func (f *fakeRolesRepo) Get(ctx context.Context, userID string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	r, ok := f.rows[userID]
	if !ok {
		return "", common.ErrorNotFound
	}
	return r, nil
}

func (f *fakeRolesRepo) Set(ctx context.Context, userID, role string) error {
	if f.rows == nil {
		f.rows = map[string]string{}
	}
	f.rows[userID] = role
	return nil
}

// --- refresh tokens ---

type fakeRefreshRepo struct {
	findOut   *models.RefreshToken
	findErr   error
	delErr    error
	createErr error
	revokeErr error
	created   []string
	deleted   []string
	revoked   []string
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, token)
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	if f.revokeErr != nil {
		return 0, f.revokeErr
	}
	f.revoked = append(f.revoked, userID)
	return 2, nil
}

// --- resets ---

type fakeResetsRepo struct {
	rows    map[string]*models.PasswordReset
	markErr error
}

func (f *fakeResetsRepo) Create(ctx context.Context, userID, token string, validity time.Duration) error {
	if f.rows == nil {
		f.rows = map[string]*models.PasswordReset{}
	}
	f.rows[token] = &models.PasswordReset{Token: token, UserID: userID, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeResetsRepo) Find(ctx context.Context, token string) (*models.PasswordReset, error) {
	pr, ok := f.rows[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return pr, nil
}

func (f *fakeResetsRepo) MarkUsed(ctx context.Context, token string) error {
	if f.markErr != nil {
		return f.markErr
	}
	pr, ok := f.rows[token]
	if !ok || pr.Used {
		return common.ErrorNotFound
	}
	pr.Used = true
	return nil
}

// --- messages ---

type fakeMessagesRepo struct {
	rows    []*models.ChairmanMessage
	deleted []string
}

func (f *fakeMessagesRepo) Latest(ctx context.Context) (*models.ChairmanMessage, error) {
	if len(f.rows) == 0 {
		return nil, common.ErrorNotFound
	}
	return f.rows[len(f.rows)-1], nil
}

func (f *fakeMessagesRepo) Create(ctx context.Context, m *models.ChairmanMessage) (*models.ChairmanMessage, error) {
	m.ID = "m" + string(rune('0'+len(f.rows)))
	m.CreatedAt = time.Now()
	f.rows = append(f.rows, m)
	return m, nil
}

func (f *fakeMessagesRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// --- vault ---

type fakeVaultRepo struct {
	rows map[string]*models.VaultEntry
}

func (f *fakeVaultRepo) Get(ctx context.Context, userID string) (*models.VaultEntry, error) {
	v, ok := f.rows[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return v, nil
}

func (f *fakeVaultRepo) Upsert(ctx context.Context, v *models.VaultEntry) (*models.VaultEntry, error) {
	if f.rows == nil {
		f.rows = map[string]*models.VaultEntry{}
	}
	v.UpdatedAt = time.Now()
	f.rows[v.UserID] = v
	return v, nil
}

// --- marketplace ---

type fakeMarketRepo struct {
	items   []*models.MarketplaceItem
	created *models.MarketplaceItem
	updated *models.MarketplaceItem
	delID   string
	delUser string
	listArg string
}

func (f *fakeMarketRepo) List(ctx context.Context, ownerID string) ([]*models.MarketplaceItem, error) {
	f.listArg = ownerID
	return f.items, nil
}

func (f *fakeMarketRepo) Get(ctx context.Context, id string) (*models.MarketplaceItem, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeMarketRepo) Create(ctx context.Context, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	item.ID = "i1"
	f.created = item
	return item, nil
}

func (f *fakeMarketRepo) Update(ctx context.Context, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	f.updated = item
	return item, nil
}

func (f *fakeMarketRepo) Delete(ctx context.Context, id, ownerID string) error {
	f.delID, f.delUser = id, ownerID
	return nil
}

// --- manager ---

type fakeRepoManager struct {
	u  *fakeUsersRepo
	p  *fakeProfilesRepo
	ro *fakeRolesRepo
	r  *fakeRefreshRepo
	rs *fakeResetsRepo
	m  *fakeMessagesRepo
	v  *fakeVaultRepo
	mk *fakeMarketRepo

	refreshDBs []dbx.DBTX
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u:  newFakeUsersRepo(),
		p:  newFakeProfilesRepo(),
		ro: &fakeRolesRepo{},
		r:  &fakeRefreshRepo{},
		rs: &fakeResetsRepo{},
		m:  &fakeMessagesRepo{},
		v:  &fakeVaultRepo{},
		mk: &fakeMarketRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error          { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) Profiles(db dbx.DBTX) profiles.Repository           { return m.p }
func (m *fakeRepoManager) Roles(db dbx.DBTX) roles.Repository                 { return m.ro }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	m.refreshDBs = append(m.refreshDBs, db)
	return m.r
}
func (m *fakeRepoManager) Resets(db dbx.DBTX) resets.Repository               { return m.rs }
func (m *fakeRepoManager) Messages(db dbx.DBTX) messages.Repository           { return m.m }
func (m *fakeRepoManager) Vault(db dbx.DBTX) vault.Repository                 { return m.v }
func (m *fakeRepoManager) Marketplace(db dbx.DBTX) marketplace.Repository     { return m.mk }
