package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/auth"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/services"
)

type fakeUsers struct {
	tokens     *services.TokenPair
	err        error
	session    *auth.Identity
	lastEmail  string
	lastUserID string
}

func (f *fakeUsers) SignUp(ctx context.Context, email, password, phone string) (*services.TokenPair, error) {
	f.lastEmail = email
	return f.tokens, f.err
}
func (f *fakeUsers) SignIn(ctx context.Context, email, password string) (*services.TokenPair, error) {
	f.lastEmail = email
	return f.tokens, f.err
}
func (f *fakeUsers) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	return f.tokens, f.err
}
func (f *fakeUsers) SignOut(ctx context.Context, refreshToken string) error { return f.err }
func (f *fakeUsers) GetSession(ctx context.Context, userID string) (*auth.Identity, error) {
	f.lastUserID = userID
	return f.session, f.err
}
func (f *fakeUsers) RequestPasswordReset(ctx context.Context, email string) error {
	f.lastEmail = email
	return f.err
}
func (f *fakeUsers) ResetPassword(ctx context.Context, token, newPassword string) error { return f.err }

type fakeRoles struct {
	role       string
	err        error
	lastUserID string
}

func (f *fakeRoles) GetRole(ctx context.Context, userID string) (string, error) {
	f.lastUserID = userID
	return f.role, f.err
}

type fakeProfiles struct {
	profile    *models.Profile
	err        error
	lastUserID string
	updated    *models.Profile
}

func (f *fakeProfiles) Get(ctx context.Context, userID string) (*models.Profile, error) {
	f.lastUserID = userID
	return f.profile, f.err
}
func (f *fakeProfiles) Update(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error) {
	f.lastUserID = userID
	f.updated = p
	return f.profile, f.err
}

type fakeMessages struct {
	msg          *models.ChairmanMessage
	err          error
	lastCallerID string
}

func (f *fakeMessages) Latest(ctx context.Context) (*models.ChairmanMessage, error) {
	return f.msg, f.err
}
func (f *fakeMessages) Post(ctx context.Context, callerID, text string) (*models.ChairmanMessage, error) {
	f.lastCallerID = callerID
	return f.msg, f.err
}
func (f *fakeMessages) Delete(ctx context.Context, callerID, id string) error {
	f.lastCallerID = callerID
	return f.err
}

type fakeVault struct {
	entry      *models.VaultEntry
	err        error
	lastUserID string
}

func (f *fakeVault) Get(ctx context.Context, userID string) (*models.VaultEntry, error) {
	f.lastUserID = userID
	return f.entry, f.err
}
func (f *fakeVault) Upsert(ctx context.Context, userID, storageKey, url string) (*models.VaultEntry, error) {
	f.lastUserID = userID
	return f.entry, f.err
}

type fakeMarketplace struct {
	items      []*models.MarketplaceItem
	item       *models.MarketplaceItem
	err        error
	lastOwner  string
	lastCaller auth.Identity
	lastItem   *models.MarketplaceItem
}

func (f *fakeMarketplace) List(ctx context.Context, ownerID string) ([]*models.MarketplaceItem, error) {
	f.lastOwner = ownerID
	return f.items, f.err
}
func (f *fakeMarketplace) Create(ctx context.Context, caller auth.Identity, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	f.lastCaller = caller
	f.lastItem = item
	return f.item, f.err
}
func (f *fakeMarketplace) Update(ctx context.Context, callerID string, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	f.lastCaller = auth.Identity{UserID: callerID}
	f.lastItem = item
	return f.item, f.err
}
func (f *fakeMarketplace) Delete(ctx context.Context, callerID, id string) error {
	f.lastCaller = auth.Identity{UserID: callerID}
	return f.err
}

type fakeMedia struct {
	url        string
	expires    time.Time
	err        error
	lastCaller string
	lastUpsert bool
}

func (f *fakeMedia) PresignUpload(ctx context.Context, callerID, bucket, key, contentType string, upsert bool) (string, error) {
	f.lastCaller = callerID
	f.lastUpsert = upsert
	return f.url, f.err
}
func (f *fakeMedia) ResolveURL(ctx context.Context, callerID, bucket, key string) (string, time.Time, error) {
	f.lastCaller = callerID
	return f.url, f.expires, f.err
}

type fakes struct {
	users       *fakeUsers
	roles       *fakeRoles
	profiles    *fakeProfiles
	messages    *fakeMessages
	vault       *fakeVault
	marketplace *fakeMarketplace
	media       *fakeMedia
}

func newFakes() *fakes {
	return &fakes{
		users:       &fakeUsers{},
		roles:       &fakeRoles{},
		profiles:    &fakeProfiles{},
		messages:    &fakeMessages{},
		vault:       &fakeVault{},
		marketplace: &fakeMarketplace{},
		media:       &fakeMedia{},
	}
}

func (f *fakes) services() Services {
	return Services{
		Users:       f.users,
		Roles:       f.roles,
		Profiles:    f.profiles,
		Messages:    f.messages,
		Vault:       f.vault,
		Marketplace: f.marketplace,
		Media:       f.media,
	}
}

const testSecret = "secret"

func newTestServer(f *fakes) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, f.services(), testSecret, nil, nil)
}

func callerCtx(userID, email string) context.Context {
	return withIdentity(context.Background(), auth.Identity{UserID: userID, Email: email})
}
