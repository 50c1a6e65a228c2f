package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/content"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/media"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/notify"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
)

var member = models.Identity{UserID: "u1", Email: "member@example.org"}

type fakeSessions struct {
	resolved models.Session

	signInEmail, signInPass string
	signInErr               error

	signUpPhone string
	signUpErr   error

	signOutCalls int
	signOutErr   error

	resetEmail string
	resetErr   error
}

func (f *fakeSessions) Resolve(context.Context) models.Session { return f.resolved }

func (f *fakeSessions) SignIn(_ context.Context, email, password string) (models.Session, error) {
	f.signInEmail, f.signInPass = email, password
	if f.signInErr != nil {
		return models.Anonymous(), f.signInErr
	}
	return models.Authenticated(models.Identity{UserID: "u1", Email: email}), nil
}

func (f *fakeSessions) SignUp(_ context.Context, email, password, phone string) (models.Session, error) {
	f.signUpPhone = phone
	if f.signUpErr != nil {
		return models.Anonymous(), f.signUpErr
	}
	return models.Authenticated(models.Identity{UserID: "u1", Email: email}), nil
}

func (f *fakeSessions) SignOut(context.Context) error {
	f.signOutCalls++
	return f.signOutErr
}

func (f *fakeSessions) RequestPasswordReset(_ context.Context, email string) error {
	f.resetEmail = email
	return f.resetErr
}

type fakeRoles struct {
	role  models.Role
	calls int
}

func (f *fakeRoles) Resolve(context.Context, string) models.Role {
	f.calls++
	return f.role
}

type fakePortal struct {
	message    *models.ChairmanMessage
	messageErr error
	profile    *models.Profile
	profileErr error
	vault      *models.VaultEntry
	vaultErr   error
	writeErr   error

	posted    []string
	deleted   []string
	updated   []*models.Profile
	upserted  [][2]string
	resetCode string

	latestCalls int
}

func (f *fakePortal) ResetPassword(_ context.Context, token, _ string) error {
	f.resetCode = token
	return f.writeErr
}

func (f *fakePortal) GetProfile(context.Context) (*models.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	p := *f.profile
	return &p, nil
}

func (f *fakePortal) UpdateProfile(_ context.Context, p *models.Profile) (*models.Profile, error) {
	f.updated = append(f.updated, p)
	return p, f.writeErr
}

func (f *fakePortal) LatestMessage(context.Context) (*models.ChairmanMessage, error) {
	f.latestCalls++
	if f.messageErr != nil {
		return nil, f.messageErr
	}
	if f.message == nil {
		return nil, common.ErrorNotFound
	}
	return f.message, nil
}

func (f *fakePortal) PostMessage(_ context.Context, text string) (*models.ChairmanMessage, error) {
	f.posted = append(f.posted, text)
	return &models.ChairmanMessage{ID: "m2", Message: text}, f.writeErr
}

func (f *fakePortal) DeleteMessage(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.writeErr
}

func (f *fakePortal) GetVaultEntry(context.Context) (*models.VaultEntry, error) {
	if f.vaultErr != nil {
		return nil, f.vaultErr
	}
	return f.vault, nil
}

func (f *fakePortal) UpsertVaultEntry(_ context.Context, key, url string) (*models.VaultEntry, error) {
	f.upserted = append(f.upserted, [2]string{key, url})
	return &models.VaultEntry{StorageKey: key, IDImageURL: url}, f.writeErr
}

type uploadCall struct {
	path   string
	target media.Target
	owner  string
}

type fakeUploader struct {
	url   string
	err   error
	calls []uploadCall
}

func (f *fakeUploader) Upload(ctx context.Context, p media.Picker, t media.Target, owner string) (media.Result, error) {
	path, _ := p.Pick(ctx)
	f.calls = append(f.calls, uploadCall{path: path, target: t, owner: owner})
	if f.err != nil {
		return media.Result{}, f.err
	}
	return media.Result{Key: owner + "/k", URL: f.url}, nil
}

type fakeMarket struct {
	items     []*models.MarketplaceItem
	createErr error

	created []*models.MarketplaceItem
	deletes []string
	calls   int
}

func (f *fakeMarket) List(_ context.Context, owner string) ([]*models.MarketplaceItem, error) {
	f.calls++
	var out []*models.MarketplaceItem
	for _, it := range f.items {
		if owner == "" || it.Owner == owner {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeMarket) Create(_ context.Context, rec *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *rec
	out.ID = "new"
	out.CreatedAt = time.Now()
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeMarket) Update(_ context.Context, id string, rec *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	f.calls++
	out := *rec
	out.ID = id
	return &out, nil
}

func (f *fakeMarket) Delete(_ context.Context, id string) error {
	f.calls++
	f.deletes = append(f.deletes, id)
	return nil
}

type testEnv struct {
	app      *App
	out      *bytes.Buffer
	notes    *notify.Recorder
	sessions *fakeSessions
	roles    *fakeRoles
	portal   *fakePortal
	uploader *fakeUploader
	market   *fakeMarket
}

// newTestEnv builds an App fed by lines. Passwords are read from the same
// lines instead of the terminal.
func newTestEnv(t *testing.T, lines ...string) *testEnv {
	t.Helper()

	reader := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) {
		s, err := GetSimpleText(reader, "password", io.Discard)
		return []byte(s), err
	}
	t.Cleanup(func() { getPassword = orig })

	catalog, err := content.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	env := &testEnv{
		out:      &bytes.Buffer{},
		notes:    &notify.Recorder{},
		sessions: &fakeSessions{resolved: models.Anonymous()},
		roles:    &fakeRoles{role: models.RoleUser},
		portal:   &fakePortal{},
		uploader: &fakeUploader{url: "https://cdn.example.org/x.jpg"},
		market:   &fakeMarket{},
	}
	logger := logging.NewRecorder()
	env.app = &App{
		sessions: env.sessions,
		roles:    env.roles,
		portal:   env.portal,
		uploader: env.uploader,
		catalog:  catalog,
		notifier: env.notes,
		logger:   logger,
		reader:   reader,
		out:      env.out,
		session:  models.Anonymous(),
	}
	env.app.market = newMarketView(env.market, env.notes, env.app.confirmer(), logger)
	return env
}

func (e *testEnv) signedIn(role models.Role) *testEnv {
	e.app.session = models.Authenticated(member)
	e.app.role = role
	return e
}
