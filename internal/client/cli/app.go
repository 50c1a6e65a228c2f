package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/access"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/client"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/config"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/content"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/crud"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/media"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/notify"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/request"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/roles"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/session"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
)

// Sessions restores and changes the signed-in state.
type Sessions interface {
	Resolve(ctx context.Context) models.Session
	SignIn(ctx context.Context, email, password string) (models.Session, error)
	SignUp(ctx context.Context, email, password, phone string) (models.Session, error)
	SignOut(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
}

type RoleResolver interface {
	Resolve(ctx context.Context, userID string) models.Role
}

// Portal is the data service as used by the screens.
type Portal interface {
	ResetPassword(ctx context.Context, token, newPassword string) error
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error)
	LatestMessage(ctx context.Context) (*models.ChairmanMessage, error)
	PostMessage(ctx context.Context, text string) (*models.ChairmanMessage, error)
	DeleteMessage(ctx context.Context, id string) error
	GetVaultEntry(ctx context.Context) (*models.VaultEntry, error)
	UpsertVaultEntry(ctx context.Context, storageKey, url string) (*models.VaultEntry, error)
}

type Uploader interface {
	Upload(ctx context.Context, p media.Picker, t media.Target, owner string) (media.Result, error)
}

type App struct {
	sessions Sessions
	roles    RoleResolver
	portal   Portal
	market   *crud.View[*models.MarketplaceItem]
	uploader Uploader
	catalog  *content.Catalog
	notifier notify.Notifier
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	guard    request.Guard

	session models.Session
	role    models.Role
	screen  models.Screen

	closers []func() error
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return l
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stderr, parseLevel(c.LogLevel))

	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	api, err := client.NewHoopaClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sessions := session.NewResolver(api, tokens.NewSQLiteRepository(db), logger)
	api.OnTokens(func(access, refresh string) {
		sessions.Persist(context.Background(), access, refresh)
	})

	catalog, err := content.Load()
	if err != nil {
		_ = api.Close()
		_ = db.Close()
		return nil, err
	}

	a := &App{
		sessions: sessions,
		roles:    roles.NewResolver(api, logger),
		portal:   api,
		uploader: media.NewUploader(api, http.DefaultClient, logger),
		catalog:  catalog,
		notifier: notify.NewBanner(os.Stdout),
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		session:  models.Anonymous(),
		closers:  []func() error{api.Close, db.Close},
	}
	a.market = newMarketView(api.Marketplace(), a.notifier, a.confirmer(), logger)
	return a, nil
}

func newMarketView(r crud.Remote[*models.MarketplaceItem], n notify.Notifier, c crud.Confirmer, l logging.Logger) *crud.View[*models.MarketplaceItem] {
	m := crud.NewMediator[*models.MarketplaceItem]("marketplace", r)
	return crud.NewView("Marketplace", m, n, c, (*models.MarketplaceItem).Validate, l)
}

// confirm is a test seam for yes/no prompts.
var confirm = Confirm

func (a *App) confirmer() crud.Confirmer {
	return crud.ConfirmFunc(func(prompt string) bool {
		return confirm(a.reader, prompt, a.out)
	})
}

// Run restores the previous session, shows the landing screen and serves
// commands until the user leaves.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Hoopa Connect (type 'help' for commands)")
	a.Start(ctx)
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

// Start resolves the stored session and renders its landing screen.
func (a *App) Start(ctx context.Context) {
	a.session = a.sessions.Resolve(ctx)
	a.land(ctx)
}

// land resolves the role of the current session and shows its screen.
func (a *App) land(ctx context.Context) {
	a.role = models.RoleUser
	if id, ok := a.session.Identity(); ok {
		a.role = a.roles.Resolve(ctx, id.UserID)
	}
	a.screen = session.Landing(a.session, a.role)
	_ = a.Home(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) subject() string {
	id, _ := a.session.Identity()
	return id.UserID
}

func (a *App) status() string {
	id, ok := a.session.Identity()
	if !ok {
		return "guest"
	}
	if a.role == models.RoleUser {
		return id.Email
	}
	return fmt.Sprintf("%s %s", id.Email, a.role)
}

func (a *App) canWrite(r access.Resource) bool {
	return access.CanWrite(a.role, a.subject(), r)
}

// requireLogin tells anonymous users to sign in first.
func (a *App) requireLogin() error {
	if a.isLoggedIn() {
		return nil
	}
	fmt.Fprintln(a.out, "Please log in first.")
	return common.ErrorUnauthorized
}

// fail reports err as one failure banner. Busy and cancelled actions are
// not reported.
func (a *App) fail(ctx context.Context, title string, err error) error {
	if errors.Is(err, common.ErrCancelled) {
		fmt.Fprintln(a.out, "Cancelled.")
		return err
	}
	a.logger.Warn(ctx, title+" failed", "error", err)
	if !errors.Is(err, common.ErrBusy) {
		a.notifier.Failure(title, err.Error())
	}
	return err
}

// do runs fn under the app's request guard.
func (a *App) do(ctx context.Context, fn func(ctx context.Context) error) error {
	return a.guard.Run(ctx, fn)
}
