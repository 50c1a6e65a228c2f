// Package session restores and manages the signed-in state of the CLI.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/roles"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
)

// Identity is the identity provider as seen by the resolver.
type Identity interface {
	SetTokens(access, refresh string)
	GetSession(ctx context.Context) (models.Identity, error)
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password, phone string) error
	SignOut(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
}

type Resolver struct {
	idp    Identity
	store  tokens.Repository
	logger logging.Logger
}

func NewResolver(idp Identity, store tokens.Repository, l logging.Logger) *Resolver {
	return &Resolver{idp: idp, store: store, logger: l.With("module", "session")}
}

// Resolve restores the persisted session with a single GetSession call. The
// identity client refreshes an expired access token once on its own. Every
// failure, including an unreadable store, yields an anonymous session.
func (r *Resolver) Resolve(ctx context.Context) models.Session {
	refresh, err := r.store.Get(ctx, tokens.RefreshToken)
	if err != nil {
		r.logger.Warn(ctx, "cannot read stored session", "error", err)
		return models.Anonymous()
	}
	if refresh == "" {
		return models.Anonymous()
	}
	access, err := r.store.Get(ctx, tokens.AccessToken)
	if err != nil {
		r.logger.Warn(ctx, "cannot read stored session", "error", err)
		return models.Anonymous()
	}

	r.idp.SetTokens(access, refresh)

	id, err := r.idp.GetSession(ctx)
	if err != nil {
		r.logger.Warn(ctx, "session check failed, continuing anonymously", "error", err)
		return models.Anonymous()
	}
	return models.Authenticated(id)
}

// Persist stores the current token pair. Registered on the identity client
// so refreshed tokens survive restarts.
func (r *Resolver) Persist(ctx context.Context, access, refresh string) {
	if refresh == "" {
		if err := r.store.Clear(ctx); err != nil {
			r.logger.Warn(ctx, "cannot clear stored session", "error", err)
		}
		return
	}
	if err := r.store.Set(ctx, tokens.AccessToken, access); err != nil {
		r.logger.Warn(ctx, "cannot store access token", "error", err)
	}
	if err := r.store.Set(ctx, tokens.RefreshToken, refresh); err != nil {
		r.logger.Warn(ctx, "cannot store refresh token", "error", err)
	}
}

func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return &common.ValidationError{Field: "email", Reason: "required"}
	}
	if password == "" {
		return &common.ValidationError{Field: "password", Reason: "required"}
	}
	return nil
}

// SignIn authenticates and returns the resulting session.
func (r *Resolver) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	if err := validateCredentials(email, password); err != nil {
		return models.Anonymous(), err
	}
	if err := r.idp.SignIn(ctx, email, password); err != nil {
		return models.Anonymous(), common.Remote("SignIn", err)
	}
	return r.current(ctx)
}

// SignUp creates the account (and its empty profile) and signs in.
func (r *Resolver) SignUp(ctx context.Context, email, password, phone string) (models.Session, error) {
	if err := validateCredentials(email, password); err != nil {
		return models.Anonymous(), err
	}
	if err := r.idp.SignUp(ctx, email, password, phone); err != nil {
		return models.Anonymous(), common.Remote("SignUp", err)
	}
	return r.current(ctx)
}

func (r *Resolver) current(ctx context.Context) (models.Session, error) {
	id, err := r.idp.GetSession(ctx)
	if err != nil {
		return models.Anonymous(), common.Remote("GetSession", err)
	}
	return models.Authenticated(id), nil
}

// SignOut revokes the session and forgets stored tokens. Local state is
// cleared even when the server cannot be reached.
func (r *Resolver) SignOut(ctx context.Context) error {
	err := r.idp.SignOut(ctx)
	if clearErr := r.store.Clear(ctx); clearErr != nil {
		err = errors.Join(err, clearErr)
	}
	if err != nil {
		return common.Remote("SignOut", err)
	}
	return nil
}

func (r *Resolver) RequestPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return &common.ValidationError{Field: "email", Reason: "required"}
	}
	return common.Remote("RequestPasswordReset", r.idp.RequestPasswordReset(ctx, email))
}

// Landing picks the first screen: welcome for anonymous sessions, the role's
// dashboard otherwise.
func Landing(s models.Session, role models.Role) models.Screen {
	if !s.IsAuthenticated() {
		return models.ScreenWelcome
	}
	return roles.Destination(role)
}
