// Package services contains server-side business logic. This file implements
// UserService, which handles sign-up, sign-in, sessions, password resets and
// issuing/refreshing JWTs plus server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/cryptox"
	"github.com/dmitrijs2005/hoopaconnect/internal/dbx"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/auth"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/config"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/repomanager"
)

// MinPasswordLength is the shortest password accepted at sign-up and reset.
const MinPasswordLength = 6

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides authentication-related operations.
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	mailer                       Mailer
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	resetTokenValidityDuration   time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, mailer Mailer, l logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		mailer:                       mailer,
		logger:                       l.With("service", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		resetTokenValidityDuration:   cfg.ResetTokenValidityDuration,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return &common.ValidationError{Field: "email", Reason: "a valid email is required"}
	}
	return validatePassword(password)
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return &common.ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", MinPasswordLength)}
	}
	return nil
}

// SignUp creates the user and its empty profile in one transaction and signs
// the new user in. A taken email yields common.ErrorAlreadyExists.
func (s *UserService) SignUp(ctx context.Context, email, password, phone string) (*TokenPair, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	salt := cryptox.NewSalt()
	user := &models.User{
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		Salt:         salt,
		PasswordHash: cryptox.HashPassword([]byte(password), salt),
	}

	var pair *TokenPair
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		if err := s.repomanager.Profiles(tx).Create(ctx, &models.Profile{ID: u.ID, Email: u.Email, Phone: u.Phone}); err != nil {
			return fmt.Errorf("error creating profile: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, auth.Identity{UserID: u.ID, Email: u.Email}, tx)
		return genErr
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user signed up", "user_id", user.ID)
	return pair, nil
}

// SignIn verifies credentials and, on success, returns a new TokenPair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !cryptox.VerifyPassword([]byte(password), user.Salt, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}
	return s.generateTokenPair(ctx, auth.Identity{UserID: user.ID, Email: user.Email}, s.db)
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.RefreshTokens(tx)
		if err := repoTx.Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, auth.Identity{UserID: user.ID, Email: user.Email}, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// SignOut revokes refreshToken. Unknown tokens are not an error.
func (s *UserService) SignOut(ctx context.Context, refreshToken string) error {
	if err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

// GetSession returns the identity of a still-existing user. The access token
// itself is validated by the transport before this is called.
func (s *UserService) GetSession(ctx context.Context, userID string) (*auth.Identity, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return &auth.Identity{UserID: user.ID, Email: user.Email}, nil
}

// RequestPasswordReset issues a reset token and hands it to the mailer.
// Unknown emails succeed silently so the call does not reveal which accounts exist.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return &common.ValidationError{Field: "email", Reason: "required"}
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Debug(ctx, "password reset for unknown email")
			return nil
		}
		return common.ErrorInternal
	}

	token, err := common.MakeRandHexString(32)
	if err != nil {
		return common.ErrorInternal
	}
	if err := s.repomanager.Resets(s.db).Create(ctx, user.ID, token, s.resetTokenValidityDuration); err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}
	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		return fmt.Errorf("error sending reset email: %w", err)
	}
	return nil
}

// ResetPassword consumes a reset token, replaces the user's password and
// signs the user out everywhere. Unknown, used or expired tokens yield
// ErrResetTokenExpired.
func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	pr, err := s.repomanager.Resets(s.db).Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrResetTokenExpired
		}
		return fmt.Errorf("error searching reset token: %w", err)
	}
	if pr.Used || pr.Expires.Before(time.Now()) {
		return common.ErrResetTokenExpired
	}

	salt := cryptox.NewSalt()
	hash := cryptox.HashPassword([]byte(newPassword), salt)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Resets(tx).MarkUsed(ctx, token); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrResetTokenExpired
			}
			return err
		}
		if err := s.repomanager.Users(tx).UpdatePassword(ctx, pr.UserID, hash, salt); err != nil {
			return err
		}
		n, err := s.repomanager.RefreshTokens(tx).DeleteByUser(ctx, pr.UserID)
		if err != nil {
			return fmt.Errorf("error revoking sessions: %w", err)
		}
		s.logger.Info(ctx, "password reset", "user_id", pr.UserID, "revoked_sessions", n)
		return nil
	})
}

// --- helpers below ---

func (s *UserService) generateAccessToken(id auth.Identity) (string, error) {
	return auth.GenerateToken(id, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, id auth.Identity, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(id)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	refreshRepo := s.repomanager.RefreshTokens(tx)
	if err := refreshRepo.Create(ctx, id.UserID, refresh, time.Now().Add(s.refreshTokenValidityDuration)); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
