package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/cryptox"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/auth"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/config"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "k"

type fakeMailer struct {
	sent map[string]string
	err  error
}

func (m *fakeMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	if m.err != nil {
		return m.err
	}
	if m.sent == nil {
		m.sent = map[string]string{}
	}
	m.sent[email] = token
	return nil
}

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager, mailer Mailer) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    testSecret,
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		ResetTokenValidityDuration:   time.Hour,
	}
	return NewUserService(db, rm, mailer, logging.Nop{}, cfg)
}

func seedUser(rm *fakeRepoManager, email, password string) *models.User {
	salt := cryptox.NewSalt()
	u := &models.User{ID: "id-" + email, Email: email, Salt: salt, PasswordHash: cryptox.HashPassword([]byte(password), salt)}
	rm.u.byEmail[email] = u
	return u
}

func TestSignUp_CreatesUserProfileAndTokens(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	s := newUserService(t, db, rm, &fakeMailer{})

	pair, err := s.SignUp(context.Background(), "  Ann@Example.com ", "secret1", "555")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	u, ok := rm.u.byEmail["ann@example.com"]
	require.True(t, ok, "email must be normalized")
	assert.True(t, cryptox.VerifyPassword([]byte("secret1"), u.Salt, u.PasswordHash))

	p, ok := rm.p.rows[u.ID]
	require.True(t, ok, "profile row must be created at sign-up")
	assert.Equal(t, "", p.FullName)
	assert.Equal(t, "ann@example.com", p.Email)
	assert.Equal(t, "555", p.Phone)

	id, err := auth.ParseToken(pair.AccessToken, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, auth.Identity{UserID: u.ID, Email: u.Email}, id)
	assert.Equal(t, []string{pair.RefreshToken}, rm.r.created)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignUp_Validation(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager()
	s := newUserService(t, db, rm, &fakeMailer{})

	_, err := s.SignUp(context.Background(), "not-an-email", "secret1", "")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.SignUp(context.Background(), "a@b.c", "123", "")
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)

	assert.Empty(t, rm.u.byEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	seedUser(rm, "a@b.c", "secret1")
	s := newUserService(t, db, rm, &fakeMailer{})

	_, err := s.SignUp(context.Background(), "a@b.c", "secret2", "")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignUp_ProfileErrorRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	rm.p.createErr = errBoom{}
	s := newUserService(t, db, rm, &fakeMailer{})

	_, err := s.SignUp(context.Background(), "a@b.c", "secret1", "")
	if err == nil || !regexp.MustCompile(`error creating user: error creating profile: boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped profile error, got %v", err)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignIn(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	seedUser(rm, "a@b.c", "secret1")
	s := newUserService(t, db, rm, &fakeMailer{})

	pair, err := s.SignIn(context.Background(), "A@B.C", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	_, err = s.SignIn(context.Background(), "a@b.c", "wrong-password")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.SignIn(context.Background(), "ghost@b.c", "secret1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	rm.u.getErr = errBoom{}
	_, err = s.SignIn(context.Background(), "a@b.c", "secret1")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestRefreshToken_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	u := seedUser(rm, "a@b.c", "secret1")
	rm.r.findOut = &models.RefreshToken{UserID: u.ID, Expires: time.Now().Add(10 * time.Minute)}
	s := newUserService(t, db, rm, &fakeMailer{})

	pair, err := s.RefreshToken(context.Background(), "refresh-xyz")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, []string{"refresh-xyz"}, rm.r.deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_Expired(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.r.findOut = &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(-1 * time.Minute)}
	s := newUserService(t, db, rm, &fakeMailer{})

	_, err := s.RefreshToken(context.Background(), "r")
	if !errors.Is(err, common.ErrRefreshTokenExpired) {
		t.Fatalf("want ErrRefreshTokenExpired, got %v", err)
	}
}

func TestRefreshToken_FindErr(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.r.findErr = errBoom{}
	s := newUserService(t, db, rm, &fakeMailer{})

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error searching refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped find error, got %v", err)
	}
}

func TestRefreshToken_DeleteErr(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	u := seedUser(rm, "a@b.c", "secret1")
	rm.r.findOut = &models.RefreshToken{UserID: u.ID, Expires: time.Now().Add(10 * time.Minute)}
	rm.r.delErr = errBoom{}
	s := newUserService(t, db, rm, &fakeMailer{})

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error deleting refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped delete error, got %v", err)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSignOut(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	s := newUserService(t, db, rm, &fakeMailer{})

	require.NoError(t, s.SignOut(context.Background(), "tok"))
	assert.Equal(t, []string{"tok"}, rm.r.deleted)

	rm.r.delErr = errBoom{}
	assert.Error(t, s.SignOut(context.Background(), "tok"))
}

func TestGetSession(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	u := seedUser(rm, "a@b.c", "secret1")
	s := newUserService(t, db, rm, &fakeMailer{})

	id, err := s.GetSession(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, &auth.Identity{UserID: u.ID, Email: "a@b.c"}, id)

	_, err = s.GetSession(context.Background(), "deleted-user")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRequestPasswordReset(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	u := seedUser(rm, "a@b.c", "secret1")
	mailer := &fakeMailer{}
	s := newUserService(t, db, rm, mailer)

	require.NoError(t, s.RequestPasswordReset(context.Background(), "ghost@b.c"))
	assert.Empty(t, mailer.sent, "unknown emails must not be mailed")

	require.NoError(t, s.RequestPasswordReset(context.Background(), "A@b.c"))
	token, ok := mailer.sent["a@b.c"]
	require.True(t, ok)
	pr, err := rm.rs.Find(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, pr.UserID)

	assert.ErrorIs(t, s.RequestPasswordReset(context.Background(), "  "), common.ErrValidation)

	mailer.err = errBoom{}
	assert.Error(t, s.RequestPasswordReset(context.Background(), "a@b.c"))
}

func TestResetPassword(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	u := seedUser(rm, "a@b.c", "secret1")
	require.NoError(t, rm.rs.Create(context.Background(), u.ID, "reset-1", time.Hour))
	s := newUserService(t, db, rm, &fakeMailer{})

	require.NoError(t, s.ResetPassword(context.Background(), "reset-1", "new-secret"))
	assert.True(t, cryptox.VerifyPassword([]byte("new-secret"), u.Salt, u.PasswordHash))
	assert.Equal(t, []string{u.ID}, rm.r.revoked)
	require.Len(t, rm.refreshDBs, 1)
	_, inTx := rm.refreshDBs[0].(*sql.Tx)
	assert.True(t, inTx, "sessions must be revoked inside the reset transaction")

	assert.ErrorIs(t, s.ResetPassword(context.Background(), "reset-1", "other-secret"), common.ErrResetTokenExpired)
	assert.ErrorIs(t, s.ResetPassword(context.Background(), "unknown", "other-secret"), common.ErrResetTokenExpired)
	assert.ErrorIs(t, s.ResetPassword(context.Background(), "reset-1", "x"), common.ErrValidation)

	rm.rs.rows["old"] = &models.PasswordReset{Token: "old", UserID: u.ID, Expires: time.Now().Add(-time.Minute)}
	assert.ErrorIs(t, s.ResetPassword(context.Background(), "old", "other-secret"), common.ErrResetTokenExpired)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResetPassword_RevokeFailureRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	u := seedUser(rm, "a@b.c", "secret1")
	require.NoError(t, rm.rs.Create(context.Background(), u.ID, "reset-1", time.Hour))
	rm.r.revokeErr = errBoom{}
	s := newUserService(t, db, rm, &fakeMailer{})

	err := s.ResetPassword(context.Background(), "reset-1", "new-secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom{})
	assert.Empty(t, rm.r.revoked)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogMailer(t *testing.T) {
	rec := logging.NewRecorder()
	m := NewLogMailer(rec)

	require.NoError(t, m.SendPasswordReset(context.Background(), "a@b.c", "tok"))
	require.Len(t, rec.Entries(), 1)
	assert.Equal(t, "INFO", rec.Entries()[0].Level)
	assert.Contains(t, rec.Entries()[0].Args, "tok")
}

