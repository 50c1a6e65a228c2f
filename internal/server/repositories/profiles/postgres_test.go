package profiles

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^INSERT INTO profiles \(id, email, full_name, phone\) VALUES \(\$1, \$2, \$3, \$4\)$`
	mock.ExpectExec(q).
		WithArgs("u1", "a@b.c", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), &models.Profile{ID: "u1", Email: "a@b.c"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec(q).WillReturnError(errors.New("db down"))
	err := repo.Create(context.Background(), &models.Profile{ID: "u1", Email: "a@b.c"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "email", "full_name", "phone", "profile_pic", "updated_at"}).
		AddRow("u1", "a@b.c", "Ann", "555", nil, time.Now())
	mock.ExpectQuery(`SELECT id, email, full_name, phone, profile_pic, updated_at FROM profiles WHERE id = \$1`).
		WithArgs("u1").WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "Ann" || got.ProfilePic != "" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM profiles WHERE id = \$1`).WithArgs("nobody").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nobody")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^UPDATE profiles SET full_name = \$2, phone = \$3, profile_pic = NULLIF\(\$4, ''\), updated_at = now\(\) WHERE id = \$1 RETURNING email, updated_at$`
	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs("u1", "Ann", "555", "http://pic").
		WillReturnRows(sqlmock.NewRows([]string{"email", "updated_at"}).AddRow("a@b.c", now))

	got, err := repo.Update(context.Background(), &models.Profile{ID: "u1", FullName: "Ann", Phone: "555", ProfilePic: "http://pic"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "a@b.c" || !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected profile: %+v", got)
	}

	mock.ExpectQuery(q).WillReturnError(sql.ErrNoRows)
	if _, err := repo.Update(context.Background(), &models.Profile{ID: "gone"}); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
