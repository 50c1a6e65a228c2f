package messages

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

const latestQ = `^SELECT id, message, created_by, created_at FROM chairman_messages ORDER BY created_at DESC LIMIT 1$`

func TestLatest_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(latestQ).WillReturnRows(
		sqlmock.NewRows([]string{"id", "message", "created_by", "created_at"}).AddRow("m1", "Council meets Friday", "u1", at))

	got, err := repo.Latest(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "m1" || got.Message != "Council meets Friday" || got.CreatedBy != "u1" || !got.CreatedAt.Equal(at) {
		t.Fatalf("unexpected message: %+v", got)
	}
}

func TestLatest_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(latestQ).WillReturnError(sql.ErrNoRows)

	if _, err := repo.Latest(context.Background()); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^INSERT INTO chairman_messages \(message, created_by\) VALUES \(\$1, \$2\) RETURNING id, created_at$`
	mock.ExpectQuery(q).WithArgs("hello", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("m2", time.Now()))

	got, err := repo.Create(context.Background(), &models.ChairmanMessage{Message: "hello", CreatedBy: "u1"})
	if err != nil || got.ID != "m2" {
		t.Fatalf("got %+v, %v", got, err)
	}

	mock.ExpectQuery(q).WillReturnError(errors.New("db down"))
	_, err = repo.Create(context.Background(), &models.ChairmanMessage{Message: "x", CreatedBy: "u1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^DELETE FROM chairman_messages WHERE id = \$1$`
	mock.ExpectExec(q).WithArgs("m1").WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), "m1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec(q).WithArgs("m9").WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), "m9"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
