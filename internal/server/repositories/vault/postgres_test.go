package vault

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

func TestGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^SELECT user_id, storage_key, id_image_url, updated_at FROM id_vault WHERE user_id = \$1$`
	mock.ExpectQuery(q).WithArgs("u1").WillReturnRows(
		sqlmock.NewRows([]string{"user_id", "storage_key", "id_image_url", "updated_at"}).
			AddRow("u1", "u1/abc.pdf", "http://signed", time.Now()))

	got, err := repo.Get(context.Background(), "u1")
	if err != nil || got.StorageKey != "u1/abc.pdf" || got.IDImageURL != "http://signed" {
		t.Fatalf("got %+v, %v", got, err)
	}

	mock.ExpectQuery(q).WithArgs("u2").WillReturnError(sql.ErrNoRows)
	if _, err := repo.Get(context.Background(), "u2"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestUpsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^INSERT INTO id_vault \(user_id, storage_key, id_image_url\) VALUES \(\$1, \$2, \$3\) ON CONFLICT \(user_id\) DO UPDATE SET .* RETURNING updated_at$`
	now := time.Now()
	mock.ExpectQuery(q).WithArgs("u1", "u1/k.png", "http://signed").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	got, err := repo.Upsert(context.Background(), &models.VaultEntry{UserID: "u1", StorageKey: "u1/k.png", IDImageURL: "http://signed"})
	if err != nil || !got.UpdatedAt.Equal(now) {
		t.Fatalf("got %+v, %v", got, err)
	}

	mock.ExpectQuery(q).WillReturnError(errors.New("db down"))
	_, err = repo.Upsert(context.Background(), &models.VaultEntry{UserID: "u1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
