package marketplace

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

var columns = []string{"id", "user_id", "title", "description", "price", "category", "image_url", "seller_email", "seller_phone", "created_at"}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	t1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow("i2", "u1", "Necklace", "Blue beads", 40.5, "jewelry", "http://img/2", "s@x", "1", t1).
		AddRow("i1", "u2", "Basket", "Woven", 12.0, "other", "http://img/1", "t@x", "2", t0)

	mock.ExpectQuery(`FROM marketplace_items WHERE \(\$1::text = '' OR user_id::text = \$1\) ORDER BY created_at DESC`).
		WithArgs("").WillReturnRows(rows)

	got, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "i2" || got[0].Price != 40.5 || got[1].Category != "other" {
		t.Fatalf("unexpected items: %+v", got)
	}
}

func TestList_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM marketplace_items`).WithArgs("u1").WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background(), "u1")
	if err == nil || !regexp.MustCompile(`failed to select items: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM marketplace_items WHERE id = \$1`).WithArgs("x").WillReturnError(sql.ErrNoRows)

	if _, err := repo.Get(context.Background(), "x"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^INSERT INTO marketplace_items \(user_id, title, description, price, category, image_url, seller_email, seller_phone\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8\) RETURNING id, created_at$`
	mock.ExpectQuery(q).
		WithArgs("u1", "Necklace", "Blue beads", 40.5, "jewelry", "http://img", "s@x", "555").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("i1", time.Now()))

	got, err := repo.Create(context.Background(), &models.MarketplaceItem{
		UserID: "u1", Title: "Necklace", Description: "Blue beads", Price: 40.5,
		Category: "jewelry", ImageURL: "http://img", SellerEmail: "s@x", SellerPhone: "555",
	})
	if err != nil || got.ID != "i1" {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestUpdate_NotOwned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^UPDATE marketplace_items SET .* WHERE id = \$1 AND user_id = \$2 RETURNING`).
		WithArgs("i1", "intruder", "t", "d", 1.0, "other", "u").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.MarketplaceItem{
		ID: "i1", UserID: "intruder", Title: "t", Description: "d", Price: 1, Category: "other", ImageURL: "u",
	})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`^UPDATE marketplace_items SET .* WHERE id = \$1 AND user_id = \$2 RETURNING`).
		WithArgs("i1", "u1", "New", "d", 2.5, "beadwork", "u").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("i1", "u1", "New", "d", 2.5, "beadwork", "u", "s@x", "", now))

	got, err := repo.Update(context.Background(), &models.MarketplaceItem{
		ID: "i1", UserID: "u1", Title: "New", Description: "d", Price: 2.5, Category: "beadwork", ImageURL: "u",
	})
	if err != nil || got.Title != "New" || got.SellerEmail != "s@x" {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^DELETE FROM marketplace_items WHERE id = \$1 AND user_id = \$2$`
	mock.ExpectExec(q).WithArgs("i1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), "i1", "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec(q).WithArgs("i1", "u2").WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), "i1", "u2"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
