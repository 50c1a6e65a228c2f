package crud

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/notify"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	items     []*models.MarketplaceItem
	listErr   error
	createErr error
	deleteErr error

	lastOwner string
	calls     map[string]int
}

func newFakeRemote(items ...*models.MarketplaceItem) *fakeRemote {
	return &fakeRemote{items: items, calls: map[string]int{}}
}

func (f *fakeRemote) total() int {
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeRemote) List(ctx context.Context, owner string) ([]*models.MarketplaceItem, error) {
	f.calls["list"]++
	f.lastOwner = owner
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]*models.MarketplaceItem(nil), f.items...), nil
}

func (f *fakeRemote) Create(ctx context.Context, rec *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	f.calls["create"]++
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *rec
	out.ID = "new"
	out.CreatedAt = time.Now()
	return &out, nil
}

func (f *fakeRemote) Update(ctx context.Context, id string, rec *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	f.calls["update"]++
	out := *rec
	out.ID = id
	return &out, nil
}

func (f *fakeRemote) Delete(ctx context.Context, id string) error {
	f.calls["delete"]++
	return f.deleteErr
}

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func item(id, title string, cat models.Category, at time.Duration) *models.MarketplaceItem {
	return &models.MarketplaceItem{
		ID:          id,
		Title:       title,
		Description: "d",
		Price:       10,
		Category:    cat,
		ImageURL:    "https://img/" + id,
		SellerEmail: "bead.seller@example.org",
		CreatedAt:   t0.Add(at),
	}
}

func ids(items []*models.MarketplaceItem) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.ID)
	}
	return out
}

func validateItem(i *models.MarketplaceItem) error { return i.Validate() }

func newView(r *fakeRemote, n notify.Notifier, c Confirmer) *View[*models.MarketplaceItem] {
	return NewView("Marketplace", NewMediator[*models.MarketplaceItem]("marketplace", r), n, c, validateItem, logging.NewRecorder())
}

func TestList_NewestFirstRegardlessOfRemoteOrder(t *testing.T) {
	r := newFakeRemote(
		item("t1", "a", models.CategoryOther, 1*time.Hour),
		item("t3", "c", models.CategoryOther, 3*time.Hour),
		item("t2", "b", models.CategoryOther, 2*time.Hour),
	)
	m := NewMediator[*models.MarketplaceItem]("marketplace", r)

	got, err := m.List(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t2", "t1"}, ids(got))
	assert.Equal(t, 1, r.calls["list"])
}

func TestList_OwnerFilterIsRemote(t *testing.T) {
	r := newFakeRemote()
	m := NewMediator[*models.MarketplaceItem]("marketplace", r)

	_, err := m.List(context.Background(), Query{Owner: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", r.lastOwner)
}

func TestList_SearchIsCaseInsensitiveOverDesignatedFields(t *testing.T) {
	r := newFakeRemote(
		item("neck", "Beadwork Necklace", models.CategoryJewelry, 1*time.Hour),
		item("shawl", "Shawl", models.CategoryClothing, 2*time.Hour),
		item("moc", "Moccasins", models.CategoryBeadwork, 3*time.Hour),
	)
	m := NewMediator[*models.MarketplaceItem]("marketplace", r)

	got, err := m.List(context.Background(), Query{Search: "bead"})
	require.NoError(t, err)
	// every item has "bead" in seller email, which is not searchable
	assert.Equal(t, []string{"moc", "neck"}, ids(got))

	got, err = m.List(context.Background(), Query{Search: "NECKLACE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"neck"}, ids(got))
}

func TestFilter_UnicodeFolding(t *testing.T) {
	items := []*models.MarketplaceItem{item("s", "Élan Ribbon Skirt", models.CategoryOther, 0)}
	assert.Len(t, Filter(items, "éLAN"), 1)
	assert.Len(t, Filter(items, "  "), 1)
	assert.Empty(t, Filter(items, "drum"))
}

func TestMediator_WrapsRemoteErrors(t *testing.T) {
	boom := errors.New("connection refused")
	r := newFakeRemote()
	r.listErr = boom
	r.createErr = boom
	r.deleteErr = boom
	m := NewMediator[*models.MarketplaceItem]("marketplace", r)

	_, err := m.List(context.Background(), Query{})
	assert.ErrorIs(t, err, common.ErrRemote)
	assert.ErrorIs(t, err, boom)

	_, err = m.Create(context.Background(), item("x", "x", models.CategoryOther, 0))
	assert.ErrorIs(t, err, common.ErrRemote)

	err = m.Delete(context.Background(), "x")
	assert.ErrorIs(t, err, common.ErrRemote)
	assert.Equal(t, 1, r.calls["delete"], "no retries")
}

func TestView_FailedCreateLeavesListAndNotifiesOnce(t *testing.T) {
	r := newFakeRemote(item("a", "A", models.CategoryOther, 1*time.Hour), item("b", "B", models.CategoryOther, 2*time.Hour))
	rec := &notify.Recorder{}
	v := newView(r, rec, nil)
	require.NoError(t, v.Load(context.Background(), ""))
	before := ids(v.Items())

	r.createErr = errors.New("service down")
	_, err := v.Create(context.Background(), item("", "New", models.CategoryOther, 0))

	assert.ErrorIs(t, err, common.ErrRemote)
	assert.Equal(t, before, ids(v.Items()))
	assert.Equal(t, 1, rec.Count(notify.KindFailure))
	assert.Equal(t, 0, rec.Count(notify.KindSuccess))
	assert.Len(t, rec.All(), 1)
}

func TestView_EmptyTitleIsValidationErrorWithZeroCalls(t *testing.T) {
	r := newFakeRemote()
	rec := &notify.Recorder{}
	v := newView(r, rec, nil)

	bad := item("", "", models.CategoryJewelry, 0)
	_, err := v.Create(context.Background(), bad)

	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)
	assert.Zero(t, r.total())
	assert.Equal(t, 1, rec.Count(notify.KindFailure))
}

func TestView_CreateSuccessPrependsAndNotifies(t *testing.T) {
	r := newFakeRemote(item("a", "A", models.CategoryOther, 0))
	rec := &notify.Recorder{}
	v := newView(r, rec, nil)
	require.NoError(t, v.Load(context.Background(), ""))

	created, err := v.Create(context.Background(), item("", "Drum", models.CategoryOther, 0))
	require.NoError(t, err)
	assert.Equal(t, "new", created.ID)
	assert.Equal(t, []string{"new", "a"}, ids(v.Items()))
	assert.Equal(t, 1, rec.Count(notify.KindSuccess))
}

func TestView_DeleteRequiresConfirmation(t *testing.T) {
	r := newFakeRemote(item("a", "A", models.CategoryOther, 0))
	rec := &notify.Recorder{}
	asked := 0
	v := newView(r, rec, ConfirmFunc(func(string) bool { asked++; return false }))
	require.NoError(t, v.Load(context.Background(), ""))

	err := v.Delete(context.Background(), "a")

	assert.ErrorIs(t, err, common.ErrCancelled)
	assert.Equal(t, 1, asked)
	assert.Zero(t, r.calls["delete"])
	assert.Equal(t, []string{"a"}, ids(v.Items()))
	assert.Empty(t, rec.All())
}

func TestView_DeleteConfirmed(t *testing.T) {
	r := newFakeRemote(item("a", "A", models.CategoryOther, 0), item("b", "B", models.CategoryOther, time.Hour))
	rec := &notify.Recorder{}
	v := newView(r, rec, ConfirmFunc(func(string) bool { return true }))
	require.NoError(t, v.Load(context.Background(), ""))

	require.NoError(t, v.Delete(context.Background(), "a"))
	assert.Equal(t, 1, r.calls["delete"])
	assert.Equal(t, []string{"b"}, ids(v.Items()))
	assert.Equal(t, 1, rec.Count(notify.KindSuccess))
}

func TestView_DeleteWithoutConfirmerIsCancelled(t *testing.T) {
	r := newFakeRemote()
	v := newView(r, &notify.Recorder{}, nil)
	assert.ErrorIs(t, v.Delete(context.Background(), "a"), common.ErrCancelled)
	assert.Zero(t, r.total())
}

func TestView_UpdateReplacesRecord(t *testing.T) {
	r := newFakeRemote(item("a", "A", models.CategoryOther, 0))
	rec := &notify.Recorder{}
	v := newView(r, rec, nil)
	require.NoError(t, v.Load(context.Background(), ""))

	_, err := v.Update(context.Background(), "a", item("", "A2", models.CategoryOther, 0))
	require.NoError(t, err)
	assert.Equal(t, "A2", v.Items()[0].Title)

	_, err = v.Update(context.Background(), "a", item("", "", models.CategoryOther, 0))
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, 1, r.calls["update"])
}

func TestView_SearchIsLocal(t *testing.T) {
	r := newFakeRemote(item("neck", "Beadwork Necklace", models.CategoryJewelry, 0), item("drum", "Drum", models.CategoryOther, time.Hour))
	v := newView(r, &notify.Recorder{}, nil)
	require.NoError(t, v.Load(context.Background(), ""))

	v.SetSearch("BEAD")
	assert.Equal(t, []string{"neck"}, ids(v.Items()))
	assert.Equal(t, 1, r.calls["list"])

	v.SetSearch("")
	assert.Len(t, v.Items(), 2)
}

func TestView_LoadFailureKeepsItems(t *testing.T) {
	r := newFakeRemote(item("a", "A", models.CategoryOther, 0))
	rec := &notify.Recorder{}
	v := newView(r, rec, nil)
	require.NoError(t, v.Load(context.Background(), ""))

	r.listErr = errors.New("down")
	require.Error(t, v.Load(context.Background(), ""))
	assert.Equal(t, []string{"a"}, ids(v.Items()))
	assert.Equal(t, 1, rec.Count(notify.KindFailure))
}
