// Package crud mediates list screens and their remote collections: one
// round trip per action, ordering and search applied client-side.
package crud

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"golang.org/x/text/cases"
)

// Remote is a collection on the data service.
type Remote[T models.Record] interface {
	// List returns every record, or only owner's when owner is set.
	List(ctx context.Context, owner string) ([]T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, rec T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Query narrows a List. Owner is applied by the remote, Search locally.
type Query struct {
	Owner  string
	Search string
}

// Mediator performs single best-effort calls against a Remote. It does not
// check ownership, cache or retry.
type Mediator[T models.Record] struct {
	name   string
	remote Remote[T]
}

func NewMediator[T models.Record](name string, r Remote[T]) *Mediator[T] {
	return &Mediator[T]{name: name, remote: r}
}

func (m *Mediator[T]) op(verb string) string {
	return verb + " " + m.name
}

// List fetches the collection once and returns it newest first, keeping only
// records whose search fields contain q.Search regardless of case.
func (m *Mediator[T]) List(ctx context.Context, q Query) ([]T, error) {
	items, err := m.remote.List(ctx, q.Owner)
	if err != nil {
		return nil, common.Remote(m.op("list"), err)
	}
	items = Filter(items, q.Search)
	SortNewestFirst(items)
	return items, nil
}

func (m *Mediator[T]) Create(ctx context.Context, rec T) (T, error) {
	out, err := m.remote.Create(ctx, rec)
	if err != nil {
		var zero T
		return zero, common.Remote(m.op("create"), err)
	}
	return out, nil
}

func (m *Mediator[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	out, err := m.remote.Update(ctx, id, rec)
	if err != nil {
		var zero T
		return zero, common.Remote(m.op("update"), err)
	}
	return out, nil
}

func (m *Mediator[T]) Delete(ctx context.Context, id string) error {
	return common.Remote(m.op("delete"), m.remote.Delete(ctx, id))
}

// SortNewestFirst orders items by descending creation time. Ties keep their
// relative order.
func SortNewestFirst[T models.Record](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return b.Created().Compare(a.Created())
	})
}

// Filter keeps items with a search field containing needle under Unicode
// case folding. An empty needle keeps everything.
func Filter[T models.Record](items []T, needle string) []T {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return items
	}
	fold := cases.Fold()
	needle = fold.String(needle)

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range it.SearchFields() {
			if strings.Contains(fold.String(f), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
