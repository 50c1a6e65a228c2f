package crud

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/notify"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/request"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
)

// Confirmer asks the user to approve an irreversible action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// View holds the state of one list screen. Every action runs under the
// view's request guard, reports exactly one notification and leaves the
// items untouched when it fails.
type View[T models.Record] struct {
	Title string

	mediator *Mediator[T]
	notifier notify.Notifier
	confirm  Confirmer
	validate func(T) error
	logger   logging.Logger
	guard    request.Guard

	query Query
	all   []T
}

func NewView[T models.Record](title string, m *Mediator[T], n notify.Notifier, c Confirmer, validate func(T) error, l logging.Logger) *View[T] {
	return &View[T]{
		Title:    title,
		mediator: m,
		notifier: n,
		confirm:  c,
		validate: validate,
		logger:   l.With("view", title),
	}
}

// Items returns the loaded records that match the current search text,
// newest first.
func (v *View[T]) Items() []T {
	items := Filter(v.all, v.query.Search)
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// SetSearch filters the loaded records without another round trip.
func (v *View[T]) SetSearch(s string) {
	v.query.Search = s
}

func (v *View[T]) State() request.State {
	return v.guard.State()
}

func (v *View[T]) fail(ctx context.Context, action string, err error) error {
	v.logger.Error(ctx, action+" failed", "error", err)
	if !errors.Is(err, common.ErrBusy) {
		v.notifier.Failure(v.Title, err.Error())
	}
	return err
}

// Load fetches the collection, optionally restricted to owner.
func (v *View[T]) Load(ctx context.Context, owner string) error {
	err := v.guard.Run(ctx, func(ctx context.Context) error {
		items, err := v.mediator.List(ctx, Query{Owner: owner})
		if err != nil {
			return err
		}
		v.all = items
		v.query.Owner = owner
		return nil
	})
	if err != nil {
		return v.fail(ctx, "load", err)
	}
	return nil
}

// Create validates rec, then creates it remotely. Validation failures make
// no call.
func (v *View[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if v.validate != nil {
		if err := v.validate(rec); err != nil {
			return zero, v.fail(ctx, "create", err)
		}
	}

	var created T
	err := v.guard.Run(ctx, func(ctx context.Context) error {
		out, err := v.mediator.Create(ctx, rec)
		if err != nil {
			return err
		}
		created = out
		return nil
	})
	if err != nil {
		return zero, v.fail(ctx, "create", err)
	}

	v.all = append([]T{created}, v.all...)
	SortNewestFirst(v.all)
	v.notifier.Success(v.Title, "created")
	return created, nil
}

// Update validates rec and replaces the record with the given id.
func (v *View[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T
	if v.validate != nil {
		if err := v.validate(rec); err != nil {
			return zero, v.fail(ctx, "update", err)
		}
	}

	var updated T
	err := v.guard.Run(ctx, func(ctx context.Context) error {
		out, err := v.mediator.Update(ctx, id, rec)
		if err != nil {
			return err
		}
		updated = out
		return nil
	})
	if err != nil {
		return zero, v.fail(ctx, "update", err)
	}

	for i, it := range v.all {
		if it.RecordID() == id {
			v.all[i] = updated
		}
	}
	v.notifier.Success(v.Title, "updated")
	return updated, nil
}

// Delete asks for confirmation first. Declining returns common.ErrCancelled
// and makes no call.
func (v *View[T]) Delete(ctx context.Context, id string) error {
	if v.confirm == nil || !v.confirm.Confirm("Delete this record? This cannot be undone.") {
		return common.ErrCancelled
	}

	err := v.guard.Run(ctx, func(ctx context.Context) error {
		return v.mediator.Delete(ctx, id)
	})
	if err != nil {
		return v.fail(ctx, "delete", err)
	}

	v.all = slicesDeleteByID(v.all, id)
	v.notifier.Success(v.Title, "deleted")
	return nil
}

func slicesDeleteByID[T models.Record](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordID() != id {
			out = append(out, it)
		}
	}
	return out
}
