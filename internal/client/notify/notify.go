// Package notify shows user-visible success and failure banners.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Notifier reports the outcome of a user action.
type Notifier interface {
	Success(title, msg string)
	Failure(title, msg string)
}

// Banner prints one line per notification.
type Banner struct {
	w io.Writer
}

func NewBanner(w io.Writer) *Banner {
	return &Banner{w: w}
}

func (b *Banner) Success(title, msg string) {
	fmt.Fprintf(b.w, "[ok] %s: %s\n", title, msg)
}

func (b *Banner) Failure(title, msg string) {
	fmt.Fprintf(b.w, "[!!] %s: %s\n", title, msg)
}

// Kind distinguishes recorded notifications.
type Kind string

const (
	KindSuccess Kind = "success"
	KindFailure Kind = "failure"
)

type Notification struct {
	Kind  Kind
	Title string
	Msg   string
}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Success(title, msg string) { r.add(KindSuccess, title, msg) }
func (r *Recorder) Failure(title, msg string) { r.add(KindFailure, title, msg) }

func (r *Recorder) add(k Kind, title, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notification{Kind: k, Title: title, Msg: msg})
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns the number of notifications of kind k.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, it := range r.All() {
		if it.Kind == k {
			n++
		}
	}
	return n
}
