package logging

import (
	"context"
	"sync"
)

// Entry is one captured log call.
type Entry struct {
	Level string
	Msg   string
	Args  []any
}

// Recorder keeps log calls in memory. Used by tests that assert a condition
// was logged rather than surfaced as an error.
type Recorder struct {
	mu      *sync.Mutex
	entries *[]Entry
	fields  []any
}

func NewRecorder() *Recorder {
	return &Recorder{mu: &sync.Mutex{}, entries: &[]Entry{}}
}

func (r *Recorder) add(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := append(append([]any{}, r.fields...), args...)
	*r.entries = append(*r.entries, Entry{Level: level, Msg: msg, Args: all})
}

func (r *Recorder) Debug(_ context.Context, msg string, args ...any) { r.add("DEBUG", msg, args) }
func (r *Recorder) Info(_ context.Context, msg string, args ...any)  { r.add("INFO", msg, args) }
func (r *Recorder) Warn(_ context.Context, msg string, args ...any)  { r.add("WARN", msg, args) }
func (r *Recorder) Error(_ context.Context, msg string, args ...any) { r.add("ERROR", msg, args) }

func (r *Recorder) With(args ...any) Logger {
	return &Recorder{mu: r.mu, entries: r.entries, fields: append(append([]any{}, r.fields...), args...)}
}

// Entries returns a copy of everything logged so far, including by children.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), (*r.entries)...)
}

// Count returns the number of entries at level.
func (r *Recorder) Count(level string) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}
