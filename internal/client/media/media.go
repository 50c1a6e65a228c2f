// Package media uploads locally picked files to storage buckets and
// resolves the URL that records keep.
package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/filex"
	"github.com/dmitrijs2005/hoopaconnect/internal/logging"
	"github.com/dmitrijs2005/hoopaconnect/internal/netx"
	"github.com/google/uuid"
)

// Target is a storage bucket and how uploads to it behave.
type Target struct {
	Bucket string
	// Public buckets resolve to permanent URLs, private ones to signed URLs.
	Public bool
	// Upsert replaces the caller's single object instead of adding a new one.
	Upsert bool
}

var (
	MarketplaceImages = Target{Bucket: "marketplace-images", Public: true}
	Avatars           = Target{Bucket: "avatars", Public: true, Upsert: true}
	IDCards           = Target{Bucket: "id_cards"}
)

// Picker chooses a local file. Implementations return
// common.ErrPermissionDenied when access is refused.
type Picker interface {
	Pick(ctx context.Context) (path string, err error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(ctx context.Context) (string, error)

func (f PickerFunc) Pick(ctx context.Context) (string, error) { return f(ctx) }

// PathPicker picks a fixed path, typically typed on the command line.
type PathPicker string

func (p PathPicker) Pick(ctx context.Context) (string, error) {
	path := strings.TrimSpace(string(p))
	if path == "" {
		return "", common.ErrCancelled
	}
	return path, nil
}

// Storage is the server side of an upload.
type Storage interface {
	PresignUpload(ctx context.Context, bucket, key, contentType string, upsert bool) (string, error)
	ResolveURL(ctx context.Context, bucket, key string) (string, time.Time, error)
}

type State int

const (
	StateIdle State = iota
	StatePicking
	StateUploading
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePicking:
		return "picking"
	case StateUploading:
		return "uploading"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result is a finished upload. ExpiresAt is zero for public URLs.
type Result struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// ErrRead reports that the picked file could not be read.
var ErrRead = errors.New("read local file")

var newID = func() string { return uuid.NewString() }

// Key derives the storage key for a file: owner prefix, then a random id or
// the fixed avatar name for upsert targets, then the lower-cased extension.
func Key(t Target, owner, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if t.Upsert {
		return owner + "/avatar" + ext
	}
	return owner + "/" + newID() + ext
}

// Uploader runs one upload at a time and exposes the state of the latest.
type Uploader struct {
	storage Storage
	http    *http.Client
	logger  logging.Logger

	mu     sync.Mutex
	state  State
	reason error
}

func NewUploader(s Storage, hc *http.Client, l logging.Logger) *Uploader {
	return &Uploader{storage: s, http: hc, logger: l}
}

func (u *Uploader) set(s State, reason error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state = s
	u.reason = reason
}

// State returns the latest invocation's state and, when failed, the reason.
func (u *Uploader) State() (State, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state, u.reason
}

func (u *Uploader) fail(ctx context.Context, err error) (Result, error) {
	u.set(StateFailed, err)
	u.logger.Warn(ctx, "upload failed", "error", err)
	return Result{}, err
}

// Upload picks a file, stores it under a fresh key for owner in t and
// resolves its URL. A failed upload has to start over from picking.
func (u *Uploader) Upload(ctx context.Context, p Picker, t Target, owner string) (Result, error) {
	u.set(StatePicking, nil)

	path, err := p.Pick(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			err = fmt.Errorf("%w: %v", common.ErrPermissionDenied, err)
		}
		return u.fail(ctx, err)
	}

	data, contentType, err := filex.ReadLocal(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return u.fail(ctx, fmt.Errorf("%w: %v", common.ErrPermissionDenied, err))
		}
		return u.fail(ctx, fmt.Errorf("%w: %v", ErrRead, err))
	}

	u.set(StateUploading, nil)
	key := Key(t, owner, path)

	putURL, err := u.storage.PresignUpload(ctx, t.Bucket, key, contentType, t.Upsert)
	if err != nil {
		return u.fail(ctx, common.Remote("presign upload", err))
	}
	if err := netx.PutPresigned(ctx, u.http, putURL, contentType, data); err != nil {
		return u.fail(ctx, common.Remote("put object", err))
	}

	url, expires, err := u.storage.ResolveURL(ctx, t.Bucket, key)
	if err != nil {
		return u.fail(ctx, common.Remote("resolve url", err))
	}

	u.set(StateSucceeded, nil)
	u.logger.Info(ctx, "uploaded", "bucket", t.Bucket, "key", key, "bytes", len(data))
	return Result{Key: key, URL: url, ExpiresAt: expires}, nil
}
