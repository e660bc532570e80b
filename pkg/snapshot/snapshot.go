// Package snapshot stores and verifies golden copies of rendered output.
//
// A Store holds named snapshots; DirStore keeps them as files next to
// the tests, S3Store shares them through a bucket so multiple machines
// verify against the same goldens. Verify compares fresh output against
// the stored copy, recording it on first sight.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ErrNotFound is returned when a named snapshot doesn't exist.
var ErrNotFound = errors.New("snapshot: not found")

// MismatchError reports output that differs from the stored golden.
type MismatchError struct {
	Name string
	Want string
	Got  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("snapshot: %q differs from golden\n--- want\n%s\n--- got\n%s", e.Name, e.Want, e.Got)
}

// Store is the interface for snapshot storage backends.
type Store interface {
	// Get returns the stored snapshot content.
	Get(ctx context.Context, name string) (string, error)

	// Put stores (or replaces) the snapshot content.
	Put(ctx context.Context, name string, content string) error
}

// Verify compares got against the stored snapshot. A missing snapshot
// is recorded and passes; with update set, the stored copy is replaced
// unconditionally.
func Verify(ctx context.Context, store Store, name, got string, update bool) error {
	want, err := store.Get(ctx, name)
	if errors.Is(err, ErrNotFound) || update {
		return store.Put(ctx, name, got)
	}
	if err != nil {
		return err
	}
	if want != got {
		return &MismatchError{Name: name, Want: want, Got: got}
	}
	return nil
}

// Match is the test-facing form of Verify. Set UPDATE_SNAPSHOTS=1 in
// the environment to rewrite goldens instead of failing on mismatch.
func Match(t *testing.T, store Store, name, got string) {
	t.Helper()
	update := os.Getenv("UPDATE_SNAPSHOTS") != ""
	if err := Verify(context.Background(), store, name, got, update); err != nil {
		t.Errorf("%v", err)
	}
}

// DirStore keeps snapshots as files under one directory.
type DirStore struct {
	dir string
}

// NewDirStore creates a directory-backed store. The directory is
// created on first Put.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Get implements Store.
func (s *DirStore) Get(ctx context.Context, name string) (string, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Put implements Store.
func (s *DirStore) Put(ctx context.Context, name string, content string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(name), []byte(content), 0o644)
}

// path maps a snapshot name to a file path, flattening separators so a
// name cannot escape the store directory.
func (s *DirStore) path(name string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(name)
	return filepath.Join(s.dir, safe+".golden")
}
