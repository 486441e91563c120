package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

// ErrRunInProgress is returned when another run already holds the lock for a root.
var ErrRunInProgress = errors.New("another removal run is in progress for this directory")

// RunLocker hands out exclusive per-root run locks.
type RunLocker interface {
	// Acquire takes the lock for root without blocking. The returned
	// function releases it.
	Acquire(root m.Path) (func() error, error)
}

// FileRunLocker keeps its lock files in a directory outside the scanned tree
// so that the lock itself never becomes part of a run.
type FileRunLocker struct {
	dir string
}

// NewFileRunLocker creates a locker storing lock files in dir. An empty dir
// selects the system temp directory.
func NewFileRunLocker(dir string) *FileRunLocker {
	if dir == "" {
		dir = os.TempDir()
	}

	return &FileRunLocker{dir: dir}
}

// LockPath returns the lock file used for root.
func (l *FileRunLocker) LockPath(root m.Path) string {
	sum := sha256.Sum256([]byte(filepath.Clean(string(root))))
	return filepath.Join(l.dir, fmt.Sprintf("sccremover-%x.lock", sum[:8]))
}

// Acquire takes the lock for root, failing fast with ErrRunInProgress.
// Releasing unlocks and deletes the lock file.
func (l *FileRunLocker) Acquire(root m.Path) (func() error, error) {
	lockPath := l.LockPath(root)
	lock := flock.New(lockPath)

	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to try lock on %s: %w", lockPath, err)
	}

	if !acquired {
		return nil, fmt.Errorf("%w: %s", ErrRunInProgress, root)
	}

	return func() error {
		if err := lock.Unlock(); err != nil {
			return fmt.Errorf("failed to release lock on %s: %w", lockPath, err)
		}

		if err := os.Remove(lockPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove lock file %s: %w", lockPath, err)
		}

		return nil
	}, nil
}
