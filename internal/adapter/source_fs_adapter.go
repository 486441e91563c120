// Package adapter contains the infrastructure adapters used by the SCC remover.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when cleaning a source tree. It hides direct `os` access so the removal
// logic can be tested against fakes.
//
//nolint:interfacebloat // A richer interface keeps domain logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root recursively in lexical order. Errors for
	// individual entries are passed to fn, which decides whether to go on.
	Walk(ctx context.Context, root m.Path, fn fs.WalkDirFunc) error

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Exists reports whether path is present. A missing path is not an error.
	Exists(ctx context.Context, path m.Path) (bool, error)

	// Remove deletes a single file.
	Remove(ctx context.Context, path m.Path) error

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// Open returns a reader over the file content.
	Open(ctx context.Context, path m.Path) (io.ReadCloser, error)

	// ReplaceFile swaps the content of an existing file for content. Readers
	// never observe a partially written file and the file mode is kept.
	ReplaceFile(ctx context.Context, path m.Path, content []byte) error

	// AbsPath returns the absolute, cleaned form of path.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of the host filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every entry under root, root included.
func (a *LocalSourceFSAdapter) Walk(_ context.Context, root m.Path, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(string(root), fn)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether path is present on disk.
func (a *LocalSourceFSAdapter) Exists(_ context.Context, path m.Path) (bool, error) {
	_, err := os.Lstat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// Remove deletes a single file.
func (a *LocalSourceFSAdapter) Remove(_ context.Context, path m.Path) error {
	return os.Remove(string(path))
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// Open opens the file for reading.
func (a *LocalSourceFSAdapter) Open(_ context.Context, path m.Path) (io.ReadCloser, error) {
	// #nosec G304 -- paths are discovered below the configured root.
	return os.Open(string(path))
}

// ReplaceFile writes content to a temporary file next to path and renames it
// over the original, keeping the original permission bits. A symlinked path
// is resolved first so the link stays in place and its target is replaced.
// The file owner is not carried over.
func (a *LocalSourceFSAdapter) ReplaceFile(_ context.Context, path m.Path, content []byte) error {
	target, err := filepath.EvalSymlinks(string(path))
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(target), ".sccremover-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tempPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}

	if err := os.Rename(tempPath, target); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", target, err)
	}

	tempFile = nil

	return nil
}

// AbsPath returns the absolute, cleaned form of path.
func (a *LocalSourceFSAdapter) AbsPath(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(filepath.Clean(abs)), nil
}
