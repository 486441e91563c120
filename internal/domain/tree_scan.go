package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"sccremover.dev/pkg/sccremover/internal/adapter"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

// entryKind selects whether a scan collects files or directories.
type entryKind int

const (
	fileEntries entryKind = iota
	directoryEntries
)

// scanTree collects every entry of kind below root whose base name satisfies
// match. The root itself is never collected. Errors on single entries are
// logged and skipped; an error on the root aborts the scan.
func scanTree(
	ctx context.Context,
	fsAdapter adapter.SourceFSAdapter,
	logger Logger,
	root m.Path,
	kind entryKind,
	match func(name string) bool,
) ([]m.Path, error) {
	var found []m.Path

	rootPath := string(root)

	err := fsAdapter.Walk(ctx, root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == rootPath {
				return err
			}

			logger.Logf("Skipping >%s<: %v", path, err)
			slog.WarnContext(ctx, "Skipping unreadable entry", "path", path, "error", err)

			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}

			return nil
		}

		if path == rootPath {
			return nil
		}

		if entry.IsDir() != (kind == directoryEntries) {
			return nil
		}

		if match(filepath.Base(path)) {
			found = append(found, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return found, nil
}
