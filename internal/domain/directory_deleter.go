package domain

import (
	"context"
	"log/slog"
	"strings"

	"sccremover.dev/pkg/sccremover/internal/adapter"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

// DirectoryDeleter removes every directory below a root that carries a given name.
type DirectoryDeleter struct {
	fsAdapter adapter.SourceFSAdapter
	logger    Logger
}

// NewDirectoryDeleter constructs a DirectoryDeleter reporting to logger.
func NewDirectoryDeleter(fsAdapter adapter.SourceFSAdapter, logger Logger) *DirectoryDeleter {
	if logger == nil {
		logger = discardLogger
	}

	return &DirectoryDeleter{fsAdapter: fsAdapter, logger: logger}
}

// DeleteNamed deletes all directories below root whose base name equals the
// trimmed name, contents included. Failures on single directories are logged
// and counted; only an unreadable root is returned as an error.
func (d *DirectoryDeleter) DeleteNamed(ctx context.Context, root m.Path, name string) (m.Tally, error) {
	d.logger.Logf("Attempt to delete directories named >%s<", name)

	localName := strings.TrimSpace(name)
	if localName == "" {
		d.logger.Logf("Skipping empty directory name")
		return m.Tally{}, nil
	}

	directories, err := scanTree(ctx, d.fsAdapter, d.logger, root, directoryEntries, func(base string) bool {
		return base == localName
	})
	if err != nil {
		return m.Tally{}, err
	}

	d.logger.Logf("%d director(ies) named >%s< found", len(directories), localName)

	tally := m.Tally{Matched: len(directories)}

	for _, directory := range directories {
		// A parent with the same name may already be gone, taking this one with it.
		exists, err := d.fsAdapter.Exists(ctx, directory)
		if err != nil {
			tally.Failed++

			d.logger.Logf("Failed to check directory >%s<: %v", directory, err)
			slog.ErrorContext(ctx, "Failed to check directory", "path", directory, "error", err)

			continue
		}

		if !exists {
			slog.DebugContext(ctx, "Directory already removed", "path", directory)
			continue
		}

		d.logger.Logf("Deleting directory >%s<, including subdirectories", directory)

		if err := d.fsAdapter.RemoveAll(ctx, directory); err != nil {
			tally.Failed++

			d.logger.Logf("Failed to delete directory >%s<: %v", directory, err)
			slog.ErrorContext(ctx, "Failed to delete directory", "path", directory, "error", err)

			continue
		}

		tally.Changed++
	}

	return tally, nil
}
