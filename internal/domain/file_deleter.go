package domain

import (
	"context"
	"log/slog"
	"strings"

	"sccremover.dev/pkg/sccremover/internal/adapter"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

// FileTypeDeleter removes every file below a root with a given extension.
type FileTypeDeleter struct {
	fsAdapter adapter.SourceFSAdapter
	logger    Logger
}

// NewFileTypeDeleter constructs a FileTypeDeleter reporting to logger.
func NewFileTypeDeleter(fsAdapter adapter.SourceFSAdapter, logger Logger) *FileTypeDeleter {
	if logger == nil {
		logger = discardLogger
	}

	return &FileTypeDeleter{fsAdapter: fsAdapter, logger: logger}
}

// DeleteByExtension deletes all files below root matching *.<ext>. The
// extension is used as given. Blank extensions are skipped since "*." would
// match names ending in a dot.
func (d *FileTypeDeleter) DeleteByExtension(ctx context.Context, root m.Path, ext string) (m.Tally, error) {
	d.logger.Logf("Attempt to delete files of type >%s<", ext)

	if strings.TrimSpace(ext) == "" {
		d.logger.Logf("Skipping empty file type")
		return m.Tally{}, nil
	}

	matcher, err := adapter.CompilePattern(adapter.FileTypePattern(ext))
	if err != nil {
		d.logger.Logf("Skipping file type >%s<: %v", ext, err)
		return m.Tally{Failed: 1}, nil
	}

	files, err := scanTree(ctx, d.fsAdapter, d.logger, root, fileEntries, matcher.Match)
	if err != nil {
		return m.Tally{}, err
	}

	d.logger.Logf("%d file(s) of type >%s< found", len(files), ext)

	tally := m.Tally{Matched: len(files)}

	for _, file := range files {
		d.logger.Logf("Deleting file >%s<", file)

		if err := d.fsAdapter.Remove(ctx, file); err != nil {
			tally.Failed++

			d.logger.Logf("Failed to delete file >%s<: %v", file, err)
			slog.ErrorContext(ctx, "Failed to delete file", "path", file, "error", err)

			continue
		}

		tally.Changed++
	}

	return tally, nil
}
