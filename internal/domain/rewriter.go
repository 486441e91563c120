package domain

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"sccremover.dev/pkg/sccremover/internal/adapter"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

// FileRewriter streams a file through a LineFilter and replaces the file
// content only when at least one line was dropped.
type FileRewriter struct {
	fsAdapter adapter.SourceFSAdapter
	logger    Logger
}

// NewFileRewriter constructs a FileRewriter reporting to logger.
func NewFileRewriter(fsAdapter adapter.SourceFSAdapter, logger Logger) *FileRewriter {
	if logger == nil {
		logger = discardLogger
	}

	return &FileRewriter{fsAdapter: fsAdapter, logger: logger}
}

// Process filters the file at path. The whole file is read and filtered
// before anything is written back, and an unchanged file is never touched.
func (r *FileRewriter) Process(ctx context.Context, path m.Path, filter LineFilter) (m.RewriteOutcome, error) {
	r.logger.Logf("Attempt to remove SCC footprint from %s file >%s<", filter.Name(), path)

	reader, err := r.fsAdapter.Open(ctx, path)
	if err != nil {
		return m.RewriteOutcome{Path: path}, fmt.Errorf("open %s: %w", path, err)
	}

	outcome, state, filterErr := r.filter(path, reader, filter)
	closeErr := reader.Close()

	if err := errors.Join(filterErr, closeErr); err != nil {
		return m.RewriteOutcome{Path: path}, fmt.Errorf("read %s: %w", path, err)
	}

	if state == m.Inside {
		r.logger.Logf("SCC footprint block not closed in file >%s<, all lines after its start were removed", path)
		slog.WarnContext(ctx, "Footprint block not closed", "path", path)
	}

	if !outcome.Changed {
		r.logger.Logf("File >%s< does not contain SCC footprint.", path)
		return outcome, nil
	}

	if err := r.fsAdapter.ReplaceFile(ctx, path, outcome.Content); err != nil {
		return m.RewriteOutcome{Path: path}, fmt.Errorf("write %s: %w", path, err)
	}

	r.logger.Logf("SCC footprint removed from file >%s<", path)
	slog.DebugContext(ctx, "Rewrote file", "path", path, "dropped", outcome.Dropped)

	return outcome, nil
}

// filter runs every line of reader through filter. Kept lines are copied
// with their original terminators.
func (r *FileRewriter) filter(path m.Path, reader io.Reader, filter LineFilter) (m.RewriteOutcome, m.FootprintState, error) {
	outcome := m.RewriteOutcome{Path: path}
	state := m.Outside

	var buffer bytes.Buffer

	lines := bufio.NewReader(reader)
	lineNumber := 0

	for {
		raw, err := lines.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return outcome, state, err
		}

		if raw != "" {
			lineNumber++

			line := trimLineTerminator(raw)

			var decision m.LineDecision
			decision, state = filter.Classify(line, state)

			if decision.Dropped() {
				outcome.Dropped++
				r.logDrop(decision, lineNumber, line)
			} else {
				buffer.WriteString(raw)
			}
		}

		if err != nil {
			break
		}
	}

	if outcome.Dropped > 0 {
		outcome.Changed = true
		outcome.Content = buffer.Bytes()
	}

	return outcome, state, nil
}

func (r *FileRewriter) logDrop(decision m.LineDecision, lineNumber int, line string) {
	switch decision {
	case m.DropBlockEnd:
		r.logger.Logf("End of SCC footprint found in line %d: >%s<", lineNumber, line)
	case m.DropBlockLine:
		r.logger.Logf("Removing SCC footprint line %d: >%s<", lineNumber, line)
	default:
		r.logger.Logf("SCC footprint found in line %d: >%s<", lineNumber, line)
	}
}

func trimLineTerminator(raw string) string {
	if strings.HasSuffix(raw, "\r\n") {
		return raw[:len(raw)-2]
	}

	return strings.TrimSuffix(raw, "\n")
}
