package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"sccremover.dev/pkg/sccremover/internal/adapter"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

// ErrRootNotDirectory is reported when the configured root is not a directory.
var ErrRootNotDirectory = errors.New("root is not a directory")

// RemoveArgs contains the inputs of a single removal run.
type RemoveArgs struct {
	RunID              string
	Root               m.Path
	ExtraDirectories   string
	DefaultFileTypes   string
	DefaultDirectories string
	Logger             Logger
}

// Remover runs the fixed removal sequence against one root: delete default
// file types, delete default directories, delete user directories, clean
// project files, clean solution files.
type Remover interface {
	// Remove always finishes. Failures are reported through the logger and
	// end the sequence early, which Summary.Aborted records.
	Remove(ctx context.Context, args RemoveArgs) m.Summary
}

type remover struct {
	fsAdapter adapter.SourceFSAdapter
	clock     func() time.Time
}

// NewRemover constructs a Remover backed by the provided filesystem adapter.
func NewRemover(fsAdapter adapter.SourceFSAdapter) Remover {
	return &remover{
		fsAdapter: fsAdapter,
		clock:     time.Now,
	}
}

// removalRun holds the per-run collaborators.
type removalRun struct {
	args        RemoveArgs
	fsAdapter   adapter.SourceFSAdapter
	logger      Logger
	files       *FileTypeDeleter
	directories *DirectoryDeleter
	rewriter    *FileRewriter
	summary     *m.Summary
}

func (r *remover) Remove(ctx context.Context, args RemoveArgs) m.Summary {
	logger := args.Logger
	if logger == nil {
		logger = SlogLogger(ctx)
	}

	summary := m.Summary{
		RunID:   args.RunID,
		Root:    args.Root,
		Started: r.clock(),
	}

	run := &removalRun{
		args:        args,
		fsAdapter:   r.fsAdapter,
		logger:      logger,
		files:       NewFileTypeDeleter(r.fsAdapter, logger),
		directories: NewDirectoryDeleter(r.fsAdapter, logger),
		rewriter:    NewFileRewriter(r.fsAdapter, logger),
		summary:     &summary,
	}

	run.guarded(ctx)

	summary.Finished = r.clock()

	return summary
}

// guarded is the single top-level error boundary of a run.
func (run *removalRun) guarded(ctx context.Context) {
	defer func() {
		if recovered := recover(); recovered != nil {
			run.abort(ctx, fmt.Errorf("panic: %v", recovered), debug.Stack())
		}
	}()

	if err := run.process(ctx); err != nil {
		run.abort(ctx, err, nil)
	}
}

func (run *removalRun) process(ctx context.Context) error {
	run.logger.Logf("Starting processing")

	if err := run.checkRoot(ctx); err != nil {
		return err
	}

	if err := run.deleteFileTypes(ctx, m.StepDefaultFileTypes, run.args.DefaultFileTypes); err != nil {
		return err
	}

	if err := run.deleteDirectories(ctx, m.StepDefaultDirectories, run.args.DefaultDirectories); err != nil {
		return err
	}

	if err := run.deleteDirectories(ctx, m.StepUserDirectories, run.args.ExtraDirectories); err != nil {
		return err
	}

	if err := run.rewriteFiles(ctx, m.StepProjectFiles, adapter.ProjectFilePattern, ProjectFilter{}); err != nil {
		return err
	}

	if err := run.rewriteFiles(ctx, m.StepSolutionFiles, adapter.SolutionFilePattern, SolutionFilter{}); err != nil {
		return err
	}

	run.logger.Logf("Finished processing")

	return nil
}

func (run *removalRun) checkRoot(ctx context.Context) error {
	info, err := run.fsAdapter.FileInfo(ctx, run.args.Root)
	if err != nil {
		return fmt.Errorf("root %s: %w", run.args.Root, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDirectory, run.args.Root)
	}

	return nil
}

func (run *removalRun) deleteFileTypes(ctx context.Context, step m.StepName, list string) error {
	fileTypes := ParseList(list, m.ListSeparator)
	run.logger.Logf("Deleting files from list >%s<, containing %d entries", list, len(fileTypes))

	result := m.StepResult{Name: step}

	for _, fileType := range fileTypes {
		tally, err := run.files.DeleteByExtension(ctx, run.args.Root, fileType)
		result.Add(tally)

		if err != nil {
			run.record(result)
			return err
		}
	}

	run.record(result)

	return nil
}

func (run *removalRun) deleteDirectories(ctx context.Context, step m.StepName, list string) error {
	directories := ParseList(list, m.ListSeparator)
	run.logger.Logf("Deleting subdirectories from list >%s<, containing %d entries", list, len(directories))

	result := m.StepResult{Name: step}

	for _, directory := range directories {
		tally, err := run.directories.DeleteNamed(ctx, run.args.Root, directory)
		result.Add(tally)

		if err != nil {
			run.record(result)
			return err
		}
	}

	run.record(result)

	return nil
}

// rewriteFiles cleans every file matching pattern. A failing file is logged
// and counted, and the remaining files are still processed.
func (run *removalRun) rewriteFiles(ctx context.Context, step m.StepName, pattern string, filter LineFilter) error {
	matcher, err := adapter.CompilePattern(pattern)
	if err != nil {
		return err
	}

	files, err := scanTree(ctx, run.fsAdapter, run.logger, run.args.Root, fileEntries, matcher.Match)
	if err != nil {
		return err
	}

	run.logger.Logf("Removing SCC footprint from %s files, %d file(s) found", filter.Name(), len(files))

	result := m.StepResult{Name: step}
	result.Matched = len(files)

	for _, file := range files {
		outcome, err := run.rewriter.Process(ctx, file, filter)
		if err != nil {
			result.Failed++

			run.logger.Logf("Failed to remove SCC footprint from file >%s<: %v", file, err)
			slog.ErrorContext(ctx, "Failed to rewrite file", "path", file, "filter", filter.Name(), "error", err)

			continue
		}

		if outcome.Changed {
			result.Changed++
		}
	}

	run.record(result)

	return nil
}

func (run *removalRun) record(result m.StepResult) {
	run.summary.Steps = append(run.summary.Steps, result)
	slog.Debug("Step finished", "step", result.Name, "matched", result.Matched, "changed", result.Changed, "failed", result.Failed)
}

// abort ends the run after an unexpected failure. The logger itself may be
// the failing party, so it is called behind its own recover.
func (run *removalRun) abort(ctx context.Context, err error, stack []byte) {
	run.summary.Aborted = true

	attrs := []any{"run", run.args.RunID, "root", run.args.Root, "error", err}
	if len(stack) > 0 {
		attrs = append(attrs, "stack", string(stack))
	}

	slog.ErrorContext(ctx, "Removal run aborted", attrs...)

	defer func() {
		if recovered := recover(); recovered != nil {
			slog.ErrorContext(ctx, "Logger failed while reporting abort", "run", run.args.RunID, "panic", recovered)
		}
	}()

	if len(stack) > 0 {
		run.logger.Logf("Exception caught: %v\n%s", err, stack)
		return
	}

	run.logger.Logf("Exception caught: %v", err)
}
