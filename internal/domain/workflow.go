package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sccremover.dev/pkg/sccremover/internal/adapter"
	"sccremover.dev/pkg/sccremover/internal/controller"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

// Errors returned before a run starts.
var (
	ErrRootRequired = errors.New("root directory is required")
	ErrRunCancelled = errors.New("removal cancelled")
)

// Run banners shown around every run, whatever its outcome.
const (
	startBanner  = "Start removing SCC content."
	finishBanner = "Removing SCC content finished"
)

// RunArgs contains the arguments of an interactive removal run.
type RunArgs struct {
	Root               m.Path
	ExtraDirectories   string
	DefaultFileTypes   string
	DefaultDirectories string
	AssumeYes          bool
	Report             m.Path
}

// ViewArgs contains the arguments for viewing a stored report.
type ViewArgs struct {
	Report m.Path
}

// Workflow wires validation, locking, the UI and the Remover together.
type Workflow interface {
	// Remove performs one run. Errors are only returned for problems found
	// before the run starts (configuration, lock, confirmation) or when the
	// report cannot be saved; a failing run is reported through the log.
	Remove(ctx context.Context, args RunArgs) (m.Summary, error)
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	locker      adapter.RunLocker
	ui          controller.UI
	remover     Remover
	newRunID    func() string
	clock       func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	locker adapter.RunLocker,
	ui controller.UI,
	remover Remover,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		locker:      locker,
		ui:          ui,
		remover:     remover,
		newRunID:    uuid.NewString,
		clock:       time.Now,
	}
}

func (w *workflow) Remove(ctx context.Context, args RunArgs) (m.Summary, error) {
	root, err := w.validate(ctx, args)
	if err != nil {
		return m.Summary{}, err
	}

	release, err := w.locker.Acquire(root)
	if err != nil {
		return m.Summary{}, err
	}

	defer func() {
		if err := release(); err != nil {
			slog.Error("Failed to release run lock", "root", root, "error", err)
		}
	}()

	if err := w.ui.Start(ctx); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.Summary{}, err
	}

	if !args.AssumeYes {
		confirmed, err := w.ui.Confirm(ctx, root)
		if err != nil {
			w.ui.Close(ctx)
			return m.Summary{}, fmt.Errorf("confirm: %w", err)
		}

		if !confirmed {
			w.ui.Close(ctx)
			return m.Summary{}, ErrRunCancelled
		}
	}

	sink := newRunSink(ctx, w.ui, w.newRunID(), w.clock)
	summary := w.run(ctx, sink, root, args)

	w.ui.Close(ctx)

	if args.Report != "" {
		report := m.RunReport{
			Version: m.CurrentReportVersion,
			Summary: summary,
			Entries: sink.Entries(),
		}

		if err := w.reportStore.SaveReport(args.Report, report); err != nil {
			slog.Error("Failed to save report", "path", args.Report, "error", err)
			return summary, fmt.Errorf("save report: %w", err)
		}
	}

	return summary, nil
}

// run executes the removal on a worker goroutine while the UI keeps running.
func (w *workflow) run(ctx context.Context, sink *runSink, root m.Path, args RunArgs) m.Summary {
	var summary m.Summary

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		sink.Logf(startBanner)

		summary = w.remover.Remove(groupCtx, RemoveArgs{
			RunID:              sink.runID,
			Root:               root,
			ExtraDirectories:   args.ExtraDirectories,
			DefaultFileTypes:   args.DefaultFileTypes,
			DefaultDirectories: args.DefaultDirectories,
			Logger:             sink,
		})

		sink.Logf(finishBanner)

		if err := w.ui.DisplaySummary(groupCtx, summary); err != nil {
			slog.Error("Failed to display summary", "error", err)
		}

		return nil
	})

	group.Go(func() error {
		w.ui.Wait(groupCtx)
		return nil
	})

	_ = group.Wait()

	return summary
}

func (w *workflow) validate(ctx context.Context, args RunArgs) (m.Path, error) {
	if args.Root == "" {
		return "", ErrRootRequired
	}

	lists := []struct {
		name  string
		value string
	}{
		{"default file types", args.DefaultFileTypes},
		{"default directories", args.DefaultDirectories},
		{"user directories", args.ExtraDirectories},
	}

	for _, list := range lists {
		if err := ValidateList(list.value, m.ListSeparator); err != nil {
			return "", fmt.Errorf("%s: %w", list.name, err)
		}
	}

	root, err := w.fsAdapter.AbsPath(ctx, args.Root)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", args.Root, err)
	}

	return root, nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.reportStore.LoadReport(args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.ui.DisplayReport(ctx, report)
}

// runSink fans sink messages out to the UI, slog and the run report.
type runSink struct {
	ctx   context.Context
	ui    controller.UI
	runID string
	clock func() time.Time

	mu      sync.Mutex
	entries []m.LogEntry
}

func newRunSink(ctx context.Context, ui controller.UI, runID string, clock func() time.Time) *runSink {
	return &runSink{ctx: ctx, ui: ui, runID: runID, clock: clock}
}

// Logf implements Logger.
func (s *runSink) Logf(format string, args ...interface{}) {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	entry := m.LogEntry{Time: s.clock(), Message: message}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	slog.InfoContext(s.ctx, message, "run", s.runID)
	s.ui.Log(s.ctx, entry)
}

// Entries returns a copy of everything logged so far.
func (s *runSink) Entries() []m.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]m.LogEntry, len(s.entries))
	copy(entries, s.entries)

	return entries
}
