package controller

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

// SimpleUI implements UI using cobra Command's input and output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait returns immediately; SimpleUI doesn't block.
func (s *SimpleUI) Wait(_ context.Context) {}

// Confirm asks on the command input. Anything but an explicit yes declines.
func (s *SimpleUI) Confirm(ctx context.Context, root m.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.printf("%s", confirmationPrompt(root))

	answer, err := bufio.NewReader(s.cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		s.printf("\n")
		return false, nil
	}

	return isYes(strings.TrimSpace(answer)), nil
}

// Log prints one timestamped line.
func (s *SimpleUI) Log(_ context.Context, entry m.LogEntry) {
	s.printf("%s\n", FormatLogEntry(entry))
}

// DisplaySummary prints the per-step table and the run status.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\n", renderSummaryTable(summary))
	s.printStatus(summary)

	return nil
}

// DisplayReport prints a stored report: header, log lines and summary.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Run %s on %s\n", report.Summary.RunID, report.Summary.Root)
	s.printf("Started %s\n\n", report.Summary.Started.Format(time.RFC3339))

	for _, entry := range report.Entries {
		s.Log(ctx, entry)
	}

	return s.DisplaySummary(ctx, report.Summary)
}

func (s *SimpleUI) printStatus(summary m.Summary) {
	status := color.New(color.FgGreen)
	if summary.Aborted {
		status = color.New(color.FgRed, color.Bold)
	}

	_, _ = status.Fprintln(s.cmd.OutOrStdout(), summaryStatus(summary))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
