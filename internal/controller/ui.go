// Package controller provides the front-ends that drive and display removal runs.
package controller

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

// logTimeLayout prefixes every displayed log line.
const logTimeLayout = "15:04:05.00000"

// UI defines the interface for confirming and displaying removal runs.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	Confirm(ctx context.Context, root m.Path) (bool, error)
	Log(ctx context.Context, entry m.LogEntry)
	DisplaySummary(ctx context.Context, summary m.Summary) error
	DisplayReport(ctx context.Context, report m.RunReport) error
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewUI returns the interactive UI on terminals and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// FormatLogEntry renders an entry as "HH:MM:SS.fffff - message".
func FormatLogEntry(entry m.LogEntry) string {
	return fmt.Sprintf("%s - %s", entry.Time.Format(logTimeLayout), entry.Message)
}

func confirmationPrompt(root m.Path) string {
	return fmt.Sprintf("Please confirm the SCC removal in >%s< [y/N]: ", root)
}

func isYes(answer string) bool {
	switch answer {
	case "y", "Y", "yes", "Yes", "YES":
		return true
	default:
		return false
	}
}
