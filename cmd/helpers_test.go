package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"sccremover.dev/pkg/sccremover/internal/domain"
)

// useWorkflow routes newWorkflow to wf for the duration of the test and
// records the plain setting it was built with.
func useWorkflow(t *testing.T, wf domain.Workflow) *bool {
	t.Helper()

	plain := new(bool)
	original := newWorkflow

	newWorkflow = func(_ *cobra.Command, p bool) domain.Workflow {
		*plain = p
		return wf
	}

	t.Cleanup(func() { newWorkflow = original })

	return plain
}

// newTestRoot returns a root command with sub attached, logging into a temp dir.
func newTestRoot(t *testing.T, sub *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func testLogFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.log")
}

