package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sccremover.dev/pkg/sccremover/internal/adapter"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

func TestFileRewriter_ProjectFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"App.csproj": "<Project>\n  <scc provider=\"x\"/>\n</Project>\n",
	})

	logger := &recordingLogger{}
	rewriter := NewFileRewriter(adapter.NewLocalSourceFSAdapter(), logger)

	outcome, err := rewriter.Process(context.Background(), m.Path(filepath.Join(root, "App.csproj")), ProjectFilter{})
	require.NoError(t, err)

	assert.True(t, outcome.Changed)
	assert.Equal(t, 1, outcome.Dropped)
	assert.Equal(t, "<Project>\n</Project>\n", readTreeFile(t, root, "App.csproj"))
	assert.True(t, logger.contains("SCC footprint found in line 2"))
	assert.True(t, logger.contains("SCC footprint removed from file"))
}

func TestFileRewriter_SolutionFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"App.sln": "A\nGlobalSection(TeamFoundationVersionControl) = preSolution\nx\nEndGlobalSection\nB\n",
	})

	logger := &recordingLogger{}
	rewriter := NewFileRewriter(adapter.NewLocalSourceFSAdapter(), logger)

	outcome, err := rewriter.Process(context.Background(), m.Path(filepath.Join(root, "App.sln")), SolutionFilter{})
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.Dropped)
	assert.Equal(t, "A\nB\n", readTreeFile(t, root, "App.sln"))
	assert.True(t, logger.contains("End of SCC footprint found in line 4"))
	assert.True(t, logger.contains("Removing SCC footprint line 3"))
}

func TestFileRewriter_PreservesLineTerminators(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"App.vbproj": "<Project>\r\n  <SccAuxPath>SAK</SccAuxPath>\r\n  <OutputType>Exe</OutputType>\n</Project>",
	})

	rewriter := NewFileRewriter(adapter.NewLocalSourceFSAdapter(), nil)

	_, err := rewriter.Process(context.Background(), m.Path(filepath.Join(root, "App.vbproj")), ProjectFilter{})
	require.NoError(t, err)

	assert.Equal(t, "<Project>\r\n  <OutputType>Exe</OutputType>\n</Project>", readTreeFile(t, root, "App.vbproj"))
}

func TestFileRewriter_UnchangedFileIsNotWritten(t *testing.T) {
	root := t.TempDir()
	content := "<Project>\r\n  <OutputType>Exe</OutputType>\r\n</Project>\r\n"
	writeTree(t, root, map[string]string{"App.csproj": content})

	path := filepath.Join(root, "App.csproj")
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, past, past))

	logger := &recordingLogger{}
	rewriter := NewFileRewriter(adapter.NewLocalSourceFSAdapter(), logger)

	outcome, err := rewriter.Process(context.Background(), m.Path(path), ProjectFilter{})
	require.NoError(t, err)

	assert.False(t, outcome.Changed)
	assert.Zero(t, outcome.Dropped)
	assert.Equal(t, content, readTreeFile(t, root, "App.csproj"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "modification time changed")
	assert.True(t, logger.contains("does not contain SCC footprint"))
}

func TestFileRewriter_SecondPassIsNoop(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"App.sln": "A\nGlobalSection(TeamFoundationVersionControl) = preSolution\nx\nEndGlobalSection\nB\n",
	})

	path := m.Path(filepath.Join(root, "App.sln"))
	rewriter := NewFileRewriter(adapter.NewLocalSourceFSAdapter(), nil)

	first, err := rewriter.Process(context.Background(), path, SolutionFilter{})
	require.NoError(t, err)
	assert.True(t, first.Changed)

	second, err := rewriter.Process(context.Background(), path, SolutionFilter{})
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Equal(t, "A\nB\n", readTreeFile(t, root, "App.sln"))
}

func TestFileRewriter_UnclosedBlock(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"App.sln": "A\nGlobalSection(TeamFoundationVersionControl) = preSolution\nx\nB\n",
	})

	logger := &recordingLogger{}
	rewriter := NewFileRewriter(adapter.NewLocalSourceFSAdapter(), logger)

	outcome, err := rewriter.Process(context.Background(), m.Path(filepath.Join(root, "App.sln")), SolutionFilter{})
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.Dropped)
	assert.Equal(t, "A\n", readTreeFile(t, root, "App.sln"))
	assert.True(t, logger.contains("not closed"))
}

func TestFileRewriter_KeepsFileMode(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "App.csproj")
	require.NoError(t, os.WriteFile(path, []byte("<Project>\n<SccLocalPath/>\n</Project>\n"), 0o600))

	rewriter := NewFileRewriter(adapter.NewLocalSourceFSAdapter(), nil)

	_, err := rewriter.Process(context.Background(), m.Path(path), ProjectFilter{})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileRewriter_MissingFile(t *testing.T) {
	rewriter := NewFileRewriter(adapter.NewLocalSourceFSAdapter(), nil)

	_, err := rewriter.Process(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing.csproj")), ProjectFilter{})
	assert.Error(t, err)
}

func TestFileRewriter_WriteFailureLeavesFileIntact(t *testing.T) {
	root := t.TempDir()
	content := "<Project>\n<SccProvider/>\n</Project>\n"
	writeTree(t, root, map[string]string{"App.csproj": content})

	fsAdapter := &failingReplaceFS{
		SourceFSAdapter: adapter.NewLocalSourceFSAdapter(),
		failing:         map[string]bool{"App.csproj": true},
	}
	rewriter := NewFileRewriter(fsAdapter, nil)

	_, err := rewriter.Process(context.Background(), m.Path(filepath.Join(root, "App.csproj")), ProjectFilter{})
	require.ErrorIs(t, err, errInjectedWrite)
	assert.Equal(t, content, readTreeFile(t, root, "App.csproj"))
}
