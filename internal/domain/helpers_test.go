package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"sccremover.dev/pkg/sccremover/internal/adapter"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

// recordingLogger keeps every formatted message.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, message := range l.messages {
		if strings.Contains(message, substr) {
			return true
		}
	}

	return false
}

// failingReplaceFS fails ReplaceFile for the listed base names.
type failingReplaceFS struct {
	adapter.SourceFSAdapter
	failing map[string]bool
}

var errInjectedWrite = errors.New("injected write failure")

func (f *failingReplaceFS) ReplaceFile(ctx context.Context, path m.Path, content []byte) error {
	if f.failing[filepath.Base(string(path))] {
		return errInjectedWrite
	}

	return f.SourceFSAdapter.ReplaceFile(ctx, path, content)
}

// failingDeleteFS fails Remove and RemoveAll for paths below the directory
// named prefix directly under the scanned root.
type failingDeleteFS struct {
	adapter.SourceFSAdapter
	root   string
	prefix string
}

var errInjectedDelete = errors.New("injected delete failure")

func (f *failingDeleteFS) blocked(path m.Path) bool {
	rel, err := filepath.Rel(f.root, string(path))
	if err != nil {
		return false
	}

	return strings.HasPrefix(filepath.ToSlash(rel), f.prefix+"/")
}

func (f *failingDeleteFS) Remove(ctx context.Context, path m.Path) error {
	if f.blocked(path) {
		return errInjectedDelete
	}

	return f.SourceFSAdapter.Remove(ctx, path)
}

func (f *failingDeleteFS) RemoveAll(ctx context.Context, path m.Path) error {
	if f.blocked(path) {
		return errInjectedDelete
	}

	return f.SourceFSAdapter.RemoveAll(ctx, path)
}

// writeTree creates files relative to root. Keys ending in "/" are directories.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))

		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readTreeFile(t *testing.T, root, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)

	return string(data)
}

func treeHas(root, name string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(name)))
	return err == nil
}
