package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherFiresAfterWrite(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "manual_spec.yml")
	require.NoError(t, os.WriteFile(specPath, []byte("site:\n  title: a\n"), 0o644))

	changed := make(chan struct{}, 1)
	w, err := New(specPath, 50*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	// Give the watcher a moment to register before mutating the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(specPath, []byte("site:\n  title: b\n"), 0o644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not fire after spec write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "manual_spec.yml")
	require.NoError(t, os.WriteFile(specPath, []byte("site: {}\n"), 0o644))

	changed := make(chan struct{}, 1)
	w, err := New(specPath, 50*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-changed:
		t.Fatal("watcher fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "manual_spec.yml")
	require.NoError(t, os.WriteFile(specPath, []byte("{}\n"), 0o644))

	w, err := New(specPath, 0, func() {})
	require.NoError(t, err)
	w.Stop()
	w.Stop()
}
