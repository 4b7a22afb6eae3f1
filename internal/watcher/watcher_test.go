package watcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgallion1/folio/internal/content"
	"github.com/dgallion1/folio/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func start(t *testing.T, root string) <-chan []string {
	t.Helper()
	changes := make(chan []string, 8)
	w, err := New(root, 50*time.Millisecond, func(paths []string) { changes <- paths }, testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		w.Close()
	})
	return changes
}

func write(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	root := t.TempDir()
	changes := start(t, root)

	a := filepath.Join(root, "a.yaml")
	b := filepath.Join(root, "b.md")
	write(t, a, "one")
	write(t, b, "# two")
	write(t, a, "three")

	select {
	case paths := <-changes:
		assert.Equal(t, []string{a, b}, paths)
	case <-time.After(2 * time.Second):
		t.Fatal("no change delivered")
	}

	select {
	case paths := <-changes:
		t.Fatalf("unexpected second batch %v", paths)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_IgnoresNonContent(t *testing.T) {
	root := t.TempDir()
	changes := start(t, root)

	write(t, filepath.Join(root, ".a.yaml.swp"), "x")
	write(t, filepath.Join(root, "notes.yaml~"), "x")
	write(t, filepath.Join(root, "logo.png"), "x")

	select {
	case paths := <-changes:
		t.Fatalf("unexpected change %v", paths)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	changes := start(t, root)

	dir := filepath.Join(root, "studies")
	require.NoError(t, os.Mkdir(dir, 0o755))
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("directory creation not delivered")
	}

	file := filepath.Join(dir, "x.yaml")
	write(t, file, "slug: x")
	select {
	case paths := <-changes:
		assert.Contains(t, paths, file)
	case <-time.After(2 * time.Second):
		t.Fatal("change in new directory not delivered")
	}
}

func TestIsContentFile(t *testing.T) {
	for path, want := range map[string]bool{
		"studies.yaml":  true,
		"a/b.YML":       true,
		"body.md":       true,
		"body.html":     true,
		"notes.txt":     true,
		"logo.png":      false,
		"Makefile":      false,
		"studies.yaml~": false,
	} {
		assert.Equal(t, want, IsContentFile(path), path)
	}
}

func TestReload_BroadcastsOnSuccess(t *testing.T) {
	fail := false
	store, err := content.NewStore(func() (*content.Catalog, error) {
		if fail {
			return nil, errors.New("broken yaml")
		}
		return content.New(nil, nil)
	}, testLogger())
	require.NoError(t, err)

	reg := session.NewRegistry(time.Minute, 0, testLogger())
	defer reg.CloseAll()
	sess, err := reg.Open("/docs")
	require.NoError(t, err)

	handler := Reload(store, reg, testLogger())

	handler([]string{"studies.yaml"})
	assert.Equal(t, uint64(2), store.Version())
	select {
	case msg := <-sess.Outbox():
		assert.Equal(t, session.Reload(), msg)
	case <-time.After(time.Second):
		t.Fatal("reload not broadcast")
	}

	fail = true
	handler([]string{"studies.yaml"})
	assert.Equal(t, uint64(2), store.Version())
	select {
	case msg := <-sess.Outbox():
		t.Fatalf("unexpected message %+v", msg)
	default:
	}
}
