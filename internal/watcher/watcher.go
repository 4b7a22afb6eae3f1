// Package watcher reloads site content when files in the content
// directory change.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dgallion1/folio/internal/content"
	"github.com/dgallion1/folio/internal/parser"
	"github.com/dgallion1/folio/internal/session"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups bursts of editor writes into one reload.
const DefaultDebounce = 200 * time.Millisecond

// ChangeHandler receives the distinct paths changed during one debounce
// window, sorted.
type ChangeHandler func(paths []string)

// Watcher watches a directory tree for content changes.
type Watcher struct {
	root     string
	delay    time.Duration
	fsw      *fsnotify.Watcher
	onChange ChangeHandler
	log      *slog.Logger
}

// New watches root and every directory below it.
func New(root string, delay time.Duration, onChange ChangeHandler, log *slog.Logger) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		root:     filepath.Clean(root),
		delay:    delay,
		fsw:      fsw,
		onChange: onChange,
		log:      log.With("component", "watcher", "root", root),
	}
	if err := w.addRecursive(w.root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run delivers debounced changes until ctx is done or the watcher is
// closed.
func (w *Watcher) Run(ctx context.Context) {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]struct{})
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.accept(ev) {
				continue
			}
			pending[ev.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		case <-fire:
			fire = nil
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			sort.Strings(paths)
			w.log.Debug("content changed", "paths", paths)
			w.onChange(paths)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// accept reports whether ev should trigger a reload. New directories are
// watched as they appear.
func (w *Watcher) accept(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(ev.Name); err != nil {
				w.log.Warn("watch new directory failed", "path", ev.Name, "error", err)
			}
			return true
		}
	}
	return IsContentFile(ev.Name)
}

// IsContentFile reports whether path is something the content loader reads.
func IsContentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return parser.IsSupportedExtension(path)
}

// Reload returns a ChangeHandler that reloads the store and, when the new
// content loads, tells every live page to refresh.
func Reload(store *content.Store, sessions *session.Registry, log *slog.Logger) ChangeHandler {
	return func(paths []string) {
		if err := store.Reload(); err != nil {
			// Store.Reload logs the failure and keeps serving the old snapshot.
			return
		}
		n := sessions.Broadcast(session.Reload())
		log.Info("live pages notified", "changed", len(paths), "version", store.Version(), "pages_notified", n)
	}
}
