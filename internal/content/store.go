package content

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Loader produces a fresh catalog snapshot.
type Loader func() (*Catalog, error)

// Store serves the current catalog and swaps in new snapshots on Reload.
// Readers never block.
type Store struct {
	load Loader
	log  *slog.Logger

	cur      atomic.Pointer[Catalog]
	version  atomic.Uint64
	reloadMu sync.Mutex
	loadedAt atomic.Int64
}

// NewStore performs the initial load. It fails if that load fails.
func NewStore(load Loader, log *slog.Logger) (*Store, error) {
	s := &Store{load: load, log: log}
	c, err := load()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	s.swap(c)
	return s, nil
}

// Catalog returns the current snapshot.
func (s *Store) Catalog() *Catalog {
	return s.cur.Load()
}

// Version increments on every successful reload.
func (s *Store) Version() uint64 {
	return s.version.Load()
}

// LoadedAt reports when the current snapshot was installed.
func (s *Store) LoadedAt() time.Time {
	return time.Unix(0, s.loadedAt.Load())
}

// Reload loads a new snapshot. On failure the previous snapshot stays in
// place and the error is returned.
func (s *Store) Reload() error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := time.Now()
	c, err := s.load()
	if err != nil {
		s.log.Error("content reload failed, keeping previous snapshot", "error", err)
		return fmt.Errorf("reload content: %w", err)
	}
	s.swap(c)
	s.log.Info("content reloaded",
		"version", s.Version(),
		"studies", len(c.studies),
		"components", len(c.components),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *Store) swap(c *Catalog) {
	s.cur.Store(c)
	s.version.Add(1)
	s.loadedAt.Store(time.Now().UnixNano())
}
