package session

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// ErrFull is returned by Open when the session cap is reached.
var ErrFull = errors.New("too many sessions")

// Registry is a thread-safe set of live sessions with idle eviction.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	ttl       time.Duration
	max       int
	copyDelay time.Duration
	log       *slog.Logger
}

// NewRegistry returns a registry evicting sessions idle longer than ttl and
// holding at most maxSessions sessions (zero means unlimited).
func NewRegistry(ttl time.Duration, maxSessions int, log *slog.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		max:      maxSessions,
		log:      log,
	}
}

// SetCopyDelay overrides how long copy confirmations stay visible in new
// sessions.
func (r *Registry) SetCopyDelay(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.copyDelay = d
}

// Open registers a session for the page at path.
func (r *Registry) Open(path string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.max > 0 && len(r.sessions) >= r.max {
		return nil, ErrFull
	}
	s := newSession(path, r.copyDelay, r.log)
	r.sessions[s.ID] = s
	s.log.Debug("session opened", "sessions", len(r.sessions))
	return s, nil
}

// Get returns the session with id, or nil.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id]
}

// Remove closes and forgets a session.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	s := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if s != nil {
		s.Close()
		s.log.Debug("session closed")
	}
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Cleanup removes sessions idle longer than the TTL and returns how many
// were removed.
func (r *Registry) Cleanup() int {
	r.mu.Lock()
	now := time.Now()
	var expired []*Session
	for id, s := range r.sessions {
		if now.Sub(s.UpdatedAt()) > r.ttl {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
		s.log.Info("session expired", "idle", now.Sub(s.UpdatedAt()).Round(time.Second).String())
	}
	return len(expired)
}

// Run calls Cleanup every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Cleanup()
		}
	}
}

// Broadcast queues msg on every session and returns the number reached.
func (r *Registry) Broadcast(msg Message) int {
	r.mu.Lock()
	targets := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		targets = append(targets, s)
	}
	r.mu.Unlock()

	for _, s := range targets {
		s.Send(msg)
	}
	return len(targets)
}

// Snapshots lists sessions, oldest first.
func (r *Registry) Snapshots() []Snapshot {
	r.mu.Lock()
	list := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		list = append(list, s)
	}
	r.mu.Unlock()

	out := make([]Snapshot, 0, len(list))
	for _, s := range list {
		out = append(out, s.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CloseAll closes every session.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()
	for _, s := range all {
		s.Close()
	}
}
