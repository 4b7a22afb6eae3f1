// Package session keeps the per-page state behind a live page: the table
// of contents tracker, its geometry, and code-block copy confirmations.
// Browsers drive a session with ClientMessages and receive Messages.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgallion1/folio/internal/highlight"
	"github.com/dgallion1/folio/internal/toc"
)

// ErrUnknownMessage is returned by Handle for unrecognized message types.
var ErrUnknownMessage = errors.New("unknown message type")

const outboxSize = 64

// Session is one connected page.
type Session struct {
	ID        string
	Path      string
	CreatedAt time.Time

	log       *slog.Logger
	copyDelay time.Duration

	out     chan Message
	done    chan struct{}
	closed  atomic.Bool
	dropped atomic.Int64
	touched atomic.Int64

	mu      sync.Mutex
	geo     *toc.GeometryObserver
	tracker *toc.Tracker
	entries []toc.Entry
	copies  map[string]*highlight.CopyState
}

func newSession(path string, copyDelay time.Duration, log *slog.Logger) *Session {
	now := time.Now()
	s := &Session{
		ID:        NewID(),
		Path:      path,
		CreatedAt: now,
		copyDelay: copyDelay,
		out:       make(chan Message, outboxSize),
		done:      make(chan struct{}),
		copies:    make(map[string]*highlight.CopyState),
	}
	s.log = log.With("session_id", s.ID, "path", path)
	s.touched.Store(now.UnixNano())
	return s
}

// Outbox delivers messages for the page. It is never closed; watch Done.
func (s *Session) Outbox() <-chan Message { return s.out }

// Done is closed when the session closes.
func (s *Session) Done() <-chan struct{} { return s.done }

// UpdatedAt is the time of the last client message.
func (s *Session) UpdatedAt() time.Time {
	return time.Unix(0, s.touched.Load())
}

// Send queues msg for the page. It never blocks; when the outbox is full the
// message is dropped and counted.
func (s *Session) Send(msg Message) {
	if s.closed.Load() {
		return
	}
	select {
	case s.out <- msg:
	default:
		s.dropped.Add(1)
		s.log.Warn("session outbox full, dropping message", "type", msg.Type)
	}
}

// Handle applies one client message.
func (s *Session) Handle(msg ClientMessage) error {
	if s.closed.Load() {
		return nil
	}
	s.touched.Store(time.Now().UnixNano())

	switch msg.Type {
	case TypeLayout:
		s.layout(msg)
	case TypeScroll:
		s.mu.Lock()
		geo := s.geo
		s.mu.Unlock()
		if geo != nil {
			geo.Scroll(msg.ScrollY, msg.Height)
		}
	case TypeClick:
		s.mu.Lock()
		tr := s.tracker
		s.mu.Unlock()
		if tr == nil || !tr.Navigate(msg.ID) {
			s.log.Debug("toc click ignored", "id", msg.ID)
		}
	case TypeCopy:
		if msg.Block == "" {
			return fmt.Errorf("copy: missing block")
		}
		s.copyState(msg.Block).Trigger()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
	return nil
}

// layout installs section geometry. A new tracker is built when the TOC
// entries change; otherwise the existing one sees the new geometry.
func (s *Session) layout(msg ClientMessage) {
	sections := make(map[string]toc.Rect, len(msg.Sections))
	for _, sec := range msg.Sections {
		sections[sec.ID] = toc.Rect{Top: sec.Top, Height: sec.Height}
	}

	s.mu.Lock()
	if s.tracker != nil && sameEntries(s.entries, msg.Entries) {
		geo := s.geo
		s.mu.Unlock()
		geo.SetLayout(msg.Viewport, sections)
		return
	}
	if s.tracker != nil {
		s.tracker.Close()
	}

	geo := toc.NewGeometryObserver(toc.DefaultMargin, func(top float64, b toc.Behavior) {
		s.Send(ScrollTo(top, b))
	})
	geo.SetLayout(msg.Viewport, sections)
	tracker := toc.NewTracker(msg.Entries, geo, geo, geo, toc.OnActiveChange(func(id string) {
		s.Send(Active(id))
	}))
	s.geo = geo
	s.tracker = tracker
	s.entries = append([]toc.Entry(nil), msg.Entries...)
	s.mu.Unlock()

	if missing := len(msg.Entries) - len(tracker.Watched()); missing > 0 {
		s.log.Debug("toc entries without a section", "missing", missing)
	}
	geo.Refresh()
}

func (s *Session) copyState(block string) *highlight.CopyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.copies[block]
	if !ok {
		c = highlight.NewCopyState(s.copyDelay, func(copied bool) {
			s.Send(Copied(block, copied))
		})
		s.copies[block] = c
	}
	return c
}

// ActiveID returns the tracker's active entry, or "" before layout.
func (s *Session) ActiveID() string {
	s.mu.Lock()
	tr := s.tracker
	s.mu.Unlock()
	if tr == nil {
		return ""
	}
	return tr.ActiveID()
}

// Close tears down the tracker and copy timers. It is idempotent.
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	s.mu.Lock()
	if s.tracker != nil {
		s.tracker.Close()
	}
	for _, c := range s.copies {
		c.Stop()
	}
	s.mu.Unlock()
	close(s.done)
}

// Snapshot is a JSON-safe view of a session.
type Snapshot struct {
	ID        string    `json:"session_id"`
	Path      string    `json:"path"`
	ActiveID  string    `json:"active_id"`
	Dropped   int64     `json:"dropped_messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns a copy of the session's state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.ID,
		Path:      s.Path,
		ActiveID:  s.ActiveID(),
		Dropped:   s.dropped.Load(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt(),
	}
}

func sameEntries(a, b []toc.Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
