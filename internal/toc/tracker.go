package toc

import "sync"

// NavOffset is the gap left above a section after navigating to it, so the
// heading clears the sticky site header.
const NavOffset = 80.0

// Tracker maintains the single "currently active" section id.
type Tracker struct {
	entries  []Entry
	doc      Document
	obs      Observer
	scroller Scroller
	onChange func(id string)

	mu      sync.Mutex
	active  string
	watched []string
	closed  bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// OnActiveChange registers fn to be called, outside the tracker's lock,
// whenever the active id changes.
func OnActiveChange(fn func(id string)) Option {
	return func(t *Tracker) { t.onChange = fn }
}

// NewTracker registers an intersection watch for every entry whose element
// exists in doc. Entries without an element are skipped silently.
func NewTracker(entries []Entry, doc Document, obs Observer, scroller Scroller, opts ...Option) *Tracker {
	t := &Tracker{
		entries:  append([]Entry(nil), entries...),
		doc:      doc,
		obs:      obs,
		scroller: scroller,
	}
	for _, opt := range opts {
		opt(t)
	}

	obs.OnIntersect(t.handle)
	for _, e := range t.entries {
		if _, ok := doc.Element(e.ID); !ok {
			continue
		}
		t.mu.Lock()
		t.watched = append(t.watched, e.ID)
		t.mu.Unlock()
		obs.Observe(e.ID)
	}
	return t
}

// ActiveID returns the active section id, or "" before any section has
// intersected.
func (t *Tracker) ActiveID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Entries returns the tracker's entries in document order.
func (t *Tracker) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Watched returns the ids that were actually registered with the observer.
func (t *Tracker) Watched() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.watched...)
}

// Navigate handles a click on the entry with the given id: it smooth-scrolls
// so the section sits NavOffset below the viewport top and marks it active
// without waiting for the intersection callback. It reports false when the
// element does not exist or the tracker is closed.
func (t *Tracker) Navigate(id string) bool {
	t.mu.Lock()
	closed := t.closed
	t.mu.Unlock()
	if closed {
		return false
	}

	el, ok := t.doc.Element(id)
	if !ok {
		return false
	}
	y := el.BoundingTop() + t.scroller.ScrollY() - NavOffset
	t.scroller.ScrollTo(y, Smooth)

	t.setActive(id)
	return true
}

// Close releases all observation. Later intersection reports are ignored.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	t.watched = nil
	t.mu.Unlock()

	t.obs.Disconnect()
}

// handle applies a batch of intersection reports. Every intersecting entry
// overwrites the active id, so the last one in the batch wins.
func (t *Tracker) handle(batch []IntersectionEntry) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	prev := t.active
	for _, e := range batch {
		if e.Intersecting {
			t.active = e.ID
		}
	}
	next := t.active
	t.mu.Unlock()

	if next != prev && t.onChange != nil {
		t.onChange(next)
	}
}

func (t *Tracker) setActive(id string) {
	t.mu.Lock()
	prev := t.active
	t.active = id
	t.mu.Unlock()

	if prev != id && t.onChange != nil {
		t.onChange(id)
	}
}
