package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObserver struct {
	observed     []string
	fn           func([]IntersectionEntry)
	disconnected bool
}

func (f *fakeObserver) Observe(id string)   { f.observed = append(f.observed, id) }
func (f *fakeObserver) Unobserve(id string) {}
func (f *fakeObserver) OnIntersect(fn func([]IntersectionEntry)) {
	f.fn = fn
}
func (f *fakeObserver) Disconnect() { f.disconnected = true }

func (f *fakeObserver) fire(entries ...IntersectionEntry) {
	if f.fn != nil {
		f.fn(entries)
	}
}

type fakeElement float64

func (e fakeElement) BoundingTop() float64 { return float64(e) }

type fakeDoc map[string]float64

func (d fakeDoc) Element(id string) (Element, bool) {
	top, ok := d[id]
	if !ok {
		return nil, false
	}
	return fakeElement(top), true
}

type scrollCall struct {
	top      float64
	behavior Behavior
}

type fakeScroller struct {
	y     float64
	calls []scrollCall
}

func (s *fakeScroller) ScrollY() float64 { return s.y }
func (s *fakeScroller) ScrollTo(top float64, b Behavior) {
	s.calls = append(s.calls, scrollCall{top, b})
}

var abEntries = []Entry{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}

func TestTracker_InitiallyInactive(t *testing.T) {
	obs := &fakeObserver{}
	tr := NewTracker(abEntries, fakeDoc{"a": 0, "b": 0}, obs, &fakeScroller{})

	assert.Empty(t, tr.ActiveID())
	assert.Equal(t, []string{"a", "b"}, obs.observed)
	assert.Equal(t, abEntries, tr.Entries())
}

func TestTracker_SkipsMissingElements(t *testing.T) {
	entries := []Entry{{ID: "a"}, {ID: "ghost"}, {ID: "b"}}
	obs := &fakeObserver{}
	tr := NewTracker(entries, fakeDoc{"a": 0, "b": 0}, obs, &fakeScroller{})

	assert.Equal(t, []string{"a", "b"}, obs.observed)
	assert.Equal(t, []string{"a", "b"}, tr.Watched())
}

func TestTracker_IntersectionActivates(t *testing.T) {
	obs := &fakeObserver{}
	tr := NewTracker(abEntries, fakeDoc{"a": 0, "b": 0}, obs, &fakeScroller{})

	obs.fire(IntersectionEntry{ID: "b", Intersecting: true})
	assert.Equal(t, "b", tr.ActiveID())

	// Leaving the root area does not clear the active section.
	obs.fire(IntersectionEntry{ID: "b", Intersecting: false})
	assert.Equal(t, "b", tr.ActiveID())
}

func TestTracker_LastIntersectingWins(t *testing.T) {
	obs := &fakeObserver{}
	tr := NewTracker(abEntries, fakeDoc{"a": 0, "b": 0}, obs, &fakeScroller{})

	obs.fire(
		IntersectionEntry{ID: "b", Intersecting: true},
		IntersectionEntry{ID: "a", Intersecting: true},
		IntersectionEntry{ID: "b", Intersecting: false},
	)
	assert.Equal(t, "a", tr.ActiveID())
}

func TestTracker_NavigateIsOptimistic(t *testing.T) {
	obs := &fakeObserver{}
	sc := &fakeScroller{y: 1000}
	var changes []string
	tr := NewTracker(abEntries, fakeDoc{"a": 300, "b": 900}, obs, sc,
		OnActiveChange(func(id string) { changes = append(changes, id) }))

	require.True(t, tr.Navigate("a"))
	assert.Equal(t, "a", tr.ActiveID())
	assert.Equal(t, []scrollCall{{top: 1220, behavior: Smooth}}, sc.calls)
	assert.Equal(t, []string{"a"}, changes)

	// Clicking the already active entry scrolls again without a change event.
	require.True(t, tr.Navigate("a"))
	assert.Len(t, sc.calls, 2)
	assert.Equal(t, []string{"a"}, changes)
}

func TestTracker_NavigateMissingElement(t *testing.T) {
	sc := &fakeScroller{}
	tr := NewTracker(abEntries, fakeDoc{"a": 0}, &fakeObserver{}, sc)

	assert.False(t, tr.Navigate("b"))
	assert.Empty(t, sc.calls)
	assert.Empty(t, tr.ActiveID())
}

func TestTracker_CloseReleasesObservation(t *testing.T) {
	obs := &fakeObserver{}
	sc := &fakeScroller{}
	tr := NewTracker(abEntries, fakeDoc{"a": 0, "b": 0}, obs, sc)

	tr.Close()
	tr.Close()
	assert.True(t, obs.disconnected)
	assert.Empty(t, tr.Watched())

	obs.fire(IntersectionEntry{ID: "a", Intersecting: true})
	assert.Empty(t, tr.ActiveID())
	assert.False(t, tr.Navigate("a"))
	assert.Empty(t, sc.calls)
}

func TestTracker_ChangeCallbackOnlyOnChange(t *testing.T) {
	obs := &fakeObserver{}
	var changes []string
	NewTracker(abEntries, fakeDoc{"a": 0, "b": 0}, obs, &fakeScroller{},
		OnActiveChange(func(id string) { changes = append(changes, id) }))

	obs.fire(IntersectionEntry{ID: "a", Intersecting: true})
	obs.fire(IntersectionEntry{ID: "a", Intersecting: true})
	obs.fire(IntersectionEntry{ID: "b", Intersecting: true})

	assert.Equal(t, []string{"a", "b"}, changes)
}

func TestMissing(t *testing.T) {
	entries := []Entry{{ID: "a"}, {ID: "x"}, {ID: "b"}}
	assert.Equal(t, []Entry{{ID: "x"}}, Missing(entries, fakeDoc{"a": 0, "b": 0}))
	assert.Nil(t, Missing(entries[:1], fakeDoc{"a": 0}))
}
