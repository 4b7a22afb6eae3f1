package toc

import "sync"

// Length is a margin component in pixels or in percent of the viewport height.
type Length struct {
	Value   float64
	Percent bool
}

// Px returns a pixel length.
func Px(v float64) Length { return Length{Value: v} }

// Percent returns a length relative to the viewport height.
func Percent(v float64) Length { return Length{Value: v, Percent: true} }

func (l Length) resolve(viewportHeight float64) float64 {
	if l.Percent {
		return viewportHeight * l.Value / 100
	}
	return l.Value
}

// Margin grows (positive) or shrinks (negative) the root area vertically.
type Margin struct {
	Top    Length
	Bottom Length
}

// DefaultMargin keeps a section active while its top is in the band between
// 80px below the viewport top and 20% of the viewport height.
var DefaultMargin = Margin{Top: Px(-80), Bottom: Percent(-80)}

// Rect is a vertical span in document coordinates.
type Rect struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Bottom returns the rect's lower edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Viewport is the visible window onto the document.
type Viewport struct {
	ScrollY float64 `json:"scrollY"`
	Height  float64 `json:"height"`
	// DocumentHeight bounds scrolling; zero means unknown.
	DocumentHeight float64 `json:"documentHeight,omitempty"`
}

// GeometryObserver is a headless host for the Tracker. It computes
// intersections from reported section rectangles and viewport position, so
// it serves as Observer, Document and Scroller at once.
type GeometryObserver struct {
	margin   Margin
	onScroll func(top float64, behavior Behavior)

	mu           sync.Mutex
	viewport     Viewport
	sections     map[string]Rect
	observed     []string
	state        map[string]bool
	callback     func([]IntersectionEntry)
	disconnected bool
}

// NewGeometryObserver returns an observer using margin. onScroll, if
// non-nil, is told about every ScrollTo so a remote client can perform it.
func NewGeometryObserver(margin Margin, onScroll func(top float64, behavior Behavior)) *GeometryObserver {
	return &GeometryObserver{
		margin:   margin,
		onScroll: onScroll,
		sections: make(map[string]Rect),
		state:    make(map[string]bool),
	}
}

// SetLayout replaces the known section rectangles and viewport, then
// delivers any intersection changes.
func (g *GeometryObserver) SetLayout(vp Viewport, sections map[string]Rect) {
	g.mu.Lock()
	g.viewport = vp
	g.sections = make(map[string]Rect, len(sections))
	for id, r := range sections {
		g.sections[id] = r
	}
	g.mu.Unlock()
	g.Refresh()
}

// Scroll records a new scroll position (and viewport height, when positive)
// and delivers any intersection changes.
func (g *GeometryObserver) Scroll(scrollY, height float64) {
	g.mu.Lock()
	g.viewport.ScrollY = scrollY
	if height > 0 {
		g.viewport.Height = height
	}
	g.mu.Unlock()
	g.Refresh()
}

// Refresh recomputes intersections. Newly observed elements are always
// reported once; afterwards only state transitions are reported.
func (g *GeometryObserver) Refresh() {
	g.mu.Lock()
	if g.disconnected || g.callback == nil {
		g.mu.Unlock()
		return
	}
	rootTop, rootBottom := g.rootLocked()
	var batch []IntersectionEntry
	for _, id := range g.observed {
		r, ok := g.sections[id]
		in := ok && rootTop <= rootBottom && r.Top <= rootBottom && r.Bottom() >= rootTop
		prev, seen := g.state[id]
		if seen && prev == in {
			continue
		}
		g.state[id] = in
		batch = append(batch, IntersectionEntry{ID: id, Intersecting: in})
	}
	fn := g.callback
	g.mu.Unlock()

	if len(batch) > 0 {
		fn(batch)
	}
}

// rootLocked returns the root area in document coordinates.
func (g *GeometryObserver) rootLocked() (top, bottom float64) {
	vp := g.viewport
	top = vp.ScrollY - g.margin.Top.resolve(vp.Height)
	bottom = vp.ScrollY + vp.Height + g.margin.Bottom.resolve(vp.Height)
	return top, bottom
}

// Observe implements Observer.
func (g *GeometryObserver) Observe(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.disconnected {
		return
	}
	for _, o := range g.observed {
		if o == id {
			return
		}
	}
	g.observed = append(g.observed, id)
}

// Unobserve implements Observer.
func (g *GeometryObserver) Unobserve(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, o := range g.observed {
		if o == id {
			g.observed = append(g.observed[:i], g.observed[i+1:]...)
			break
		}
	}
	delete(g.state, id)
}

// OnIntersect implements Observer.
func (g *GeometryObserver) OnIntersect(fn func([]IntersectionEntry)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.callback = fn
}

// Disconnect implements Observer.
func (g *GeometryObserver) Disconnect() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.disconnected = true
	g.observed = nil
	g.state = make(map[string]bool)
	g.callback = nil
}

// Observed returns the ids currently being watched.
func (g *GeometryObserver) Observed() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.observed...)
}

type geometryElement struct {
	rect    Rect
	scrollY float64
}

func (e geometryElement) BoundingTop() float64 { return e.rect.Top - e.scrollY }

// Element implements Document.
func (g *GeometryObserver) Element(id string) (Element, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.sections[id]
	if !ok {
		return nil, false
	}
	return geometryElement{rect: r, scrollY: g.viewport.ScrollY}, true
}

// ScrollY implements Scroller.
func (g *GeometryObserver) ScrollY() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewport.ScrollY
}

// ScrollTo implements Scroller. The target is clamped to the scrollable
// range and forwarded to the onScroll hook. Instant scrolls move the
// viewport right away; smooth scrolls wait for the host to report positions
// through Scroll.
func (g *GeometryObserver) ScrollTo(top float64, behavior Behavior) {
	g.mu.Lock()
	top = g.clampLocked(top)
	if behavior == Instant {
		g.viewport.ScrollY = top
	}
	g.mu.Unlock()

	if g.onScroll != nil {
		g.onScroll(top, behavior)
	}
	if behavior == Instant {
		g.Refresh()
	}
}

func (g *GeometryObserver) clampLocked(top float64) float64 {
	if limit := g.viewport.DocumentHeight - g.viewport.Height; g.viewport.DocumentHeight > 0 && top > limit {
		top = limit
	}
	if top < 0 {
		top = 0
	}
	return top
}
