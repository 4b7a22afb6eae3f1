// Package toc keeps a table of contents in sync with the reader's scroll
// position. The Tracker owns the "active section" state; hosts supply the
// intersection primitive, element lookup and scrolling through the Observer,
// Document and Scroller interfaces.
package toc

// Entry is one table-of-contents link. Entries are kept in document order.
type Entry struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// IntersectionEntry reports that an observed element entered or left the
// root area.
type IntersectionEntry struct {
	ID           string
	Intersecting bool
}

// Observer is the host's viewport-intersection primitive.
type Observer interface {
	Observe(id string)
	Unobserve(id string)
	// OnIntersect installs the callback that receives batches of entries in
	// the order the host reports them.
	OnIntersect(fn func([]IntersectionEntry))
	// Disconnect stops observing every element. The callback is not invoked
	// afterwards.
	Disconnect()
}

// Element is a laid-out section.
type Element interface {
	// BoundingTop is the element's top edge relative to the viewport.
	BoundingTop() float64
}

// Document looks up section elements by id.
type Document interface {
	Element(id string) (Element, bool)
}

// Behavior selects how a scroll is performed.
type Behavior string

const (
	Smooth  Behavior = "smooth"
	Instant Behavior = "instant"
)

// Scroller reads and moves the viewport.
type Scroller interface {
	ScrollY() float64
	ScrollTo(top float64, behavior Behavior)
}

// Missing returns the entries whose anchors do not exist in doc.
func Missing(entries []Entry, doc Document) []Entry {
	var out []Entry
	for _, e := range entries {
		if _, ok := doc.Element(e.ID); !ok {
			out = append(out, e)
		}
	}
	return out
}
