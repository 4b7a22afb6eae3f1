package session

import "github.com/dgallion1/folio/internal/toc"

// Client message types.
const (
	TypeLayout = "layout"
	TypeScroll = "scroll"
	TypeClick  = "click"
	TypeCopy   = "copy"
)

// Server message types.
const (
	TypeActive   = "active"
	TypeScrollTo = "scrollTo"
	TypeCopied   = "copied"
	TypeReload   = "reload"
)

// Section is a laid-out TOC target reported by the browser.
type Section struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// ClientMessage is anything the page script sends. Fields are populated
// according to Type.
type ClientMessage struct {
	Type string `json:"type"`

	// layout
	Viewport toc.Viewport `json:"viewport"`
	Sections []Section    `json:"sections,omitempty"`
	Entries  []toc.Entry  `json:"entries,omitempty"`

	// scroll
	ScrollY float64 `json:"scrollY,omitempty"`
	Height  float64 `json:"height,omitempty"`

	// click
	ID string `json:"id,omitempty"`

	// copy
	Block string `json:"block,omitempty"`
}

// Message is anything the server pushes to the page.
type Message struct {
	Type     string       `json:"type"`
	ID       string       `json:"id,omitempty"`
	Top      *float64     `json:"top,omitempty"`
	Behavior toc.Behavior `json:"behavior,omitempty"`
	Block    string       `json:"block,omitempty"`
	Copied   *bool        `json:"copied,omitempty"`
}

// Active reports the new active TOC entry.
func Active(id string) Message { return Message{Type: TypeActive, ID: id} }

// ScrollTo asks the page to scroll.
func ScrollTo(top float64, behavior toc.Behavior) Message {
	return Message{Type: TypeScrollTo, Top: &top, Behavior: behavior}
}

// Copied reports a code block's copy-confirmation state.
func Copied(block string, copied bool) Message {
	return Message{Type: TypeCopied, Block: block, Copied: &copied}
}

// Reload tells the page its content changed.
func Reload() Message { return Message{Type: TypeReload} }
