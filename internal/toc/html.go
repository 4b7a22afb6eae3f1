package toc

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// HTMLDocument answers element lookups against rendered markup. It has no
// layout, so every element reports a BoundingTop of zero.
type HTMLDocument struct {
	ids map[string]struct{}
}

// NewHTMLDocument indexes every element carrying an id attribute.
func NewHTMLDocument(r io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	d := &HTMLDocument{ids: make(map[string]struct{})}
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok && id != "" {
			d.ids[id] = struct{}{}
		}
	})
	return d, nil
}

type staticElement struct{}

func (staticElement) BoundingTop() float64 { return 0 }

// Element implements Document.
func (d *HTMLDocument) Element(id string) (Element, bool) {
	if _, ok := d.ids[id]; !ok {
		return nil, false
	}
	return staticElement{}, true
}

// Len returns the number of distinct ids in the page.
func (d *HTMLDocument) Len() int { return len(d.ids) }
