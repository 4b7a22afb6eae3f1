// Package view renders the site's pages as templ components.
package view

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
)

// printer writes HTML and remembers the first error.
type printer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (p *printer) raw(parts ...string) {
	for _, s := range parts {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (p *printer) attr(name, value string) {
	p.raw(` `, name, `="`, templ.EscapeString(value), `"`)
}

// url writes a link attribute. Unsafe schemes such as javascript: are
// replaced by templ's sanitized placeholder.
func (p *printer) url(name, u string) {
	p.attr(name, string(templ.URL(u)))
}

func (p *printer) int(n int) {
	p.raw(strconv.Itoa(n))
}

func (p *printer) render(c templ.Component) {
	if p.err == nil && c != nil {
		p.err = c.Render(p.ctx, p.w)
	}
}

// component adapts a printing function to templ.Component.
func component(fn func(p *printer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{ctx: ctx, w: w}
		fn(p)
		return p.err
	})
}

var md = goldmark.New()

// Markdown renders trusted markdown. Raw HTML in the source is dropped.
func Markdown(src string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := md.Convert([]byte(src), &buf); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Render renders c to a byte slice.
func Render(ctx context.Context, c templ.Component) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
