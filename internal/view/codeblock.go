package view

import (
	"github.com/a-h/templ"
	"github.com/dgallion1/folio/internal/highlight"
)

// CodeBlock renders highlighted code with a line-number gutter and a copy
// button. id must be unique within the page; copy events refer to it.
func CodeBlock(id, code string, theme highlight.Theme) templ.Component {
	if theme == nil {
		theme = highlight.DefaultTheme
	}
	lines := highlight.Lines(code)
	return component(func(p *printer) {
		p.raw(`<div class="code-block group relative rounded-lg border bg-zinc-950"`)
		p.attr("data-code-block", id)
		p.raw(`><button type="button" class="copy-button absolute right-3 top-3 rounded-md px-2 py-1 text-xs"`)
		p.attr("data-copy", id)
		p.raw(` data-copied="false" aria-label="Copy code">Copy</button>`)
		p.raw(`<pre class="overflow-x-auto p-4 text-sm leading-relaxed"><code>`)
		for _, line := range lines {
			p.raw(`<span class="line flex">`)
			p.raw(`<span class="line-number mr-4 w-6 shrink-0 select-none text-right text-zinc-500" aria-hidden="true">`)
			p.int(line.Number)
			p.raw(`</span><span class="line-content">`)
			for _, tok := range line.Tokens {
				p.raw(`<span`)
				p.attr("class", theme.Class(tok.Kind))
				p.attr("data-kind", tok.Kind.String())
				p.raw(`>`)
				p.text(tok.Text)
				p.raw(`</span>`)
			}
			p.raw("</span></span>\n")
		}
		p.raw(`</code></pre></div>`)
	})
}
