package view

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/dgallion1/folio/internal/content"
	"github.com/dgallion1/folio/internal/doctree"
	"github.com/dgallion1/folio/internal/highlight"
)

// ComponentHref returns the docs page for c.
func ComponentHref(c content.Component) string {
	return "/docs/components/" + c.Slug
}

// DocsIndex is the documentation landing page.
func DocsIndex(components []content.Component) templ.Component {
	return component(func(p *printer) {
		p.raw(`<div class="space-y-4"><h1 class="text-4xl font-bold tracking-tight">Introduction</h1>`)
		p.raw(`<p class="text-xl text-muted-foreground">Beautifully designed components that you can copy and paste into your apps.</p></div>`)
		p.raw(`<section class="mt-8 space-y-4"><h2 id="installation" class="text-2xl font-semibold tracking-tight">Installation</h2>`)
		p.render(CodeBlock("init", "npx shadcn@latest init", highlight.DefaultTheme))
		p.raw(`</section><section class="mt-8 space-y-4"><h2 id="components" class="text-2xl font-semibold tracking-tight">Components</h2>`)
		componentCards(p, components)
		p.raw(`</section>`)
	})
}

// ComponentsIndex lists every component.
func ComponentsIndex(components []content.Component) templ.Component {
	return component(func(p *printer) {
		p.raw(`<div class="breadcrumb flex gap-2 text-sm text-muted-foreground"><a href="/docs">Docs</a><span>/</span><span class="text-foreground">Components</span></div>`)
		p.raw(`<div class="space-y-4"><h1 class="text-4xl font-bold tracking-tight">Components</h1>`)
		p.raw(`<p class="text-xl text-muted-foreground">Here you can find all the components available in the library. We are working on adding more components.</p></div><hr class="my-8">`)
		componentCards(p, components)
	})
}

func componentCards(p *printer, components []content.Component) {
	p.raw(`<div class="component-cards grid gap-4 sm:grid-cols-2 lg:grid-cols-3">`)
	for _, c := range components {
		p.raw(`<a class="component-card block rounded-lg border p-4"`)
		p.url("href", ComponentHref(c))
		p.raw(`><h3 class="font-semibold">`)
		p.text(c.Name)
		p.raw(`</h3><p class="text-sm text-muted-foreground">`)
		p.text(c.Description)
		p.raw(`</p></a>`)
	}
	p.raw(`</div>`)
}

// ComponentPage documents one component with highlighted, copyable code.
func ComponentPage(c content.Component, prev, next *content.Component) templ.Component {
	return component(func(p *printer) {
		p.raw(`<div class="breadcrumb flex gap-2 text-sm text-muted-foreground"><a href="/docs">Docs</a><span>/</span><a href="/docs/components">Components</a><span>/</span><span class="text-foreground">`)
		p.text(c.Name)
		p.raw(`</span></div>`)
		p.raw(`<div class="space-y-2"><h1 class="text-4xl font-bold tracking-tight">`)
		p.text(c.Name)
		p.raw(`</h1><p class="text-xl text-muted-foreground">`)
		p.text(c.Description)
		p.raw(`</p></div>`)

		if c.Install != "" {
			p.raw(`<section class="mt-8 space-y-4"><h2 id="installation" class="text-2xl font-semibold tracking-tight">Installation</h2>`)
			p.render(CodeBlock("install", c.Install, highlight.DefaultTheme))
			p.raw(`</section>`)
		}
		if len(c.Usage) > 0 {
			p.raw(`<section class="mt-8 space-y-4"><h2 id="usage" class="text-2xl font-semibold tracking-tight">Usage</h2>`)
			for i, code := range c.Usage {
				p.render(CodeBlock("usage-"+strconv.Itoa(i), code, highlight.DefaultTheme))
			}
			p.raw(`</section>`)
		}
		if len(c.Examples) > 0 {
			p.raw(`<section class="mt-8 space-y-6"><h2 id="examples" class="text-2xl font-semibold tracking-tight">Examples</h2>`)
			for i, ex := range c.Examples {
				p.raw(`<div class="example space-y-4"><h3`)
				p.attr("id", "example-"+doctree.Slugify(ex.Title))
				p.raw(` class="text-xl font-semibold tracking-tight">`)
				p.text(ex.Title)
				p.raw(`</h3>`)
				if ex.Description != "" {
					p.raw(`<p class="text-muted-foreground">`)
					p.text(ex.Description)
					p.raw(`</p>`)
				}
				p.render(CodeBlock("example-"+strconv.Itoa(i), ex.Code, highlight.DefaultTheme))
				p.raw(`</div>`)
			}
			p.raw(`</section>`)
		}

		p.raw(`<nav class="component-nav flex justify-between pt-4">`)
		if prev != nil {
			p.raw(`<a rel="prev"`)
			p.url("href", ComponentHref(*prev))
			p.raw(`>← `)
			p.text(prev.Name)
			p.raw(`</a>`)
		} else {
			p.raw(`<a href="/docs/components">← Components</a>`)
		}
		if next != nil {
			p.raw(`<a rel="next"`)
			p.url("href", ComponentHref(*next))
			p.raw(`>`)
			p.text(next.Name)
			p.raw(` →</a>`)
		}
		p.raw(`</nav>`)
	})
}
