package view

import (
	"github.com/a-h/templ"
)

// Page carries per-page head and shell settings.
type Page struct {
	Title       string
	Description string
	Path        string
	// Live opens the page session socket for TOC tracking and copy state.
	Live bool
}

var navLinks = []struct{ Href, Label string }{
	{"/", "Home"},
	{"/case-studies", "Case Studies"},
	{"/docs", "Docs"},
	{"/docs/components", "Components"},
}

// Layout wraps body in the site shell.
func Layout(page Page, body templ.Component) templ.Component {
	return component(func(p *printer) {
		title := "folio"
		if page.Title != "" {
			title = page.Title + " · folio"
		}
		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.raw(`<title>`)
		p.text(title)
		p.raw(`</title>`)
		if page.Description != "" {
			p.raw(`<meta name="description"`)
			p.attr("content", page.Description)
			p.raw(`>`)
		}
		p.raw(`<link rel="stylesheet" href="/static/site.css">`)
		p.raw(`<script src="/static/site.js" defer></script></head>`)
		p.raw(`<body class="min-h-screen bg-background antialiased"`)
		if page.Live {
			p.raw(` data-live="true"`)
		}
		p.raw(`>`)

		p.raw(`<header class="site-header sticky top-0 z-50 h-16 border-b"><nav class="container flex h-16 items-center gap-6">`)
		for _, l := range navLinks {
			p.raw(`<a`)
			p.url("href", l.Href)
			if l.Href == page.Path {
				p.raw(` aria-current="page"`)
			}
			p.raw(`>`)
			p.text(l.Label)
			p.raw(`</a>`)
		}
		p.raw(`</nav></header>`)

		p.raw(`<main class="container py-10">`)
		p.render(body)
		p.raw(`</main>`)

		p.raw(`<footer class="site-footer border-t py-6 text-sm text-muted-foreground"><div class="container">Built with Go and templ.</div></footer>`)
		p.raw(`</body></html>`)
	})
}
