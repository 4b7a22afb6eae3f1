package view

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/dgallion1/folio/internal/content"
	"github.com/dgallion1/folio/internal/summary"
	"github.com/dgallion1/folio/internal/toc"
)

// ComingSoonPath is where unpublished studies link to.
const ComingSoonPath = "/case-studies/coming-soon"

// StudyHref returns the link target for a study card.
func StudyHref(s content.CaseStudy) string {
	if s.ComingSoon {
		return ComingSoonPath
	}
	return "/case-studies/" + s.Slug
}

// Home is the landing page.
func Home(studies []content.CaseStudy, components []content.Component) templ.Component {
	return component(func(p *printer) {
		p.raw(`<section class="hero space-y-4 py-12 text-center">`)
		p.raw(`<h1 class="text-4xl font-bold tracking-tight lg:text-5xl">Design, built and documented.</h1>`)
		p.raw(`<p class="mx-auto max-w-2xl text-xl text-muted-foreground">Case studies from shipped projects and the component library behind them.</p>`)
		p.raw(`<div class="flex justify-center gap-4"><a class="button" href="/case-studies">Read the case studies</a><a class="button button-outline" href="/docs/components">Browse components</a></div>`)
		p.raw(`</section>`)

		p.raw(`<section class="space-y-6"><h2 class="text-2xl font-bold tracking-tight">Case Studies</h2>`)
		limit := studies
		if len(limit) > 3 {
			limit = limit[:3]
		}
		studyCards(p, limit)
		p.raw(`</section>`)

		p.raw(`<section class="mt-12 space-y-6"><h2 class="text-2xl font-bold tracking-tight">Components</h2>`)
		componentCards(p, components)
		p.raw(`</section>`)
	})
}

// CaseStudies lists every study in display order.
func CaseStudies(studies []content.CaseStudy) templ.Component {
	return component(func(p *printer) {
		p.raw(`<div class="space-y-4"><h1 class="text-4xl font-bold tracking-tight">Case Studies</h1>`)
		p.raw(`<p class="text-xl text-muted-foreground">How we approach design and engineering problems, from research to rollout.</p></div>`)
		p.raw(`<hr class="my-8">`)
		studyCards(p, studies)
	})
}

func studyCards(p *printer, studies []content.CaseStudy) {
	p.raw(`<div class="study-cards grid gap-6 sm:grid-cols-2 lg:grid-cols-3">`)
	for _, s := range studies {
		p.raw(`<a class="study-card block rounded-xl border p-6"`)
		p.url("href", StudyHref(s))
		p.attr("data-slug", s.Slug)
		p.raw(`><div`)
		p.attr("class", "rounded-lg bg-linear-to-br "+s.Gradient+" aspect-video")
		p.raw(`></div>`)
		if s.ComingSoon {
			p.raw(`<span class="badge">Coming Soon</span>`)
		} else {
			p.raw(`<span class="badge">`)
			p.text(s.Industry)
			p.raw(`</span>`)
		}
		p.raw(`<h3 class="mt-3 text-lg font-semibold">`)
		p.text(s.Title)
		p.raw(`</h3><p class="text-sm text-muted-foreground">`)
		p.text(summary.Excerpt(s.Description, 30))
		p.raw(`</p>`)
		if !s.ComingSoon {
			p.raw(`<p class="reading-time text-xs text-muted-foreground">`)
			p.int(summary.ReadingMinutes(s.Text()))
			p.raw(` min read</p>`)
		}
		p.raw(`</a>`)
	}
	p.raw(`</div>`)
}

// StudyPage is everything the case-study detail page shows.
type StudyPage struct {
	Study          content.CaseStudy
	Groups         []content.ContentGroup
	TOC            []toc.Entry
	Prev, Next     *content.CaseStudy
	ReadingMinutes int
}

// CaseStudy is the detail page: hero, stats, a table of contents tracked
// by the page session, and the anchored content groups.
func CaseStudy(d StudyPage) templ.Component {
	s := d.Study
	return component(func(p *printer) {
		p.raw(`<div class="breadcrumb flex gap-2 text-sm text-muted-foreground"><a href="/case-studies">Case Studies</a><span>/</span><span class="text-foreground">`)
		p.text(s.Title)
		p.raw(`</span></div>`)

		p.raw(`<div class="hero space-y-4"><span class="badge">`)
		p.text(s.Industry)
		p.raw(`</span><h1 class="text-4xl font-bold tracking-tight lg:text-5xl">`)
		p.text(s.Title)
		p.raw(`</h1><p class="max-w-3xl text-xl text-muted-foreground">`)
		p.text(s.Description)
		p.raw(`</p><dl class="meta flex flex-wrap gap-6 text-sm">`)
		for _, m := range []struct{ label, value string }{
			{"Duration", s.Duration},
			{"Team Size", s.TeamSize},
			{"Client", s.Client},
			{"Reading Time", strconv.Itoa(d.ReadingMinutes) + " min"},
		} {
			p.raw(`<div><dt class="text-xs">`, m.label, `</dt><dd class="font-medium">`)
			p.text(m.value)
			p.raw(`</dd></div>`)
		}
		p.raw(`</dl></div>`)

		if s.Thumbnail != "" {
			p.raw(`<div`)
			p.attr("class", "featured rounded-xl bg-linear-to-br "+s.Gradient+" p-8")
			p.raw(`><img class="rounded-lg"`)
			p.url("src", s.Thumbnail)
			p.attr("alt", s.Title)
			p.raw(`></div>`)
		}

		if len(s.Stats) > 0 {
			p.raw(`<div class="stats grid gap-6 sm:grid-cols-2">`)
			for _, st := range s.Stats {
				p.raw(`<div class="rounded-lg border p-6"><p class="text-4xl font-bold text-primary">`)
				p.text(st.Value)
				p.raw(`</p><p class="text-sm uppercase tracking-wide text-muted-foreground">`)
				p.text(st.Label)
				p.raw(`</p></div>`)
			}
			p.raw(`</div>`)
		}

		p.raw(`<div class="study-body md:grid md:grid-cols-[240px_minmax(0,1fr)] md:gap-10">`)
		tocNav(p, d.TOC)
		p.raw(`<div class="study-content space-y-12">`)
		for _, g := range d.Groups {
			group(p, g)
		}
		if len(s.Tags) > 0 {
			p.raw(`<section class="tags space-y-4"><h3 class="text-lg font-semibold">Technologies Used</h3><div class="flex flex-wrap gap-2">`)
			for _, tag := range s.Tags {
				p.raw(`<span class="badge badge-secondary">`)
				p.text(tag)
				p.raw(`</span>`)
			}
			p.raw(`</div></section>`)
		}
		p.raw(`</div></div>`)

		p.raw(`<nav class="study-nav flex justify-between pt-4">`)
		if d.Prev != nil {
			p.raw(`<a rel="prev"`)
			p.url("href", StudyHref(*d.Prev))
			p.raw(`>← `)
			p.text(d.Prev.Title)
			p.raw(`</a>`)
		} else {
			p.raw(`<span></span>`)
		}
		if d.Next != nil {
			p.raw(`<a rel="next"`)
			p.url("href", StudyHref(*d.Next))
			p.raw(`>`)
			p.text(d.Next.Title)
			p.raw(` →</a>`)
		}
		p.raw(`</nav>`)
	})
}

func tocNav(p *printer, entries []toc.Entry) {
	p.raw(`<aside class="toc sticky top-20 hidden md:block"><p class="font-medium">On This Page</p><ul data-toc>`)
	for _, e := range entries {
		p.raw(`<li><a`)
		p.url("href", "#"+e.ID)
		p.attr("data-toc-link", e.ID)
		p.raw(` class="toc-link">`)
		p.text(e.Title)
		p.raw(`</a></li>`)
	}
	p.raw(`</ul></aside>`)
}

func group(p *printer, g content.ContentGroup) {
	p.raw(`<section`)
	p.attr("id", g.ID)
	p.raw(` class="scroll-mt-20 space-y-8" data-section><h2 class="text-2xl font-bold tracking-tight">`)
	p.text(g.Title)
	p.raw(`</h2><div class="space-y-6">`)
	for i, sec := range g.Sections {
		p.raw(`<div`)
		p.attr("id", sec.ID)
		p.raw(` class="scroll-mt-20"><h3 class="mb-3 text-lg font-semibold">`)
		p.text(sec.Title)
		p.raw(`</h3><div class="prose leading-relaxed text-muted-foreground">`)
		p.render(Markdown(sec.Content))
		p.raw(`</div>`)
		if len(sec.Items) > 0 {
			p.raw(`<ul class="items ml-1 space-y-2">`)
			for _, item := range sec.Items {
				p.raw(`<li class="flex gap-2 text-sm"><span class="text-primary">›</span><span>`)
				p.text(item)
				p.raw(`</span></li>`)
			}
			p.raw(`</ul>`)
		}
		if img := sec.Image; img != nil {
			p.raw(`<figure class="mb-4 mt-6"><img class="w-full rounded-lg border"`)
			p.url("src", img.Src)
			p.attr("alt", img.Alt)
			p.raw(` width="800" height="500">`)
			if img.Caption != "" {
				p.raw(`<figcaption class="mt-2 text-center text-sm italic text-muted-foreground">`)
				p.text(img.Caption)
				p.raw(`</figcaption>`)
			}
			p.raw(`</figure>`)
		}
		if i < len(g.Sections)-1 {
			p.raw(`<hr class="mt-6">`)
		}
		p.raw(`</div>`)
	}
	p.raw(`</div></section>`)
}

// ComingSoon is shown for studies that are still being written.
func ComingSoon() templ.Component {
	return component(func(p *printer) {
		p.raw(`<div class="coming-soon space-y-4 py-24 text-center"><h1 class="text-4xl font-bold tracking-tight">Coming Soon</h1>`)
		p.raw(`<p class="text-xl text-muted-foreground">This case study is currently being written. Check back soon for the full story.</p>`)
		p.raw(`<a class="button" href="/case-studies">Back to Case Studies</a></div>`)
	})
}

// NotFound is the 404 page body. what names the missing thing.
func NotFound(what string) templ.Component {
	return component(func(p *printer) {
		p.raw(`<div class="not-found space-y-4 py-24 text-center"><h1 class="text-4xl font-bold tracking-tight">Not Found</h1><p class="text-xl text-muted-foreground">`)
		if what == "" {
			what = "page"
		}
		p.text("The " + what + " you are looking for does not exist.")
		p.raw(`</p><a class="button" href="/">Go Home</a></div>`)
	})
}
