package pages

import (
	"context"

	"github.com/a-h/templ"
)

// Landing is the home page.
func Landing(c Chrome) templ.Component {
	body := component(func(ctx context.Context, h *html) {
		h.raw(`<section class="hero"><h1>`)
		h.text(c.T("app.name"))
		h.raw(`</h1><p class="tagline">`)
		h.text(c.T("landing.tagline"))
		h.raw(`</p></section><section class="apps"><article class="app-card"><h2>`)
		h.text(c.T("nav.tracker"))
		h.raw(`</h2><p>`)
		h.text(c.T("landing.tracker_blurb"))
		h.raw(`</p><a class="button" href="/tracker">`)
		h.text(c.T("landing.open_tracker"))
		h.raw(`</a></article></section>`)
	})
	return Layout(c, c.T("landing.title"), body)
}
