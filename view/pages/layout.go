package pages

import (
	"context"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/mmuslimabdulj/tabletop-utils/internal/domain"
	"github.com/mmuslimabdulj/tabletop-utils/internal/i18n"
	"golang.org/x/text/message"
)

// Section identifies the active navigation entry.
type Section string

const (
	SectionHome    Section = "home"
	SectionTracker Section = "tracker"
)

// Chrome is the per-request data every page shares.
type Chrome struct {
	Printer   *message.Printer
	Lang      string
	Theme     domain.Theme
	Languages []i18n.Option
	Path      string // current path, used as the language switch return target
	Section   Section
	Flashes   []domain.Flash
}

// T translates key with the request printer.
func (c Chrome) T(key string, args ...any) string {
	if c.Printer == nil {
		return key
	}
	return c.Printer.Sprintf(key, args...)
}

// Layout wraps body in the site document.
func Layout(c Chrome, title string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", c.Lang)
		h.attr("data-theme", string(c.Theme))
		h.raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		h.text(title)
		h.raw("</title>")
		h.raw(`<link rel="stylesheet" href="/static/css/app.css">`)
		// 404 and 422 carry a re-rendered fragment, so htmx must swap them.
		h.raw(`<meta name="htmx-config" content='{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"404","swap":true,"error":true},{"code":"422","swap":true,"error":true},{"code":"[45]..","swap":false,"error":true}]}'>`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>`)
		h.raw("</head><body")
		h.attr("class", "theme-"+string(c.Theme))
		h.raw(">")
		h.child(ctx, nav(c))
		h.raw(`<main id="content">`)
		h.child(ctx, Flashes(c.Flashes))
		h.child(ctx, body)
		h.raw("</main></body></html>")
	})
}

func nav(c Chrome) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<nav class="navbar"><a class="brand" href="/">`)
		h.text(c.T("app.name"))
		h.raw(`</a><ul class="nav-apps">`)
		navLink(h, "/", c.T("nav.home"), c.Section == SectionHome)
		navLink(h, "/tracker", c.T("nav.tracker"), c.Section == SectionTracker)
		h.raw(`</ul>`)

		next := c.Theme.Toggle()
		h.raw(`<form class="theme-toggle" method="post" action="/preferences/theme">`)
		h.raw(`<input type="hidden" name="theme"`)
		h.attr("value", string(next))
		h.raw(`><input type="hidden" name="next"`)
		h.attr("value", c.Path)
		h.raw(`><button type="submit"`)
		h.attr("title", c.T("nav.theme_toggle"))
		h.raw(">")
		h.text(c.T("theme." + string(next)))
		h.raw(`</button></form>`)

		h.raw(`<ul class="languages"`)
		h.attr("aria-label", c.T("nav.language"))
		h.raw(">")
		for _, option := range c.Languages {
			h.raw("<li><a")
			h.attr("href", LanguageURL(option.Code, c.Path))
			h.attr("hreflang", option.Code)
			if option.Active {
				h.raw(` aria-current="true" class="active"`)
			}
			h.raw(">")
			h.text(option.Label)
			h.raw("</a></li>")
		}
		h.raw("</ul></nav>")
	})
}

func navLink(h *html, href, label string, active bool) {
	h.raw("<li><a")
	h.attr("href", href)
	if active {
		h.raw(` aria-current="page" class="active"`)
	}
	h.raw(">")
	h.text(label)
	h.raw("</a></li>")
}

// LanguageURL links to the language switch with a return path.
func LanguageURL(code, next string) string {
	u := url.URL{Path: "/set-language/" + code}
	if next != "" {
		u.RawQuery = url.Values{"next": {next}}.Encode()
	}
	return u.String()
}

// Flashes renders queued notices.
func Flashes(flashes []domain.Flash) templ.Component {
	return component(func(ctx context.Context, h *html) {
		if len(flashes) == 0 {
			return
		}
		h.raw(`<ul class="flashes" role="status">`)
		for _, f := range flashes {
			h.raw("<li")
			h.attr("class", "flash flash-"+string(f.Level))
			h.raw(">")
			h.text(f.Text)
			h.raw("</li>")
		}
		h.raw("</ul>")
	})
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
