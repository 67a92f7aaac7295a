package pages

import (
	"context"

	"github.com/a-h/templ"
)

// FormData is the add-character form state. Values are kept as typed so a
// failed submission can be shown back unchanged.
type FormData struct {
	Name       string
	Initiative string
	Position   string
	Errors     map[string]string // field -> message key
	Inline     bool              // loaded into the tracker page by htmx
}

func (f FormData) fieldError(c Chrome, field string) string {
	if key, ok := f.Errors[field]; ok {
		return c.T(key)
	}
	return ""
}

// AddCharacterPage is the standalone add form document.
func AddCharacterPage(c Chrome, f FormData) templ.Component {
	body := component(func(ctx context.Context, h *html) {
		h.raw(`<header class="page-header"><h1>`)
		h.text(c.T("form.title"))
		h.raw(`</h1></header>`)
		h.child(ctx, AddCharacterForm(c, f))
	})
	return Layout(c, c.T("form.title"), body)
}

// AddCharacterForm is the add form. Inline forms submit through htmx and
// replace the tracker; validation failures re-render the form in place.
func AddCharacterForm(c Chrome, f FormData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<form id="add-character" class="character-form" method="post" action="/characters"`)
		if f.Inline {
			h.raw(` hx-post="/characters"`)
			h.attr("hx-target", "#"+TrackerID)
			h.raw(` hx-swap="outerHTML"`)
		}
		h.raw(">")

		field(h, c, f, "name", "text", f.Name, c.T("form.name"), ` required maxlength="100"`+` placeholder="`+templ.EscapeString(c.T("form.name_placeholder"))+`"`)
		field(h, c, f, "initiative", "number", f.Initiative, c.T("form.initiative"), ` min="0"`)
		field(h, c, f, "position", "number", f.Position, c.T("form.position"), ` min="0"`)

		h.raw(`<div class="form-actions"><button type="submit" class="button primary">`)
		h.text(c.T("form.submit"))
		h.raw(`</button><a class="button" href="/tracker"`)
		if f.Inline {
			h.raw(` hx-get="/tracker/add/cancel"`)
			h.attr("hx-target", "#"+AddFormSlotID)
			h.raw(` hx-swap="innerHTML"`)
		}
		h.raw(">")
		h.text(c.T("form.cancel"))
		h.raw(`</a></div></form>`)
	})
}

func field(h *html, c Chrome, f FormData, name, kind, value, label, extra string) {
	id := "field-" + name
	msg := f.fieldError(c, name)
	h.raw(`<div class="field`)
	if msg != "" {
		h.raw(` has-error`)
	}
	h.raw(`"><label`)
	h.attr("for", id)
	h.raw(">")
	h.text(label)
	h.raw("</label><input")
	h.attr("id", id)
	h.attr("name", name)
	h.attr("type", kind)
	h.attr("value", value)
	h.raw(extra)
	if msg != "" {
		h.attr("aria-describedby", id+"-error")
		h.raw(` aria-invalid="true"`)
	}
	h.raw(">")
	if msg != "" {
		h.raw(`<p class="field-error"`)
		h.attr("id", id+"-error")
		h.raw(">")
		h.text(msg)
		h.raw("</p>")
	}
	h.raw("</div>")
}

// AddSuccess swaps in the updated tracker and clears the inline form slot out
// of band.
func AddSuccess(c Chrome, d TrackerData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.child(ctx, TrackerPartial(c, d))
		h.raw("<div")
		h.attr("id", AddFormSlotID)
		h.raw(` hx-swap-oob="true"></div>`)
	})
}
