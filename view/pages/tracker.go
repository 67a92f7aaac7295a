package pages

import (
	"context"

	"github.com/a-h/templ"
	"github.com/mmuslimabdulj/tabletop-utils/internal/domain"
)

// TrackerID is the element htmx swaps on tracker mutations.
const TrackerID = "tracker"

// AddFormSlotID is the element the inline add form is loaded into.
const AddFormSlotID = "add-form"

// TrackerData is the turn order as shown to the user.
type TrackerData struct {
	Characters []domain.Character
	Current    *domain.Character
}

// TrackerPage is the full tracker document.
func TrackerPage(c Chrome, d TrackerData) templ.Component {
	inner := c
	inner.Flashes = nil
	body := component(func(ctx context.Context, h *html) {
		h.raw(`<header class="page-header"><h1>`)
		h.text(c.T("tracker.title"))
		h.raw(`</h1><a class="button" href="/tracker/add" hx-get="/tracker/add"`)
		h.attr("hx-target", "#"+AddFormSlotID)
		h.raw(` hx-swap="innerHTML">`)
		h.text(c.T("tracker.add"))
		h.raw(`</a></header><div`)
		h.attr("id", AddFormSlotID)
		h.raw(`></div>`)
		h.child(ctx, TrackerPartial(inner, d))
	})
	return Layout(c, c.T("tracker.title"), body)
}

// TrackerPartial is the swappable tracker section: notices, the current turn
// banner and the ordered table, or the empty state.
func TrackerPartial(c Chrome, d TrackerData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw("<section")
		h.attr("id", TrackerID)
		h.raw(` class="tracker">`)
		h.child(ctx, Flashes(c.Flashes))

		if len(d.Characters) == 0 {
			h.raw(`<p class="empty-state">`)
			h.text(c.T("tracker.empty"))
			h.raw(`</p></section>`)
			return
		}

		if d.Current != nil {
			h.raw(`<div class="current-turn"><h2>`)
			h.text(c.T("tracker.current_turn"))
			h.raw(`</h2><p class="current-name">`)
			h.text(d.Current.Name)
			h.raw(`</p>`)
			h.child(ctx, actionForm(
				"/characters/"+d.Current.ID+"/advance", "", "", c.T("tracker.next_turn"), "button primary", "",
			))
			h.raw(`</div>`)
		}

		h.raw(`<table class="turn-order"><thead><tr><th>`)
		h.text(c.T("tracker.col_position"))
		h.raw(`</th><th>`)
		h.text(c.T("tracker.col_name"))
		h.raw(`</th><th>`)
		h.text(c.T("tracker.col_initiative"))
		h.raw(`</th><th>`)
		h.text(c.T("tracker.col_actions"))
		h.raw(`</th></tr></thead><tbody>`)
		for _, ch := range d.Characters {
			h.child(ctx, characterRow(c, ch, d.Current != nil && d.Current.ID == ch.ID))
		}
		h.raw(`</tbody></table></section>`)
	})
}

func characterRow(c Chrome, ch domain.Character, current bool) templ.Component {
	return component(func(ctx context.Context, h *html) {
		base := "/characters/" + ch.ID
		h.raw("<tr")
		h.attr("id", "character-"+ch.ID)
		if current {
			h.raw(` class="current" aria-current="step"`)
		}
		h.raw("><td>")

		h.raw(`<form class="inline" method="post"`)
		h.attr("action", base+"/position")
		h.attr("hx-post", base+"/position")
		h.attr("hx-target", "#"+TrackerID)
		h.raw(` hx-swap="outerHTML"><input type="number" name="position" min="0"`)
		h.attr("value", itoa(ch.Position))
		h.attr("aria-label", c.T("tracker.col_position"))
		h.raw(`><button type="submit">`)
		h.text(c.T("tracker.set_position"))
		h.raw(`</button></form></td><td class="name">`)
		h.text(ch.Name)
		h.raw(`</td><td class="initiative">`)
		h.text(itoa(ch.Initiative))
		h.raw(`</td><td class="actions">`)

		h.child(ctx, actionForm(base+"/nudge", "direction", string(domain.DirectionDecrease), c.T("tracker.move_up"), "button", ""))
		h.child(ctx, actionForm(base+"/nudge", "direction", string(domain.DirectionIncrease), c.T("tracker.move_down"), "button", ""))
		h.child(ctx, actionForm(base+"/delete", "", "", c.T("tracker.delete"), "button danger", c.T("tracker.delete_confirm")))
		h.raw(`</td></tr>`)
	})
}

// actionForm is a one-button POST form that htmx upgrades to a tracker swap.
func actionForm(action, field, value, label, class, confirm string) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<form class="inline" method="post"`)
		h.attr("action", action)
		h.attr("hx-post", action)
		h.attr("hx-target", "#"+TrackerID)
		h.raw(` hx-swap="outerHTML"`)
		if confirm != "" {
			h.attr("hx-confirm", confirm)
		}
		h.raw(">")
		if field != "" {
			h.raw(`<input type="hidden"`)
			h.attr("name", field)
			h.attr("value", value)
			h.raw(">")
		}
		h.raw(`<button type="submit"`)
		h.attr("class", class)
		h.raw(">")
		h.text(label)
		h.raw(`</button></form>`)
	})
}
