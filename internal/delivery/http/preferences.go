package http

import (
	"net/http"

	"github.com/mmuslimabdulj/tabletop-utils/internal/htmx"
	"github.com/mmuslimabdulj/tabletop-utils/internal/session"
)

// HandleSetTheme stores the theme preference. An empty theme toggles the
// current one.
func (h *Handler) HandleSetTheme(w http.ResponseWriter, r *http.Request) {
	rq := h.begin(r)
	fields, err := readFields(w, r, "theme", "next")
	if err != nil {
		h.writeError(w, r, rq, err)
		return
	}

	requested := fields["theme"]
	if requested == "" {
		requested = string(rq.prefs.Theme.Toggle())
	}
	theme, _ := h.sessions.SetTheme(session.Ensure(r.Context()), requested)

	switch rq.shape {
	case htmx.JSON:
		htmx.WriteJSON(w, http.StatusOK, map[string]string{"theme": string(theme)})
	case htmx.Fragment:
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusNoContent)
	default:
		htmx.Redirect(w, r, safeNext(fields["next"], "/"))
	}
}

// HandleSetLanguage stores the language preference and returns to next.
// Unsupported codes fall back to the default locale.
func (h *Handler) HandleSetLanguage(w http.ResponseWriter, r *http.Request) {
	tag := h.locales.Normalize(r.PathValue("lang"))
	h.sessions.SetLanguage(session.Ensure(r.Context()), tag.String())
	htmx.Redirect(w, r, safeNext(r.URL.Query().Get("next"), "/"))
}
