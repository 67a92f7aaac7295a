package http

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/mmuslimabdulj/tabletop-utils/internal/domain"
	"github.com/mmuslimabdulj/tabletop-utils/internal/htmx"
	"github.com/mmuslimabdulj/tabletop-utils/internal/i18n"
	"github.com/mmuslimabdulj/tabletop-utils/internal/session"
	"github.com/mmuslimabdulj/tabletop-utils/internal/usecase"
	"github.com/mmuslimabdulj/tabletop-utils/view/pages"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Handler serves the tracker and preference routes.
type Handler struct {
	tracker  *usecase.Tracker
	sessions *session.Store
	locales  *i18n.Locales
}

// NewHandler creates a Handler over the tracker, session and locale stores.
func NewHandler(tracker *usecase.Tracker, sessions *session.Store, locales *i18n.Locales) *Handler {
	return &Handler{
		tracker:  tracker,
		sessions: sessions,
		locales:  locales,
	}
}

// Register mounts every route on mux. Tracker mutations are wrapped with
// limit when it is non-nil.
func (h *Handler) Register(mux *http.ServeMux, limit func(http.Handler) http.Handler) {
	mutate := func(fn http.HandlerFunc) http.Handler {
		if limit == nil {
			return fn
		}
		return limit(fn)
	}

	// Pages
	mux.HandleFunc("GET /{$}", h.HandleLanding)
	mux.HandleFunc("GET /tracker", h.HandleTracker)
	mux.HandleFunc("GET /tracker/add", h.HandleAddForm)
	mux.HandleFunc("GET /tracker/add/cancel", h.HandleAddCancel)
	mux.HandleFunc("GET /healthz", h.HandleHealth)

	// Characters
	mux.HandleFunc("GET /characters", h.HandleListCharacters)
	mux.Handle("POST /characters", mutate(h.HandleCreateCharacter))
	mux.Handle("DELETE /characters/{id}", mutate(h.HandleDeleteCharacter))
	mux.Handle("POST /characters/{id}/delete", mutate(h.HandleDeleteCharacter))
	mux.Handle("POST /characters/{id}/advance", mutate(h.HandleAdvanceTurn))
	mux.Handle("POST /characters/{id}/position", mutate(h.HandleReorder))
	mux.Handle("POST /characters/{id}/nudge", mutate(h.HandleNudge))

	// Preferences
	mux.HandleFunc("POST /preferences/theme", h.HandleSetTheme)
	mux.HandleFunc("GET /set-language/{lang}", h.HandleSetLanguage)
}

// request bundles what every handler resolves up front.
type request struct {
	sessionID string
	prefs     session.Preferences
	lang      language.Tag
	printer   *message.Printer
	shape     htmx.Shape
}

func (h *Handler) begin(r *http.Request) request {
	id := session.IDFromContext(r.Context())
	prefs := h.sessions.Preferences(id)
	lang := h.locales.Resolve(r, prefs.Language)
	shape := htmx.ResolveShape(r)
	if shape == htmx.Full && htmx.IsJSONBody(r) {
		shape = htmx.JSON
	}
	return request{
		sessionID: id,
		prefs:     prefs,
		lang:      lang,
		printer:   i18n.Printer(lang),
		shape:     shape,
	}
}

func (rq request) T(key string, args ...any) string {
	return rq.printer.Sprintf(key, args...)
}

// chrome builds page chrome. path is the GET target the language and theme
// switches return to.
func (h *Handler) chrome(rq request, section pages.Section, path string, flashes []domain.Flash) pages.Chrome {
	return pages.Chrome{
		Printer:   rq.printer,
		Lang:      rq.lang.String(),
		Theme:     rq.prefs.Theme,
		Languages: h.locales.Options(rq.lang),
		Path:      path,
		Section:   section,
		Flashes:   flashes,
	}
}

func noCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	w.Header().Set("Pragma", "no-cache")
}

// HandleLanding serves the home page
func (h *Handler) HandleLanding(w http.ResponseWriter, r *http.Request) {
	rq := h.begin(r)
	noCache(w)
	c := h.chrome(rq, pages.SectionHome, "/", h.sessions.PopFlashes(rq.sessionID))
	htmx.Render(w, r, htmx.Full, nil, pages.Landing(c), http.StatusOK)
}

// HandleHealth is the liveness probe
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	htmx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func render(w http.ResponseWriter, r *http.Request, shape htmx.Shape, fragment, full templ.Component, status int) {
	noCache(w)
	htmx.Render(w, r, shape, fragment, full, status)
}
