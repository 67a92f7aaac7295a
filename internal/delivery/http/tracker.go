package http

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/mmuslimabdulj/tabletop-utils/internal/domain"
	"github.com/mmuslimabdulj/tabletop-utils/internal/htmx"
	"github.com/mmuslimabdulj/tabletop-utils/internal/session"
	"github.com/mmuslimabdulj/tabletop-utils/view/pages"
)

const trackerPath = "/tracker"

// listResponse is the JSON shape of the turn order.
type listResponse struct {
	Characters []domain.Character `json:"characters"`
	Current    *domain.Character  `json:"current"`
}

func (h *Handler) trackerData(r *http.Request) (pages.TrackerData, error) {
	characters, err := h.tracker.ListInOrder(r.Context())
	if err != nil {
		return pages.TrackerData{}, err
	}
	d := pages.TrackerData{Characters: characters}
	if len(characters) > 0 {
		d.Current = &characters[0]
	}
	return d, nil
}

// showTracker answers with the tracker in the request's shape. flashes are
// shown on top of whatever the session has queued.
func (h *Handler) showTracker(w http.ResponseWriter, r *http.Request, rq request, status int, flashes ...domain.Flash) {
	d, err := h.trackerData(r)
	if err != nil {
		h.writeError(w, r, rq, err)
		return
	}
	if rq.shape == htmx.JSON {
		htmx.WriteJSON(w, status, listResponse{Characters: d.Characters, Current: d.Current})
		return
	}
	queued := h.sessions.PopFlashes(rq.sessionID)
	c := h.chrome(rq, pages.SectionTracker, trackerPath, append(queued, flashes...))
	render(w, r, rq.shape, pages.TrackerPartial(c, d), pages.TrackerPage(c, d), status)
}

// HandleTracker serves the tracker page, or its section for htmx
func (h *Handler) HandleTracker(w http.ResponseWriter, r *http.Request) {
	h.showTracker(w, r, h.begin(r), http.StatusOK)
}

// HandleListCharacters lists characters in turn order
func (h *Handler) HandleListCharacters(w http.ResponseWriter, r *http.Request) {
	h.showTracker(w, r, h.begin(r), http.StatusOK)
}

// HandleAddForm serves the add form with the next free position prefilled
func (h *Handler) HandleAddForm(w http.ResponseWriter, r *http.Request) {
	rq := h.begin(r)
	position, err := h.tracker.NextAvailablePosition(r.Context())
	if err != nil {
		h.writeError(w, r, rq, err)
		return
	}
	f := pages.FormData{
		Initiative: "0",
		Position:   itoa(position),
		Inline:     rq.shape == htmx.Fragment,
	}
	h.showForm(w, r, rq, f, http.StatusOK)
}

func (h *Handler) showForm(w http.ResponseWriter, r *http.Request, rq request, f pages.FormData, status int) {
	c := h.chrome(rq, pages.SectionTracker, "/tracker/add", h.sessions.PopFlashes(rq.sessionID))
	render(w, r, rq.shape, pages.AddCharacterForm(c, f), pages.AddCharacterPage(c, f), status)
}

// HandleAddCancel empties the inline form slot
func (h *Handler) HandleAddCancel(w http.ResponseWriter, r *http.Request) {
	if !htmx.IsHTMXRequest(r) {
		htmx.Redirect(w, r, trackerPath)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
}

// HandleCreateCharacter adds a character to the turn order
func (h *Handler) HandleCreateCharacter(w http.ResponseWriter, r *http.Request) {
	rq := h.begin(r)
	fields, err := readFields(w, r, domain.FieldName, domain.FieldInitiative, domain.FieldPosition)
	if err != nil {
		h.writeError(w, r, rq, err)
		return
	}

	in, err := parseAddInput(fields)
	var character domain.Character
	if err == nil {
		character, err = h.tracker.Add(r.Context(), in)
	}
	if verr, ok := domain.AsValidation(err); ok && rq.shape != htmx.JSON {
		f := pages.FormData{
			Name:       fields[domain.FieldName],
			Initiative: fields[domain.FieldInitiative],
			Position:   fields[domain.FieldPosition],
			Errors:     verr.Fields,
			Inline:     rq.shape == htmx.Fragment,
		}
		if rq.shape == htmx.Fragment {
			w.Header().Set("HX-Retarget", "#add-character")
			w.Header().Set("HX-Reswap", "outerHTML")
		}
		h.showForm(w, r, rq, f, http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		h.writeError(w, r, rq, err)
		return
	}

	h.finish(w, r, rq, outcome{
		flash:    domain.Flash{Level: domain.FlashSuccess, Text: rq.T("flash.added")},
		status:   http.StatusCreated,
		payload:  character,
		fragment: pages.AddSuccess,
	})
}

// HandleDeleteCharacter removes a character
func (h *Handler) HandleDeleteCharacter(w http.ResponseWriter, r *http.Request) {
	rq := h.begin(r)
	if err := h.tracker.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, rq, err)
		return
	}
	h.finish(w, r, rq, outcome{
		flash:  domain.Flash{Level: domain.FlashInfo, Text: rq.T("flash.removed")},
		status: http.StatusNoContent,
	})
}

// HandleAdvanceTurn ends the given character's turn
func (h *Handler) HandleAdvanceTurn(w http.ResponseWriter, r *http.Request) {
	rq := h.begin(r)
	next, err := h.tracker.AdvanceTurn(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, rq, err)
		return
	}
	o := outcome{
		status:  http.StatusOK,
		payload: map[string]*domain.Character{"next": next},
	}
	if next != nil {
		o.flash = domain.Flash{Level: domain.FlashInfo, Text: rq.T("flash.next_up", next.Name)}
	}
	h.finish(w, r, rq, o)
}

// HandleReorder sets a character's position
func (h *Handler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	rq := h.begin(r)
	fields, err := readFields(w, r, domain.FieldPosition)
	if err != nil {
		h.writeError(w, r, rq, err)
		return
	}
	character, err := h.tracker.ReorderInput(r.Context(), r.PathValue("id"), fields[domain.FieldPosition])
	if err != nil {
		h.writeError(w, r, rq, err)
		return
	}
	h.finish(w, r, rq, outcome{
		flash:   domain.Flash{Level: domain.FlashSuccess, Text: rq.T("flash.position_updated")},
		status:  http.StatusOK,
		payload: character,
	})
}

// HandleNudge moves a character one step up or down
func (h *Handler) HandleNudge(w http.ResponseWriter, r *http.Request) {
	rq := h.begin(r)
	fields, err := readFields(w, r, domain.FieldDirection)
	if err != nil {
		h.writeError(w, r, rq, err)
		return
	}
	direction, err := domain.ParseDirection(fields[domain.FieldDirection])
	if err != nil {
		h.writeError(w, r, rq, err)
		return
	}
	character, err := h.tracker.Nudge(r.Context(), r.PathValue("id"), direction)
	if err != nil {
		h.writeError(w, r, rq, err)
		return
	}
	h.finish(w, r, rq, outcome{
		flash:   domain.Flash{Level: domain.FlashSuccess, Text: rq.T("flash.position_updated")},
		status:  http.StatusOK,
		payload: character,
	})
}

// outcome describes a successful mutation for each response shape.
type outcome struct {
	flash    domain.Flash // zero value means no notice
	status   int          // JSON status
	payload  any          // JSON body; nil sends no body
	fragment func(pages.Chrome, pages.TrackerData) templ.Component
}

// finish answers a successful mutation: JSON gets the payload, fragments get
// the re-rendered tracker and full pages are redirected to it.
func (h *Handler) finish(w http.ResponseWriter, r *http.Request, rq request, o outcome) {
	var flashes []domain.Flash
	if o.flash.Text != "" {
		flashes = append(flashes, o.flash)
	}

	switch rq.shape {
	case htmx.JSON:
		if o.payload == nil {
			w.WriteHeader(o.status)
			return
		}
		htmx.WriteJSON(w, o.status, o.payload)
	case htmx.Fragment:
		d, err := h.trackerData(r)
		if err != nil {
			h.writeError(w, r, rq, err)
			return
		}
		fragment := pages.TrackerPartial
		if o.fragment != nil {
			fragment = o.fragment
		}
		c := h.chrome(rq, pages.SectionTracker, trackerPath, flashes)
		render(w, r, rq.shape, fragment(c, d), nil, http.StatusOK)
	default:
		if len(flashes) > 0 {
			id := session.Ensure(r.Context())
			for _, f := range flashes {
				h.sessions.AddFlash(id, f)
			}
		}
		htmx.Redirect(w, r, trackerPath)
	}
}
