package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/mmuslimabdulj/tabletop-utils/internal/domain"
	"github.com/mmuslimabdulj/tabletop-utils/internal/htmx"
	"github.com/mmuslimabdulj/tabletop-utils/view/pages"
)

// errorResponse is the JSON error body.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError maps err onto a status code and answers in the request's shape.
// Validation and not-found failures re-render the tracker with a notice;
// anything else is logged and reported as a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, rq request, err error) {
	verr, invalid := domain.AsValidation(err)

	switch {
	case errors.Is(err, errMalformed):
		if rq.shape == htmx.JSON {
			htmx.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
			return
		}
		http.Error(w, "Invalid request", http.StatusBadRequest)

	case invalid:
		fields := make(map[string]string, len(verr.Fields))
		for field, msg := range verr.Fields {
			fields[field] = rq.T(msg)
		}
		if rq.shape == htmx.JSON {
			htmx.WriteJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: fields})
			return
		}
		flashes := make([]domain.Flash, 0, len(fields))
		for _, field := range []string{domain.FieldName, domain.FieldInitiative, domain.FieldPosition, domain.FieldDirection} {
			if msg, ok := fields[field]; ok {
				flashes = append(flashes, domain.Flash{Level: domain.FlashError, Text: msg})
			}
		}
		h.renderTrackerError(w, r, rq, http.StatusUnprocessableEntity, flashes)

	case domain.IsNotFound(err):
		if rq.shape == htmx.JSON {
			htmx.WriteJSON(w, http.StatusNotFound, errorResponse{Error: "character not found"})
			return
		}
		h.renderTrackerError(w, r, rq, http.StatusNotFound, []domain.Flash{
			{Level: domain.FlashError, Text: rq.T("flash.not_found")},
		})

	default:
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		if rq.shape == htmx.JSON {
			htmx.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// renderTrackerError shows the current tracker with error notices. A failure
// to load the tracker itself falls through to a plain 500.
func (h *Handler) renderTrackerError(w http.ResponseWriter, r *http.Request, rq request, status int, flashes []domain.Flash) {
	d, err := h.trackerData(r)
	if err != nil {
		log.Printf("%s %s: load tracker: %v", r.Method, r.URL.Path, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	c := h.chrome(rq, pages.SectionTracker, trackerPath, flashes)
	render(w, r, rq.shape, pages.TrackerPartial(c, d), pages.TrackerPage(c, d), status)
}
