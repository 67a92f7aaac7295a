// Package htmx chooses between full pages, HTML fragments and JSON, and
// renders templ components accordingly.
package htmx

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeader is sent by htmx on every request it initiates.
const RequestHeader = "HX-Request"

// Query parameters that select a shape explicitly.
const (
	PartialParam = "partial"
	FormatParam  = "format"
)

// Shape is the kind of response a caller wants.
type Shape int

const (
	// Full renders a complete HTML document.
	Full Shape = iota
	// Fragment renders only the swapped-in HTML.
	Fragment
	// JSON renders data.
	JSON
)

func (s Shape) String() string {
	switch s {
	case Fragment:
		return "fragment"
	case JSON:
		return "json"
	default:
		return "full"
	}
}

// IsHTMXRequest reports whether the request was initiated by htmx.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// ResolveShape picks the response shape from explicit request signals:
// ?format=json or an Accept header preferring JSON select JSON; an htmx request
// or ?partial=1 selects Fragment; everything else is Full.
func ResolveShape(r *http.Request) Shape {
	if r == nil {
		return Full
	}
	query := r.URL.Query()
	if strings.EqualFold(query.Get(FormatParam), "json") || acceptsJSON(r.Header.Get("Accept")) {
		return JSON
	}
	if IsHTMXRequest(r) || truthy(query.Get(PartialParam)) {
		return Fragment
	}
	return Full
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// acceptsJSON reports whether the first listed media type is JSON.
func acceptsJSON(accept string) bool {
	if accept == "" {
		return false
	}
	first := strings.TrimSpace(strings.Split(accept, ",")[0])
	mediaType, _, err := mime.ParseMediaType(first)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

// IsJSONBody reports whether the request body is JSON.
func IsJSONBody(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// Render writes fragment for Fragment requests and full otherwise, with the
// given status code. A nil fragment falls back to full and vice versa.
func Render(w http.ResponseWriter, r *http.Request, shape Shape, fragment, full templ.Component, status int) {
	target := full
	if shape == Fragment && fragment != nil {
		target = fragment
	}
	if target == nil {
		target = fragment
	}
	if target == nil {
		w.WriteHeader(status)
		return
	}

	var buf bytes.Buffer
	if err := target.Render(r.Context(), &buf); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if shape == Fragment {
		w.Header().Add("Vary", RequestHeader)
	}
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// WriteJSON encodes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Redirect sends a post/redirect/get redirect. htmx requests get an
// HX-Redirect header instead, since htmx follows 3xx responses transparently.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMXRequest(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
