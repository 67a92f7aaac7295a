package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmuslimabdulj/tabletop-utils/internal/domain"
	"github.com/mmuslimabdulj/tabletop-utils/internal/htmx"
	"github.com/mmuslimabdulj/tabletop-utils/internal/usecase"
)

const maxBodyBytes = 64 << 10

// errMalformed marks request bodies that could not be decoded at all.
var errMalformed = errors.New("malformed request body")

// readFields reads the named fields from a JSON or form-encoded body. Absent
// fields come back as "". JSON numbers and booleans are returned in their
// literal form so both encodings go through the same parsing.
func readFields(w http.ResponseWriter, r *http.Request, names ...string) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	fields := make(map[string]string, len(names))

	if htmx.IsJSONBody(r) {
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", errMalformed, err)
		}
		for _, name := range names {
			value, ok := raw[name]
			if !ok {
				fields[name] = ""
				continue
			}
			s, err := jsonScalar(value)
			if err != nil {
				return nil, fmt.Errorf("%w: field %s: %v", errMalformed, name, err)
			}
			fields[name] = s
		}
		return fields, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformed, err)
	}
	for _, name := range names {
		fields[name] = r.PostForm.Get(name)
	}
	return fields, nil
}

func jsonScalar(raw json.RawMessage) (string, error) {
	var v any
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", errors.New("expected a string or number")
	}
}

// parseAddInput converts raw add-form fields. An empty initiative means 0 and
// an empty position means "next available".
func parseAddInput(fields map[string]string) (usecase.AddInput, error) {
	var verr domain.ValidationError
	in := usecase.AddInput{Name: fields[domain.FieldName]}

	if raw := strings.TrimSpace(fields[domain.FieldInitiative]); raw != "" {
		initiative, err := strconv.Atoi(raw)
		if err != nil {
			verr.Add(domain.FieldInitiative, "initiative must be an integer")
		}
		in.Initiative = initiative
	}

	if raw := strings.TrimSpace(fields[domain.FieldPosition]); raw != "" {
		position, err := domain.ParsePosition(raw)
		if err != nil {
			if err = verr.Merge(err); err != nil {
				return usecase.AddInput{}, err
			}
		} else {
			in.Position = &position
		}
	}

	if verr.Empty() {
		return in, nil
	}
	// Report the remaining field problems alongside the parse failures.
	_ = verr.Merge(domainNameError(in.Name))
	if verr.Field(domain.FieldInitiative) == "" {
		_ = verr.Merge(domain.ValidateInitiative(in.Initiative))
	}
	if in.Position != nil {
		_ = verr.Merge(domain.ValidatePosition(*in.Position))
	}
	return usecase.AddInput{}, &verr
}

func domainNameError(name string) error {
	_, err := domain.NormalizeName(name)
	return err
}

// safeNext accepts only same-site absolute paths as a redirect target.
func safeNext(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, `/\`) {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return u.RequestURI()
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
