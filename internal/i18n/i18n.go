// Package i18n resolves the active locale and prints translated UI strings.
package i18n

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
)

// Locales is the set of languages the site is translated into.
type Locales struct {
	tags     []language.Tag
	fallback language.Tag
	matcher  language.Matcher
}

// NewLocales builds the supported set. fallback must be one of supported.
func NewLocales(supported []string, fallback string) (*Locales, error) {
	if len(supported) == 0 {
		return nil, fmt.Errorf("at least one supported locale is required")
	}
	tags := make([]language.Tag, 0, len(supported))
	fallbackIdx := -1
	for _, code := range supported {
		tag, err := language.Parse(strings.TrimSpace(code))
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", code, err)
		}
		if strings.EqualFold(strings.TrimSpace(code), strings.TrimSpace(fallback)) {
			fallbackIdx = len(tags)
		}
		tags = append(tags, tag)
	}
	if fallbackIdx < 0 {
		return nil, fmt.Errorf("fallback locale %q is not supported", fallback)
	}
	// The matcher treats its first tag as the default.
	ordered := append([]language.Tag{tags[fallbackIdx]}, tags...)
	return &Locales{
		tags:     tags,
		fallback: tags[fallbackIdx],
		matcher:  language.NewMatcher(ordered),
	}, nil
}

// Supported returns the supported tags in configured order.
func (l *Locales) Supported() []language.Tag {
	return append([]language.Tag(nil), l.tags...)
}

// Default returns the fallback tag.
func (l *Locales) Default() language.Tag {
	return l.fallback
}

// Parse maps a locale code onto a supported tag. Regional variants match
// their base language ("es-MX" -> "es"); unsupported languages do not match.
func (l *Locales) Parse(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return l.fallback, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return l.fallback, false
	}
	return l.match(tag)
}

// Normalize is Parse with unsupported values coerced to the fallback.
func (l *Locales) Normalize(value string) language.Tag {
	tag, _ := l.Parse(value)
	return tag
}

func (l *Locales) match(requested ...language.Tag) (language.Tag, bool) {
	_, idx, confidence := l.matcher.Match(requested...)
	if confidence == language.No {
		return l.fallback, false
	}
	// idx indexes the matcher list, which has the fallback prepended.
	if idx == 0 {
		return l.fallback, true
	}
	return l.tags[idx-1], true
}

// Resolve picks the locale for a request: an explicit session choice, then
// Accept-Language, then the fallback.
func (l *Locales) Resolve(r *http.Request, sessionLanguage string) language.Tag {
	if tag, ok := l.Parse(sessionLanguage); ok {
		return tag
	}
	if r == nil {
		return l.fallback
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if requested, _, err := language.ParseAcceptLanguage(accept); err == nil && len(requested) > 0 {
			if tag, ok := l.match(requested...); ok {
				return tag
			}
		}
	}
	return l.fallback
}

// Option is one entry of the language switcher.
type Option struct {
	Code   string
	Label  string
	Active bool
}

// Options lists supported languages with active marking the current one.
func (l *Locales) Options(active language.Tag) []Option {
	options := make([]Option, 0, len(l.tags))
	for _, tag := range l.tags {
		options = append(options, Option{
			Code:   tag.String(),
			Label:  Label(tag),
			Active: tag == active,
		})
	}
	return options
}

// Label returns the language's name in its own language, e.g. "Deutsch".
func Label(tag language.Tag) string {
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
