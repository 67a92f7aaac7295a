package domain

import "strings"

// Theme is the UI color scheme stored per session.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when a session has no valid theme.
const DefaultTheme = ThemeLight

// Themes lists the accepted theme values.
var Themes = []Theme{ThemeLight, ThemeDark}

// NormalizeTheme maps unknown values to DefaultTheme.
func NormalizeTheme(value string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	}
	return DefaultTheme
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// FlashLevel classifies a flash message.
type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashInfo    FlashLevel = "info"
	FlashError   FlashLevel = "error"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Level FlashLevel `json:"level"`
	Text  string     `json:"text"`
}
