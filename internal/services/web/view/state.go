// Package view models the directory page's UI state as an immutable value
// that changes only by applying events.
package view

import (
	"net/url"
	"strings"

	"github.com/louisbranch/topbrands/internal/directory"
)

// Query parameter names carrying state between pages.
const (
	ParamCategory = "category"
	ParamLang     = "lang"
	ParamTheme    = "theme"
)

// Theme values accepted in the theme parameter.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// State is the full UI state of one directory page.
type State struct {
	// Selected is the drilled-into category id, empty when none.
	Selected string
	// Dark enables the dark theme.
	Dark bool
	// Lang is the active language tag.
	Lang string
}

// Event is a user interaction that yields the next state.
type Event interface {
	Apply(State) State
}

// SelectCategory toggles the selection of a category.
type SelectCategory struct{ ID string }

// Apply implements Event.
func (e SelectCategory) Apply(s State) State { return s.Select(e.ID) }

// ToggleTheme flips dark mode.
type ToggleTheme struct{}

// Apply implements Event.
func (ToggleTheme) Apply(s State) State { return s.ToggleTheme() }

// SwitchLanguage changes the active language.
type SwitchLanguage struct{ Lang string }

// Apply implements Event.
func (e SwitchLanguage) Apply(s State) State { return s.WithLanguage(e.Lang) }

// Apply folds events over s in order.
func (s State) Apply(events ...Event) State {
	for _, event := range events {
		if event == nil {
			continue
		}
		s = event.Apply(s)
	}
	return s
}

// Select selects id, or clears the selection when id is already selected.
func (s State) Select(id string) State {
	id = strings.TrimSpace(id)
	if id == "" || id == s.Selected {
		s.Selected = ""
		return s
	}
	s.Selected = id
	return s
}

// ClearSelection returns s with no category selected.
func (s State) ClearSelection() State {
	s.Selected = ""
	return s
}

// ToggleTheme returns s with dark mode flipped.
func (s State) ToggleTheme() State {
	s.Dark = !s.Dark
	return s
}

// WithLanguage returns s with the language replaced.
func (s State) WithLanguage(lang string) State {
	s.Lang = strings.TrimSpace(lang)
	return s
}

// HasSelection reports whether a category is selected.
func (s State) HasSelection() bool {
	return s.Selected != ""
}

// IsSelected reports whether id is the selected category.
func (s State) IsSelected(id string) bool {
	return s.Selected != "" && s.Selected == id
}

// Theme returns the theme parameter value for s.
func (s State) Theme() string {
	if s.Dark {
		return ThemeDark
	}
	return ThemeLight
}

// Displayed returns the categories of d this state shows.
func (s State) Displayed(d *directory.Directory) []directory.Category {
	return directory.Filter(d.Categories(), s.Selected)
}

// Query encodes the navigation part of s. Theme is left out because it
// travels in a session cookie once applied.
func (s State) Query() url.Values {
	values := url.Values{}
	if s.Selected != "" {
		values.Set(ParamCategory, s.Selected)
	}
	if s.Lang != "" {
		values.Set(ParamLang, s.Lang)
	}
	return values
}

// URL returns path with s encoded in the query string.
func (s State) URL(path string) string {
	return buildURL(path, s.Query())
}

// ThemeURL returns path with s encoded, including an explicit theme value.
func (s State) ThemeURL(path string) string {
	values := s.Query()
	values.Set(ParamTheme, s.Theme())
	return buildURL(path, values)
}

func buildURL(path string, values url.Values) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	return (&url.URL{Path: path, RawQuery: values.Encode()}).String()
}

// ParseTheme maps a theme parameter to the dark flag. ok is false for
// anything other than "dark" or "light".
func ParseTheme(value string) (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case ThemeDark:
		return true, true
	case ThemeLight:
		return false, true
	default:
		return false, false
	}
}

// Decode reads the selection from query values. Categories unknown to d
// are dropped so stale links land on the full directory.
func Decode(values url.Values, d *directory.Directory) State {
	var s State
	if id := strings.TrimSpace(values.Get(ParamCategory)); id != "" && d.Has(id) {
		s.Selected = id
	}
	if dark, ok := ParseTheme(values.Get(ParamTheme)); ok {
		s.Dark = dark
	}
	return s
}
