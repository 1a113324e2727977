// Package entity defines domain entities for preference and scroll observation.
package entity

import (
	"fmt"
	"strings"
)

// Theme is the requested color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Contrast is the requested contrast level.
type Contrast string

const (
	ContrastStandard Contrast = "standard"
	ContrastMedium   Contrast = "medium"
	ContrastHigh     Contrast = "high"
)

// SystemPreferences is a snapshot of the host's presentation preferences.
// Exactly one value of each dimension is active; there is no unknown state.
type SystemPreferences struct {
	Theme    Theme    `json:"theme"`
	Contrast Contrast `json:"contrast"`
}

// DefaultPreferences is what an environment without preference signals resolves to.
func DefaultPreferences() SystemPreferences {
	return SystemPreferences{Theme: ThemeLight, Contrast: ContrastStandard}
}

// ResolvePreferences builds a snapshot from the three boolean signals.
// High contrast takes precedence over medium contrast.
func ResolvePreferences(dark, highContrast, mediumContrast bool) SystemPreferences {
	prefs := DefaultPreferences()
	if dark {
		prefs.Theme = ThemeDark
	}
	switch {
	case highContrast:
		prefs.Contrast = ContrastHigh
	case mediumContrast:
		prefs.Contrast = ContrastMedium
	}
	return prefs
}

// IsDark reports whether the dark theme is active.
func (p SystemPreferences) IsDark() bool {
	return p.Theme == ThemeDark
}

// ClassName returns the root style class for this snapshot,
// e.g. "dark" or "light contrast-high".
func (p SystemPreferences) ClassName() string {
	theme := p.Theme
	if theme == "" {
		theme = ThemeLight
	}
	switch p.Contrast {
	case ContrastMedium, ContrastHigh:
		return string(theme) + " contrast-" + string(p.Contrast)
	default:
		return string(theme)
	}
}

// String implements fmt.Stringer.
func (p SystemPreferences) String() string {
	return fmt.Sprintf("theme=%s contrast=%s", p.Theme, p.Contrast)
}

// ParseTheme parses a theme name. Accepts the config spellings
// "prefer-dark" and "prefer-light" as well.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "prefer-dark":
		return ThemeDark, nil
	case "light", "prefer-light":
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// ParseContrast parses a contrast level. "more" is accepted as medium.
func ParseContrast(s string) (Contrast, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "normal", "no-preference":
		return ContrastStandard, nil
	case "medium", "more":
		return ContrastMedium, nil
	case "high":
		return ContrastHigh, nil
	default:
		return "", fmt.Errorf("unknown contrast %q", s)
	}
}

// ParseClassName is the inverse of ClassName. Unknown tokens are rejected.
func ParseClassName(name string) (SystemPreferences, error) {
	prefs := DefaultPreferences()
	for _, tok := range strings.Fields(name) {
		switch tok {
		case string(ThemeDark), string(ThemeLight):
			prefs.Theme = Theme(tok)
		case "contrast-" + string(ContrastMedium):
			prefs.Contrast = ContrastMedium
		case "contrast-" + string(ContrastHigh):
			prefs.Contrast = ContrastHigh
		default:
			return DefaultPreferences(), fmt.Errorf("unknown class %q", tok)
		}
	}
	return prefs, nil
}
