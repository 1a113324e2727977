package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lookout/internal/domain/entity"
)

// PrefsRenderer renders preference snapshots.
type PrefsRenderer struct {
	theme *Theme
}

// NewPrefsRenderer creates a new preferences renderer with the given theme.
func NewPrefsRenderer(theme *Theme) *PrefsRenderer {
	return &PrefsRenderer{theme: theme}
}

// SignalSource pairs a media query with the detector that answered it.
type SignalSource struct {
	Media   string
	Matches bool
	Source  string
}

// Render renders a snapshot and, when given, the source of each signal.
func (r *PrefsRenderer) Render(prefs entity.SystemPreferences, sources []SignalSource) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	themeIcon := IconSun
	if prefs.IsDark() {
		themeIcon = IconMoon
	}

	lines := []string{
		fmt.Sprintf("%s %s %s", iconStyle.Render(themeIcon), keyStyle.Render("Theme"), valStyle.Render(string(prefs.Theme))),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconContrast), keyStyle.Render("Contrast"), valStyle.Render(string(prefs.Contrast))),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconInfo), keyStyle.Render("Class"), r.theme.Normal.Render(prefs.ClassName())),
	}

	if len(sources) > 0 {
		lines = append(lines, "")
		for _, s := range sources {
			source := s.Source
			if source == "" {
				source = "fallback"
			}
			lines = append(lines, fmt.Sprintf(
				"  %s %s %s",
				r.theme.Normal.Render(s.Media),
				r.theme.BadgeMuted.Render(fmt.Sprintf("%t", s.Matches)),
				keyStyle.Render(source),
			))
		}
	}

	return strings.Join(lines, "\n")
}

// RenderLine renders a snapshot on one line, for change streams.
func (r *PrefsRenderer) RenderLine(prefs entity.SystemPreferences) string {
	return fmt.Sprintf("%s %s",
		r.theme.Highlight.Render(prefs.ClassName()),
		r.theme.Subtle.Render(prefs.String()),
	)
}
