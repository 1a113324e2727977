package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lookout/internal/domain/build"
	"github.com/bnema/lookout/internal/domain/entity"
)

// AboutInfo is what the about screen shows: the build and the preferences
// lookout sees right now.
type AboutInfo struct {
	Build       build.Info
	Preferences entity.SystemPreferences
	Headless    bool
}

// AboutRenderer renders AboutInfo in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render places the logo left of the info lines.
func (r *AboutRenderer) Render(info AboutInfo) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(info.Preferences), "   ", r.renderInfoLines(info))
}

// The eye's lit half follows the color scheme.
const (
	eyeLight = `  ▄████▄
▄██▀  ▀▀██▄
▓▓▓  ██  ██
▀██▄  ▄▄██▀
  ▀████▀`
	eyeDark = `  ▄████▄
▄██▀  ▀▀██▄
██  ██  ▓▓▓
▀██▄  ▄▄██▀
  ▀████▀`
)

func (r *AboutRenderer) renderLogo(prefs entity.SystemPreferences) string {
	logo := eyeLight
	if prefs.IsDark() {
		logo = eyeDark
	}
	style := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)
	if prefs.Contrast == entity.ContrastHigh {
		style = style.Foreground(r.theme.Text)
	}
	return style.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info AboutInfo) string {
	b := info.Build.Normalize()
	themeIcon := IconSun
	if info.Preferences.IsDark() {
		themeIcon = IconMoon
	}
	detection := "desktop"
	if info.Headless {
		detection = "headless, using defaults"
	}

	lines := []string{
		r.line(IconVersion, "Version", b.Version),
		r.line(IconGitBranch, "Commit", b.ShortCommit()),
		r.line(IconCalendar, "Built", b.BuildDate),
		r.line(IconGo, "Go", b.GoVersion),
		"",
		r.line(themeIcon, "Theme", string(info.Preferences.Theme)),
		r.line(IconContrast, "Contrast", string(info.Preferences.Contrast)),
		r.line(IconEye, "Class", info.Preferences.ClassName()),
		r.line(IconInfo, "Signals", detection),
		"",
		fmt.Sprintf("%s %s", r.icon(IconGithub), r.theme.Subtle.Render(build.RepoURL)),
	}
	return strings.Join(lines, "\n")
}

func (r *AboutRenderer) line(icon, label, value string) string {
	return fmt.Sprintf("%s %s %s", r.icon(icon), r.theme.Subtle.Render(label), r.theme.Highlight.Render(value))
}

func (r *AboutRenderer) icon(icon string) string {
	return lipgloss.NewStyle().Foreground(r.theme.Accent).Render(icon)
}
