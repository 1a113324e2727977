package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	Headless   bool
	Preference string
	ClassName  string
	ConfigFile string
	Signals    []DoctorSignal
}

type DoctorSignal struct {
	Media     string
	Matches   bool
	Source    string
	Detectors []DoctorDetector
}

type DoctorDetector struct {
	Name      string
	Priority  int
	Available bool
	Detected  bool
	Matches   bool
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(!report.Headless)

	summary := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Preferences"), r.theme.Normal.Render(report.Preference)),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Class"), r.theme.Normal.Render(report.ClassName)),
	}
	if report.ConfigFile != "" {
		summary = append(summary, fmt.Sprintf("%s %s", r.theme.Subtle.Render("Config"), r.theme.Normal.Render(report.ConfigFile)))
	}
	if report.Headless {
		summary = append(summary, "", fmt.Sprintf(
			"%s %s",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.Normal.Render("No detector is available: every signal reads as inactive (light, standard contrast)."),
		))
	}

	sections := make([]string, 0, len(report.Signals))
	for _, s := range report.Signals {
		sections = append(sections, r.renderSignal(s))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header, "",
		strings.Join(summary, "\n"), "",
		strings.Join(sections, "\n\n"),
	)
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Headless"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderSignal(s DoctorSignal) string {
	value := r.theme.Subtle.Render("inactive")
	if s.Matches {
		value = r.theme.Highlight.Render("active")
	}
	source := s.Source
	if source == "" {
		source = "fallback"
	}

	lines := []string{fmt.Sprintf("%s %s", value, r.theme.Subtle.Render("via "+source))}
	for _, d := range s.Detectors {
		lines = append(lines, r.renderDetector(d))
	}
	if len(s.Detectors) == 0 {
		lines = append(lines, r.theme.Subtle.Render("no detectors registered"))
	}

	head := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconEye), s.Media))
	return r.theme.Box.Render(head + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderDetector(d DoctorDetector) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	status := "no"
	if d.Matches {
		status = "yes"
	}

	switch {
	case !d.Available:
		icon = IconX
		statusStyle = r.theme.Subtle
		status = "unavailable"
	case !d.Detected:
		icon = IconWarning
		statusStyle = r.theme.WarningStyle
		status = "failed"
	}

	name := r.theme.Normal.Render(d.Name)
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(status))
	prio := r.theme.Subtle.Render(fmt.Sprintf("priority %d", d.Priority))

	return fmt.Sprintf("%s %s %s %s", statusStyle.Render(icon), name, badge, prio)
}
