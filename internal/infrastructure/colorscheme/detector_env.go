package colorscheme

import (
	"os"
	"strings"

	"github.com/bnema/lookout/internal/domain/entity"
)

const (
	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// EnvDetector detects signals from the GTK_THEME environment variable.
// This is useful when users explicitly set their theme via environment.
type EnvDetector struct {
	kind   entity.SignalKind
	getenv func(string) string
}

// NewEnvDetector creates a GTK_THEME based detector for kind.
func NewEnvDetector(kind entity.SignalKind) *EnvDetector {
	return &EnvDetector{kind: kind, getenv: os.Getenv}
}

// Name implements port.SignalDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.SignalDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.SignalDetector.
// GTK_THEME says nothing about the "more contrast" level.
func (d *EnvDetector) Available() bool {
	if d.kind == entity.SignalMediumContrast {
		return false
	}
	return d.getenv("GTK_THEME") != ""
}

// Detect implements port.SignalDetector.
//   - dark: the theme name contains "dark", or is an inverse high-contrast theme.
//   - high contrast: the theme name contains "HighContrast". Any other theme
//     leaves the decision to lower-priority detectors.
func (d *EnvDetector) Detect() (matches, ok bool) {
	gtkTheme := strings.ToLower(d.getenv("GTK_THEME"))
	if gtkTheme == "" {
		return false, false
	}

	switch d.kind {
	case entity.SignalDark:
		return strings.Contains(gtkTheme, "dark") || strings.Contains(gtkTheme, "inverse"), true
	case entity.SignalHighContrast:
		if strings.Contains(gtkTheme, "highcontrast") {
			return true, true
		}
		return false, false
	default:
		return false, false
	}
}
