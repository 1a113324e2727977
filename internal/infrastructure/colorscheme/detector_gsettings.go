package colorscheme

import (
	"os/exec"
	"strings"

	"github.com/bnema/lookout/internal/domain/entity"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10

	schemaInterface     = "org.gnome.desktop.interface"
	schemaA11yInterface = "org.gnome.desktop.a11y.interface"
)

// CommandRunner runs a command and returns its standard output.
type CommandRunner func(name string, args ...string) ([]byte, error)

func execOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// GsettingsDetector detects signals from GNOME gsettings.
type GsettingsDetector struct {
	kind     entity.SignalKind
	run      CommandRunner
	lookPath func(string) (string, error)
}

// NewGsettingsDetector creates a gsettings-based detector for kind.
func NewGsettingsDetector(kind entity.SignalKind) *GsettingsDetector {
	return &GsettingsDetector{kind: kind, run: execOutput, lookPath: exec.LookPath}
}

// Name implements port.SignalDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.SignalDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.SignalDetector.
// Returns true if the gsettings command is available and exposes kind.
func (d *GsettingsDetector) Available() bool {
	if d.kind == entity.SignalMediumContrast {
		return false
	}
	_, err := d.lookPath("gsettings")
	return err == nil
}

// Detect implements port.SignalDetector.
func (d *GsettingsDetector) Detect() (matches, ok bool) {
	switch d.kind {
	case entity.SignalDark:
		return d.detectColorScheme()
	case entity.SignalHighContrast:
		return d.detectHighContrast()
	default:
		return false, false
	}
}

func (d *GsettingsDetector) get(schema, key string) (string, bool) {
	output, err := d.run("gsettings", "get", schema, key)
	if err != nil {
		return "", false
	}
	// Output is like "'prefer-dark'\n", strip quotes and whitespace
	result := strings.TrimSpace(string(output))
	return strings.Trim(result, "'\""), true
}

func (d *GsettingsDetector) detectColorScheme() (bool, bool) {
	result, ok := d.get(schemaInterface, "color-scheme")
	if !ok {
		return false, false
	}

	switch result {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		// "default" means follow system, which we can't determine here
		return false, false
	}
}

func (d *GsettingsDetector) detectHighContrast() (bool, bool) {
	result, ok := d.get(schemaA11yInterface, "high-contrast")
	if !ok {
		return false, false
	}

	switch result {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
