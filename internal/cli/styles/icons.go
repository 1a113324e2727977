// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" //  tag
	IconGitBranch = "\ue725" //  git branch
	IconCalendar  = "\uf073" //  calendar
	IconGithub    = "\uf09b" //  github
	IconGo        = "\ue627" //  go gopher

	// Doctor / diagnostics
	IconDoctor  = "\uf0f1" // stethoscope
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconCursor  = "\uf054" // chevron-right

	// Preferences
	IconMoon     = "\uf186" // moon
	IconSun      = "\uf185" // sun
	IconContrast = "\uf042" // adjust
	IconEye      = "\uf06e" // eye
	IconScroll   = "\uf175" // long arrow down
	IconGlobe    = "\uf0ac" // browser/web
)
