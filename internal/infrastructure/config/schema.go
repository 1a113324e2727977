// Package config loads, validates and watches lookout's TOML configuration.
package config

import (
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
)

// Config represents the complete configuration for lookout.
type Config struct {
	// Appearance holds user overrides for the detected preferences.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	// Detection controls which desktop sources are queried and how changes are picked up.
	Detection DetectionConfig `mapstructure:"detection" toml:"detection" json:"detection"`
	Scroll    ScrollConfig    `mapstructure:"scroll" toml:"scroll" json:"scroll"`
	// Server configures the WebSocket bridge started by `lookout serve`.
	Server  ServerConfig  `mapstructure:"server" toml:"server" json:"server"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// ColorSchemeOverride forces the dark signal regardless of the desktop.
type ColorSchemeOverride string

const (
	ColorSchemeDefault     ColorSchemeOverride = "default"
	ColorSchemePreferDark  ColorSchemeOverride = "prefer-dark"
	ColorSchemePreferLight ColorSchemeOverride = "prefer-light"
)

// ContrastOverride forces the contrast signals regardless of the desktop.
type ContrastOverride string

const (
	ContrastDefault  ContrastOverride = "default"
	ContrastStandard ContrastOverride = "standard"
	ContrastMedium   ContrastOverride = "medium"
	ContrastHigh     ContrastOverride = "high"
)

// AppearanceConfig holds preference overrides and the advertised meta colors.
type AppearanceConfig struct {
	// ColorScheme: "default" follows the desktop, "prefer-dark" or "prefer-light" force it.
	ColorScheme ColorSchemeOverride `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
	// Contrast: "default" follows the desktop, otherwise forces the level.
	Contrast              ContrastOverride `mapstructure:"contrast" toml:"contrast" json:"contrast" jsonschema:"enum=default,enum=standard,enum=medium,enum=high"`
	LightMetaColor        string           `mapstructure:"light_meta_color" toml:"light_meta_color" json:"light_meta_color"`
	DarkMetaColor         string           `mapstructure:"dark_meta_color" toml:"dark_meta_color" json:"dark_meta_color"`
	HighContrastMetaColor string           `mapstructure:"high_contrast_meta_color" toml:"high_contrast_meta_color" json:"high_contrast_meta_color"`
}

// DetectionConfig selects preference detectors and change triggers.
type DetectionConfig struct {
	// PollInterval re-evaluates every detector periodically. Zero disables polling.
	PollInterval Duration `mapstructure:"poll_interval" toml:"poll_interval" json:"poll_interval"`
	Portal       bool     `mapstructure:"portal" toml:"portal" json:"portal"`
	Gsettings    bool     `mapstructure:"gsettings" toml:"gsettings" json:"gsettings"`
	Env          bool     `mapstructure:"env" toml:"env" json:"env"`
	// WatchDconf refreshes when the dconf user database changes on disk.
	WatchDconf bool `mapstructure:"watch_dconf" toml:"watch_dconf" json:"watch_dconf"`
}

// ScrollConfig holds the scroll offset used before the first read and after failed reads.
type ScrollConfig struct {
	DefaultX float64 `mapstructure:"default_x" toml:"default_x" json:"default_x"`
	DefaultY float64 `mapstructure:"default_y" toml:"default_y" json:"default_y"`
}

// ServerConfig configures the WebSocket bridge.
type ServerConfig struct {
	Listen string `mapstructure:"listen" toml:"listen" json:"listen"`
	// AllowedOrigins lists origins accepted for WebSocket upgrades. Empty means same host only.
	AllowedOrigins []string `mapstructure:"allowed_origins" toml:"allowed_origins" json:"allowed_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/lookout/logs when empty.
	LogDir     string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days"`
}

// Duration is a time.Duration stored as a Go duration string ("30s").
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// JSONSchema describes Duration as a duration string.
func (Duration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
		Description: "Go duration string, e.g. 30s or 1m30s",
	}
}
