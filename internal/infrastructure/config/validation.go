package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	domainvalidation "github.com/bnema/lookout/internal/domain/validation"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config validation failed")

// Validate checks every section and reports all problems at once.
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalid)
	}

	var validationErrors []string
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateDetection(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string

	switch config.Appearance.ColorScheme {
	case ColorSchemeDefault, ColorSchemePreferDark, ColorSchemePreferLight:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("appearance.color_scheme must be one of default, prefer-dark, prefer-light (got %q)", config.Appearance.ColorScheme))
	}

	switch config.Appearance.Contrast {
	case ContrastDefault, ContrastStandard, ContrastMedium, ContrastHigh:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("appearance.contrast must be one of default, standard, medium, high (got %q)", config.Appearance.Contrast))
	}

	validationErrors = append(validationErrors, domainvalidation.ValidateMetaColors("appearance", map[string]string{
		"light_meta_color":         config.Appearance.LightMetaColor,
		"dark_meta_color":          config.Appearance.DarkMetaColor,
		"high_contrast_meta_color": config.Appearance.HighContrastMetaColor,
	})...)
	return validationErrors
}

func validateDetection(config *Config) []string {
	if config.Detection.PollInterval < 0 {
		return []string{"detection.poll_interval must be non-negative"}
	}
	return nil
}

func validateServer(config *Config) []string {
	var validationErrors []string
	if !domainvalidation.IsListenAddress(config.Server.Listen) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("server.listen must be a host:port address (got %q)", config.Server.Listen))
	}
	for i, origin := range config.Server.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("server.allowed_origins[%d] must not be empty", i))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	if _, err := zerolog.ParseLevel(strings.ToLower(config.Logging.Level)); err != nil || config.Logging.Level == "" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

// normalizeConfig lowercases enum-like values and maps empty ones to their defaults.
func normalizeConfig(config *Config) {
	switch scheme := ColorSchemeOverride(strings.ToLower(strings.TrimSpace(string(config.Appearance.ColorScheme)))); scheme {
	case "":
		config.Appearance.ColorScheme = ColorSchemeDefault
	case "dark":
		config.Appearance.ColorScheme = ColorSchemePreferDark
	case "light":
		config.Appearance.ColorScheme = ColorSchemePreferLight
	default:
		config.Appearance.ColorScheme = scheme
	}

	switch contrast := ContrastOverride(strings.ToLower(strings.TrimSpace(string(config.Appearance.Contrast)))); contrast {
	case "":
		config.Appearance.Contrast = ContrastDefault
	case "more":
		config.Appearance.Contrast = ContrastMedium
	default:
		config.Appearance.Contrast = contrast
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
	config.Server.Listen = strings.TrimSpace(config.Server.Listen)
}
