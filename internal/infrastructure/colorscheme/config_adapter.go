package colorscheme

import (
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/infrastructure/config"
)

// ConfigAdapter adapts config.Config to the ConfigProvider interface.
type ConfigAdapter struct {
	get func() *config.Config
}

// NewConfigAdapter creates an adapter over a fixed configuration.
func NewConfigAdapter(cfg *config.Config) *ConfigAdapter {
	return &ConfigAdapter{get: func() *config.Config { return cfg }}
}

// NewManagerAdapter creates an adapter that reads the manager's current
// configuration on every call, so reloaded overrides apply immediately.
func NewManagerAdapter(m *config.Manager) *ConfigAdapter {
	return &ConfigAdapter{get: m.Get}
}

// SignalOverride implements ConfigProvider.
func (a *ConfigAdapter) SignalOverride(kind entity.SignalKind) (matches, ok bool) {
	if a == nil || a.get == nil {
		return false, false
	}
	cfg := a.get()
	if cfg == nil {
		return false, false
	}

	switch kind {
	case entity.SignalDark:
		switch cfg.Appearance.ColorScheme {
		case config.ColorSchemePreferDark:
			return true, true
		case config.ColorSchemePreferLight:
			return false, true
		}

	case entity.SignalMediumContrast:
		switch cfg.Appearance.Contrast {
		case config.ContrastStandard:
			return false, true
		case config.ContrastMedium:
			return true, true
		}

	case entity.SignalHighContrast:
		switch cfg.Appearance.Contrast {
		case config.ContrastStandard, config.ContrastMedium:
			return false, true
		case config.ContrastHigh:
			return true, true
		}
	}
	return false, false
}
