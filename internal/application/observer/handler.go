package observer

import (
	"context"
	"fmt"

	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/logging"
)

// MetaColors are the theme colors advertised through PresentationSink.SetMetaColor.
type MetaColors struct {
	Light        string
	Dark         string
	HighContrast string
}

// DefaultMetaColors returns the built-in meta colors.
func DefaultMetaColors() MetaColors {
	return MetaColors{
		Light:        "#ffffff",
		Dark:         "#0a0a0b",
		HighContrast: "#000000",
	}
}

// For picks the color for a snapshot. High contrast wins when configured.
func (c MetaColors) For(prefs entity.SystemPreferences) string {
	if prefs.Contrast == entity.ContrastHigh && c.HighContrast != "" {
		return c.HighContrast
	}
	if prefs.IsDark() {
		return c.Dark
	}
	return c.Light
}

// DefaultPreferenceHandler returns the built-in callback: it applies the
// snapshot's root class and meta color to sink. Sink failures, including
// panics, are logged and never reach the caller.
func DefaultPreferenceHandler(ctx context.Context, sink port.PresentationSink, colors MetaColors) PreferenceCallback {
	log := logging.Component(ctx, "presentation")

	return func(prefs entity.SystemPreferences) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("class", prefs.ClassName()).
					Msg("presentation side effect panicked")
			}
		}()

		if sink == nil {
			log.Debug().Str("prefs", prefs.String()).Msg("no presentation sink, skipping side effects")
			return
		}

		className := prefs.ClassName()
		if err := sink.ApplyThemeClass(className); err != nil {
			log.Warn().
				Err(fmt.Errorf("%w: apply class %q: %w", port.ErrSideEffect, className, err)).
				Msg("failed to apply theme class")
		}

		color := colors.For(prefs)
		if color == "" {
			return
		}
		if err := sink.SetMetaColor(color); err != nil {
			log.Warn().
				Err(fmt.Errorf("%w: set meta color %q: %w", port.ErrSideEffect, color, err)).
				Msg("failed to set meta color")
		}
	}
}
