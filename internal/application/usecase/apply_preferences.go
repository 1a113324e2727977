package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/lookout/internal/application/observer"
	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/logging"
)

// ApplyPreferencesInput holds the colors advertised for each preference.
type ApplyPreferencesInput struct {
	Colors observer.MetaColors
}

// ApplyPreferencesOutput describes what was written to the sink.
type ApplyPreferencesOutput struct {
	Preferences entity.SystemPreferences
	Class       string
	Color       string
}

// ApplyPreferencesUseCase applies the current snapshot to a sink once.
// Unlike the observer's default handler, sink failures are returned.
type ApplyPreferencesUseCase struct {
	env  port.MediaEnvironment
	sink port.PresentationSink
}

// NewApplyPreferencesUseCase creates a new use case.
func NewApplyPreferencesUseCase(env port.MediaEnvironment, sink port.PresentationSink) *ApplyPreferencesUseCase {
	return &ApplyPreferencesUseCase{env: env, sink: sink}
}

// Execute queries the environment and writes the class and meta color.
func (uc *ApplyPreferencesUseCase) Execute(ctx context.Context, input ApplyPreferencesInput) (*ApplyPreferencesOutput, error) {
	log := logging.FromContext(ctx)

	prefs := observer.QueryPreferences(uc.env)
	out := &ApplyPreferencesOutput{
		Preferences: prefs,
		Class:       prefs.ClassName(),
		Color:       input.Colors.For(prefs),
	}

	if err := uc.sink.ApplyThemeClass(out.Class); err != nil {
		return nil, fmt.Errorf("%w: apply class %q: %w", port.ErrSideEffect, out.Class, err)
	}
	if out.Color != "" {
		if err := uc.sink.SetMetaColor(out.Color); err != nil {
			return nil, fmt.Errorf("%w: set meta color %q: %w", port.ErrSideEffect, out.Color, err)
		}
	}

	log.Debug().Str("class", out.Class).Str("color", out.Color).Msg("preferences applied")
	return out, nil
}
