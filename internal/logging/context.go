package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// componentKey is the field every lookout component tags its logs with.
const componentKey = "component"

// FromContext returns the logger carried by ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// Component returns a child of the context logger tagged with name,
// e.g. "preference-observer" or "bridge".
func Component(ctx context.Context, name string) zerolog.Logger {
	return Tag(*FromContext(ctx), name)
}

// Tag returns a child of logger tagged with component name.
func Tag(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str(componentKey, name).Logger()
}

// WithComponent returns ctx carrying Component(ctx, name).
func WithComponent(ctx context.Context, name string) context.Context {
	return WithContext(ctx, Component(ctx, name))
}
