// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"

	"github.com/bnema/lookout/internal/application/observer"
	"github.com/bnema/lookout/internal/bootstrap"
	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/domain/build"
	"github.com/bnema/lookout/internal/infrastructure/config"
)

// App holds CLI dependencies.
type App struct {
	Runtime   *bootstrap.Runtime
	Theme     *styles.Theme
	BuildInfo build.Info
}

// NewApp starts the runtime and derives the CLI theme from the current
// system preferences.
func NewApp(opts bootstrap.Options) (*App, error) {
	rt, err := bootstrap.Start(opts)
	if err != nil {
		return nil, err
	}

	return &App{
		Runtime: rt,
		Theme:   styles.NewTheme(observer.QueryPreferences(rt.Env)),
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Runtime != nil {
		a.Runtime.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.Runtime.Ctx()
}

// Config returns the current configuration.
func (a *App) Config() *config.Config {
	return a.Runtime.Config()
}
