// Package bootstrap wires configuration, logging, the main loop and the
// media environment into a runtime shared by every command.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/lookout/internal/application/observer"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/infrastructure/colorscheme"
	"github.com/bnema/lookout/internal/infrastructure/config"
	"github.com/bnema/lookout/internal/infrastructure/mediaquery"
	"github.com/bnema/lookout/internal/logging"
	"github.com/bnema/lookout/internal/ui/mainloop"
)

// Options controls how the runtime is assembled.
type Options struct {
	// ConfigFile overrides the XDG config path.
	ConfigFile string
	// LogLevel overrides logging.level when non-empty.
	LogLevel string
	// Quiet discards console logs unless file logging is enabled. Used by
	// commands whose stdout/stderr belong to a TUI.
	Quiet bool
	// Portal overrides the settings portal; nil uses the session bus when
	// detection.portal is enabled.
	Portal colorscheme.PortalSettings
}

// Runtime holds the long-lived collaborators of a command.
type Runtime struct {
	ctx        context.Context
	log        zerolog.Logger
	Manager    *config.Manager
	Env        *mediaquery.Environment
	Loop       *mainloop.Loop
	logCleanup func()
}

// Start loads configuration, sets up logging and builds the media environment.
// Listener callbacks of the environment are delivered on Loop.
func Start(opts Options) (*Runtime, error) {
	// Until the configured logger exists, quiet commands log nowhere.
	bootLog := logging.NewFromEnv()
	if opts.Quiet {
		bootLog = zerolog.Nop()
	}
	managerOpts := []config.ManagerOption{config.WithLogger(bootLog)}
	if opts.ConfigFile != "" {
		managerOpts = append(managerOpts, config.WithConfigFile(opts.ConfigFile))
	}
	manager, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, err
	}
	cfg := manager.Get()

	logger, logCleanup, err := newLogger(cfg, opts)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)
	manager.SetLogger(logging.Tag(logger, "config"))

	chain := colorscheme.ChainOptionsFromConfig(cfg.Detection)
	if opts.Portal != nil && cfg.Detection.Portal {
		chain.Portal = opts.Portal
	}
	resolvers := colorscheme.NewResolvers(colorscheme.NewManagerAdapter(manager), chain)

	loop := mainloop.New()
	envOpts := []mediaquery.Option{
		mediaquery.WithPoster(loop.Post),
		mediaquery.WithPollInterval(cfg.Detection.PollInterval.Std()),
	}
	if chain.Portal != nil {
		envOpts = append(envOpts, mediaquery.WithPortal(chain.Portal))
	}
	if cfg.Detection.WatchDconf {
		envOpts = append(envOpts, mediaquery.WithDconfWatch(mediaquery.DefaultDconfPath()))
	}
	env := mediaquery.New(ctx, resolvers, envOpts...)

	// Config overrides are part of every signal, so a reload re-resolves them.
	manager.OnConfigChange(func(*config.Config) {
		logger.Debug().Msg("configuration reloaded, refreshing signals")
		env.Refresh()
	})

	logger.Debug().
		Str("config", manager.ConfigFile()).
		Bool("headless", env.Headless()).
		Msg("runtime started")

	return &Runtime{
		ctx:        ctx,
		log:        logger,
		Manager:    manager,
		Env:        env,
		Loop:       loop,
		logCleanup: logCleanup,
	}, nil
}

func newLogger(cfg *config.Config, opts Options) (zerolog.Logger, func(), error) {
	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logCfg := logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.ConsoleTimeFormat,
	}

	fileCfg := logging.FileConfig{
		Enabled:       cfg.Logging.EnableFileLog,
		WriteToStderr: !opts.Quiet,
		MaxSizeMB:     cfg.Logging.MaxSizeMB,
		MaxBackups:    cfg.Logging.MaxBackups,
		MaxAgeDays:    cfg.Logging.MaxAgeDays,
	}
	if fileCfg.Enabled {
		dir, err := cfg.LogDir()
		if err != nil {
			return zerolog.Nop(), func() {}, fmt.Errorf("resolve log dir: %w", err)
		}
		fileCfg.Dir = dir
	}

	logger, cleanup, err := logging.NewWithFile(logCfg, fileCfg)
	if err != nil {
		// File logging is optional; keep the console logger.
		logger.Warn().Err(err).Msg("file logging disabled")
	}
	return logger, cleanup, nil
}

// Ctx returns the runtime context carrying the logger.
func (r *Runtime) Ctx() context.Context {
	return r.ctx
}

// Config returns the current configuration.
func (r *Runtime) Config() *config.Config {
	return r.Manager.Get()
}

// MetaColors returns the configured theme colors.
func (r *Runtime) MetaColors() observer.MetaColors {
	cfg := r.Config()
	return observer.MetaColors{
		Light:        cfg.Appearance.LightMetaColor,
		Dark:         cfg.Appearance.DarkMetaColor,
		HighContrast: cfg.Appearance.HighContrastMetaColor,
	}
}

// DefaultScroll returns the configured scroll fallback.
func (r *Runtime) DefaultScroll() entity.WindowScroll {
	cfg := r.Config()
	return entity.WindowScroll{X: cfg.Scroll.DefaultX, Y: cfg.Scroll.DefaultY}
}

// Run drives the main loop, the environment's change triggers and config
// watching until ctx is cancelled.
func (r *Runtime) Run(ctx context.Context) error {
	if err := r.Manager.Watch(); err != nil {
		r.log.Warn().Err(err).Msg("config watching disabled")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.Loop.Run(gctx) })
	g.Go(func() error { return r.Env.Run(gctx) })

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close stops notification delivery and flushes logs.
func (r *Runtime) Close() {
	r.Env.Close()
	r.Loop.Stop()
	if r.logCleanup != nil {
		r.logCleanup()
	}
}
