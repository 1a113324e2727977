package colorscheme

import (
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/infrastructure/config"
)

// ChainOptions selects which detectors back each resolver.
type ChainOptions struct {
	// Portal enables the settings portal detector when non-nil.
	Portal    PortalSettings
	Gsettings bool
	Env       bool
}

// ChainOptionsFromConfig maps the detection section onto ChainOptions.
func ChainOptionsFromConfig(cfg config.DetectionConfig) ChainOptions {
	opts := ChainOptions{Gsettings: cfg.Gsettings, Env: cfg.Env}
	if cfg.Portal {
		opts.Portal = DefaultSystemPortal()
	}
	return opts
}

// NewResolvers builds one resolver per preference signal.
func NewResolvers(provider ConfigProvider, opts ChainOptions) map[entity.SignalKind]*Resolver {
	resolvers := make(map[entity.SignalKind]*Resolver, len(entity.SignalKinds()))
	for _, kind := range entity.SignalKinds() {
		r := NewResolver(kind, provider)
		if opts.Portal != nil {
			r.RegisterDetector(NewPortalDetector(kind, opts.Portal))
		}
		if opts.Env {
			r.RegisterDetector(NewEnvDetector(kind))
		}
		if opts.Gsettings {
			r.RegisterDetector(NewGsettingsDetector(kind))
		}
		resolvers[kind] = r
	}
	return resolvers
}
