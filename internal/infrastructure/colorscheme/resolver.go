// Package colorscheme resolves the desktop's preference signals (dark color
// scheme, more contrast, high contrast) from a priority-ordered chain of
// detectors, with user config taking precedence.
package colorscheme

import (
	"sort"
	"sync"

	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/domain/entity"
)

const (
	// sourceFallback indicates no detector provided the signal.
	sourceFallback = "fallback"
	// sourceConfig indicates the signal came from user config.
	sourceConfig = "config"
)

// ConfigProvider provides the user's explicit signal overrides.
type ConfigProvider interface {
	// SignalOverride returns the forced value for kind, and false when the
	// desktop should decide.
	SignalOverride(kind entity.SignalKind) (matches bool, ok bool)
}

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(port.SignalState)
}

// Resolver implements port.SignalResolver for one signal.
type Resolver struct {
	mu        sync.RWMutex
	kind      entity.SignalKind
	config    ConfigProvider
	detectors []port.SignalDetector
	current   port.SignalState
	callbacks []*callbackWrapper
}

// NewResolver creates a resolver for kind. The config provider is checked
// for explicit overrides before any detector.
func NewResolver(kind entity.SignalKind, config ConfigProvider) *Resolver {
	return &Resolver{
		kind:      kind,
		config:    config,
		detectors: make([]port.SignalDetector, 0),
		current:   port.SignalState{Matches: false, Source: sourceFallback},
	}
}

// Kind implements port.SignalResolver.
func (r *Resolver) Kind() entity.SignalKind {
	return r.kind
}

// Resolve implements port.SignalResolver.
func (r *Resolver) Resolve() port.SignalState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveInternal()
}

// resolveInternal performs the actual resolution without locking.
// Caller must hold at least a read lock.
func (r *Resolver) resolveInternal() port.SignalState {
	if r.config != nil {
		if matches, ok := r.config.SignalOverride(r.kind); ok {
			return port.SignalState{Matches: matches, Source: sourceConfig}
		}
	}

	for _, detector := range r.sortedDetectors() {
		if !detector.Available() {
			continue
		}
		if matches, ok := detector.Detect(); ok {
			return port.SignalState{Matches: matches, Source: detector.Name()}
		}
	}

	// An undetectable signal is inactive.
	return port.SignalState{Matches: false, Source: sourceFallback}
}

func (r *Resolver) sortedDetectors() []port.SignalDetector {
	sorted := make([]port.SignalDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return sorted
}

// Available reports whether the signal can be answered, either by a config
// override or by at least one available detector.
func (r *Resolver) Available() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.config != nil {
		if _, ok := r.config.SignalOverride(r.kind); ok {
			return true
		}
	}
	for _, detector := range r.detectors {
		if detector.Available() {
			return true
		}
	}
	return false
}

// RegisterDetector implements port.SignalResolver.
func (r *Resolver) RegisterDetector(detector port.SignalDetector) {
	if detector == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Detectors implements port.SignalResolver.
func (r *Resolver) Detectors() []port.SignalDetector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedDetectors()
}

// Current returns the state recorded by the last Refresh.
func (r *Resolver) Current() port.SignalState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Refresh implements port.SignalResolver.
func (r *Resolver) Refresh() port.SignalState {
	r.mu.Lock()
	next := r.resolveInternal()
	changed := next.Matches != r.current.Matches
	r.current = next

	if !changed {
		r.mu.Unlock()
		return next
	}

	// Copy callbacks to avoid holding lock during callback invocation
	callbacks := make([]*callbackWrapper, len(r.callbacks))
	copy(callbacks, r.callbacks)
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(next)
	}
	return next
}

// OnChange implements port.SignalResolver.
func (r *Resolver) OnChange(callback func(port.SignalState)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}

var _ port.SignalResolver = (*Resolver)(nil)
