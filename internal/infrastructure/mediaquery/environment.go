// Package mediaquery exposes the desktop's preference signals as media
// queries that can be matched and listened to, in the manner of a browser's
// matchMedia.
package mediaquery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/infrastructure/colorscheme"
	"github.com/bnema/lookout/internal/logging"
	"github.com/bnema/lookout/internal/ui/mainloop"
)

// Environment implements port.MediaEnvironment on top of one signal resolver
// per preference signal.
type Environment struct {
	log       zerolog.Logger
	resolvers map[entity.SignalKind]*colorscheme.Resolver
	queries   map[entity.SignalKind]*query
	post      func(func())

	portal       colorscheme.PortalSettings
	pollInterval time.Duration
	dconfPath    string

	mu      sync.Mutex
	running bool
	closed  bool
}

// Option configures an Environment.
type Option func(*Environment)

// WithPoster delivers listener callbacks through post, typically a main loop's
// Post. The default runs them on the goroutine that detected the change.
func WithPoster(post func(func())) Option {
	return func(e *Environment) {
		if post != nil {
			e.post = post
		}
	}
}

// WithPortal subscribes to SettingChanged signals from portal while running.
func WithPortal(portal colorscheme.PortalSettings) Option {
	return func(e *Environment) {
		e.portal = portal
	}
}

// WithPollInterval re-evaluates every signal periodically. Zero disables polling.
func WithPollInterval(d time.Duration) Option {
	return func(e *Environment) {
		e.pollInterval = d
	}
}

// WithDconfWatch refreshes whenever the dconf user database at path changes.
func WithDconfWatch(path string) Option {
	return func(e *Environment) {
		e.dconfPath = path
	}
}

// New creates an environment over resolvers and performs an initial refresh.
// Signals without a resolver are reported as unavailable.
func New(ctx context.Context, resolvers map[entity.SignalKind]*colorscheme.Resolver, opts ...Option) *Environment {
	e := &Environment{
		log:       logging.Component(ctx, "mediaquery"),
		resolvers: resolvers,
		queries:   make(map[entity.SignalKind]*query, len(resolvers)),
		post:      mainloop.Immediate,
	}
	for _, opt := range opts {
		opt(e)
	}

	for kind, r := range resolvers {
		if r == nil {
			continue
		}
		r.Refresh()
		e.queries[kind] = &query{env: e, kind: kind, resolver: r}
	}
	return e
}

// MatchMedia implements port.MediaEnvironment. Queries are returned for every
// signal with a resolver, answerable or not, so a signal that becomes
// answerable later (a config reload, a detector coming up) still reaches its
// listeners. An unanswerable query does not match.
func (e *Environment) MatchMedia(media string) (port.MediaQuery, error) {
	kind, ok := entity.SignalForMedia(media)
	if !ok {
		return nil, fmt.Errorf("%w: unknown media query %q", port.ErrSignalUnavailable, media)
	}
	q, ok := e.queries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrSignalUnavailable, media)
	}
	return q, nil
}

// Headless reports whether no signal can be answered at all.
func (e *Environment) Headless() bool {
	for _, q := range e.queries {
		if q.resolver.Available() {
			return false
		}
	}
	return true
}

// Refresh re-evaluates every signal. Listeners of a signal are notified only
// when that signal's value changed.
func (e *Environment) Refresh() {
	for _, kind := range entity.SignalKinds() {
		if q, ok := e.queries[kind]; ok {
			q.resolver.Refresh()
		}
	}
}

// States returns the last refreshed state of every known signal.
func (e *Environment) States() map[entity.SignalKind]port.SignalState {
	states := make(map[entity.SignalKind]port.SignalState, len(e.queries))
	for kind, q := range e.queries {
		states[kind] = q.resolver.Current()
	}
	return states
}

// Resolver returns the resolver backing kind, or nil.
func (e *Environment) Resolver(kind entity.SignalKind) *colorscheme.Resolver {
	return e.resolvers[kind]
}

// Close stops delivering listener callbacks. Listeners registered later fail
// with port.ErrRegistration.
func (e *Environment) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
}

func (e *Environment) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

var _ port.MediaEnvironment = (*Environment)(nil)

// query is one media query backed by a resolver.
type query struct {
	env      *Environment
	kind     entity.SignalKind
	resolver *colorscheme.Resolver
}

func (q *query) Media() string {
	return q.kind.Media()
}

// Matches reports the value recorded by the last refresh, so it always agrees
// with what listeners were told.
func (q *query) Matches() bool {
	return q.resolver.Current().Matches
}

func (q *query) AddListener(fn func(matches bool)) (func(), error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil listener", port.ErrRegistration)
	}
	if q.env.isClosed() {
		return nil, fmt.Errorf("%w: environment closed", port.ErrRegistration)
	}

	unregister := q.resolver.OnChange(func(state port.SignalState) {
		if q.env.isClosed() {
			return
		}
		q.env.post(func() { fn(state.Matches) })
	})

	var once sync.Once
	return func() { once.Do(unregister) }, nil
}
