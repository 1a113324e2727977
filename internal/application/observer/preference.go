package observer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/logging"
)

// PreferenceCallback receives a full preference snapshot.
type PreferenceCallback func(entity.SystemPreferences)

type lifecycle int

const (
	stateIdle lifecycle = iota
	stateActive
	stateClosed
)

// PreferenceObserver tracks the environment's color scheme and contrast
// preferences and invokes the current callback whenever either changes.
type PreferenceObserver struct {
	ctx context.Context
	log zerolog.Logger
	env port.MediaEnvironment

	// callback is swapped by SetCallback; listeners always read the latest one.
	callback    atomic.Pointer[PreferenceCallback]
	callOnMount bool

	lifecycleMu sync.Mutex
	state       lifecycle
	closed      atomic.Bool

	// dispatchMu serializes callback invocations, mount included.
	dispatchMu sync.Mutex
	teardown   *teardown
	registered int
}

// PreferenceOption configures a PreferenceObserver.
type PreferenceOption func(*PreferenceObserver)

// WithCallback sets the callback invoked on each snapshot.
func WithCallback(fn PreferenceCallback) PreferenceOption {
	return func(o *PreferenceObserver) {
		if fn != nil {
			o.callback.Store(&fn)
		}
	}
}

// WithCallOnMount controls whether Activate fires the callback with the
// current snapshot. Defaults to true.
func WithCallOnMount(enabled bool) PreferenceOption {
	return func(o *PreferenceObserver) {
		o.callOnMount = enabled
	}
}

// WithPresentationSink installs DefaultPreferenceHandler over sink as the callback.
func WithPresentationSink(sink port.PresentationSink, colors MetaColors) PreferenceOption {
	return func(o *PreferenceObserver) {
		fn := DefaultPreferenceHandler(o.ctx, sink, colors)
		o.callback.Store(&fn)
	}
}

// NewPreferenceObserver creates an inactive observer over env. A nil env
// behaves like a headless environment. Without WithCallback or
// WithPresentationSink the default handler runs with no sink.
func NewPreferenceObserver(ctx context.Context, env port.MediaEnvironment, opts ...PreferenceOption) *PreferenceObserver {
	log := logging.Component(ctx, "preference-observer")

	o := &PreferenceObserver{
		ctx:         ctx,
		log:         log,
		env:         env,
		callOnMount: true,
	}
	o.teardown = newTeardown(&o.log)

	for _, opt := range opts {
		opt(o)
	}
	if o.callback.Load() == nil {
		fn := DefaultPreferenceHandler(ctx, nil, DefaultMetaColors())
		o.callback.Store(&fn)
	}
	return o
}

// SetCallback replaces the callback. The next notification uses fn; the
// listener registrations are left untouched. A nil fn restores the default handler.
func (o *PreferenceObserver) SetCallback(fn PreferenceCallback) {
	if fn == nil {
		fn = DefaultPreferenceHandler(o.ctx, nil, DefaultMetaColors())
	}
	o.callback.Store(&fn)
}

// Activate registers one listener per preference signal and, if enabled,
// fires the callback once with the current snapshot before any change
// notification can be delivered. Calling it again is a no-op.
func (o *PreferenceObserver) Activate() {
	o.lifecycleMu.Lock()
	if o.state != stateIdle {
		o.lifecycleMu.Unlock()
		return
	}
	o.state = stateActive

	// Held until the mount callback returns so change notifications queue behind it.
	o.dispatchMu.Lock()
	defer o.dispatchMu.Unlock()

	for _, kind := range entity.SignalKinds() {
		o.register(kind)
	}
	registered := o.registered
	// Released before the callback so it may deactivate the observer.
	o.lifecycleMu.Unlock()

	o.log.Debug().
		Int("listeners", registered).
		Bool("call_on_mount", o.callOnMount).
		Msg("preference observer activated")

	if o.callOnMount && !o.closed.Load() {
		o.invoke(o.Snapshot())
	}
}

func (o *PreferenceObserver) register(kind entity.SignalKind) {
	if o.env == nil {
		o.log.Debug().Str("media", kind.Media()).Msg("no media environment, signal unavailable")
		return
	}

	query, err := o.env.MatchMedia(kind.Media())
	if err != nil {
		o.log.Debug().Err(err).Str("media", kind.Media()).Msg("preference signal unavailable")
		return
	}

	remove, err := query.AddListener(func(bool) { o.handleChange() })
	if err != nil {
		o.log.Warn().
			Err(fmt.Errorf("%w: %s: %w", port.ErrRegistration, kind.Media(), err)).
			Msg("failed to register preference listener")
		return
	}

	o.teardown.Add(remove)
	o.registered++
}

// handleChange recomputes the whole snapshot, whichever signal fired.
func (o *PreferenceObserver) handleChange() {
	if o.closed.Load() {
		return
	}

	o.dispatchMu.Lock()
	defer o.dispatchMu.Unlock()

	if o.closed.Load() {
		return
	}
	o.invoke(o.Snapshot())
}

func (o *PreferenceObserver) invoke(prefs entity.SystemPreferences) {
	fn := o.callback.Load()
	if fn == nil || *fn == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			o.log.Error().Interface("panic", r).Msg("preference callback panicked")
		}
	}()
	(*fn)(prefs)
}

// Snapshot queries all three signals and resolves them. Unavailable signals
// count as inactive, so a headless environment yields light/standard.
func (o *PreferenceObserver) Snapshot() entity.SystemPreferences {
	return QueryPreferences(o.env)
}

// Deactivate unregisters every listener. It is idempotent, and no new
// callback starts once it returns.
func (o *PreferenceObserver) Deactivate() {
	o.lifecycleMu.Lock()
	defer o.lifecycleMu.Unlock()

	if o.state == stateClosed {
		return
	}
	o.state = stateClosed
	o.closed.Store(true)
	o.teardown.Release()

	o.log.Debug().Msg("preference observer deactivated")
}

// Active reports whether the observer is activated and not yet torn down.
func (o *PreferenceObserver) Active() bool {
	o.lifecycleMu.Lock()
	defer o.lifecycleMu.Unlock()
	return o.state == stateActive
}

// Listeners returns how many signal listeners are currently registered.
func (o *PreferenceObserver) Listeners() int {
	return o.teardown.Len()
}

// QueryPreferences resolves the current snapshot from env.
func QueryPreferences(env port.MediaEnvironment) entity.SystemPreferences {
	if env == nil {
		return entity.DefaultPreferences()
	}

	matches := func(kind entity.SignalKind) bool {
		q, err := env.MatchMedia(kind.Media())
		if err != nil || q == nil {
			return false
		}
		return q.Matches()
	}

	return entity.ResolvePreferences(
		matches(entity.SignalDark),
		matches(entity.SignalHighContrast),
		matches(entity.SignalMediumContrast),
	)
}
