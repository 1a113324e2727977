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

type scrollSubscriber struct {
	fn func(entity.WindowScroll)
}

// ScrollObserver exposes a viewport's current scroll offset and keeps it
// current while activated.
type ScrollObserver struct {
	log zerolog.Logger
	src port.ScrollSource

	mu       sync.RWMutex
	value    entity.WindowScroll
	fallback entity.WindowScroll
	subs     []*scrollSubscriber
	closed   bool

	activate sync.Once
	active   atomic.Bool
	teardown *teardown
}

// NewScrollObserver creates an inactive observer. defaultScroll is both the
// initial value and the fallback used when a read fails.
func NewScrollObserver(ctx context.Context, src port.ScrollSource, defaultScroll entity.WindowScroll) *ScrollObserver {
	o := &ScrollObserver{
		log:      logging.Component(ctx, "scroll-observer"),
		src:      src,
		value:    defaultScroll,
		fallback: defaultScroll,
	}
	o.teardown = newTeardown(&o.log)
	return o
}

// Activate publishes the current offset once, then listens for scroll
// notifications. Activation runs once per observer.
func (o *ScrollObserver) Activate() {
	o.activate.Do(func() {
		o.mu.RLock()
		closed := o.closed
		o.mu.RUnlock()
		if closed {
			return
		}

		o.refresh()

		if o.src == nil {
			o.log.Debug().Msg("no scroll source, keeping default")
			return
		}

		remove, err := o.src.AddScrollListener(o.handleScroll)
		if err != nil {
			o.log.Warn().
				Err(fmt.Errorf("%w: scroll: %w", port.ErrRegistration, err)).
				Msg("failed to register scroll listener")
			return
		}
		o.teardown.Add(remove)
		o.active.Store(true)
	})
}

func (o *ScrollObserver) handleScroll() {
	o.mu.RLock()
	closed := o.closed
	o.mu.RUnlock()
	if closed {
		return
	}
	o.refresh()
}

func (o *ScrollObserver) refresh() {
	o.mu.RLock()
	next := o.fallback
	o.mu.RUnlock()

	if o.src != nil {
		offset, err := o.src.ScrollOffset()
		if err != nil {
			o.log.Warn().Err(err).Str("default", next.String()).Msg("failed to read scroll offset, using default")
		} else {
			next = offset
		}
	}
	o.publish(next)
}

func (o *ScrollObserver) publish(v entity.WindowScroll) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.value = v
	subs := make([]*scrollSubscriber, len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	for _, sub := range subs {
		o.notify(sub, v)
	}
}

func (o *ScrollObserver) notify(sub *scrollSubscriber, v entity.WindowScroll) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error().Interface("panic", r).Msg("scroll subscriber panicked")
		}
	}()
	sub.fn(v)
}

// Value returns the most recently published offset.
func (o *ScrollObserver) Value() entity.WindowScroll {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// SetDefault changes the fallback used by later failed reads. It does not
// re-run activation.
func (o *ScrollObserver) SetDefault(v entity.WindowScroll) {
	o.mu.Lock()
	o.fallback = v
	o.mu.Unlock()
}

// OnChange registers fn to run on every publish. Returns a function to unregister it.
func (o *ScrollObserver) OnChange(fn func(entity.WindowScroll)) func() {
	if fn == nil {
		return func() {}
	}

	sub := &scrollSubscriber{fn: fn}
	o.mu.Lock()
	o.subs = append(o.subs, sub)
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, s := range o.subs {
			if s == sub {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

// Listening reports whether the scroll listener is registered.
func (o *ScrollObserver) Listening() bool {
	return o.active.Load()
}

// Deactivate unregisters the scroll listener. Idempotent, and a no-op when
// registration failed. Value is frozen afterwards.
func (o *ScrollObserver) Deactivate() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.subs = nil
	o.mu.Unlock()

	o.active.Store(false)
	o.teardown.Release()
}
