// Package viewport implements a scroll source over an in-process viewport
// whose offsets are pushed by its owner (a TUI pager, a WebSocket client).
package viewport

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/ui/mainloop"
)

// ErrDetached is returned once the viewport is gone.
var ErrDetached = errors.New("viewport detached")

const coalesceKey = "scroll"

// Source implements port.ScrollSource. Offsets are pushed with Update and
// listeners run when the offset actually moves.
type Source struct {
	mu        sync.Mutex
	offset    entity.WindowScroll
	detached  bool
	listeners map[uint64]func()
	nextID    uint64

	coalescer *mainloop.Coalescer
}

// Option configures a Source.
type Option func(*Source)

// WithCoalescer merges bursts of scroll notifications into one task per
// flush of c. Without it listeners run synchronously inside Update.
func WithCoalescer(c *mainloop.Coalescer) Option {
	return func(s *Source) {
		s.coalescer = c
	}
}

// New creates an attached viewport at offset (0, 0).
func New(opts ...Option) *Source {
	s := &Source{listeners: make(map[uint64]func())}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update moves the viewport. It is a no-op when the offset is unchanged or
// the viewport is detached.
func (s *Source) Update(x, y float64) {
	s.mu.Lock()
	next := entity.WindowScroll{X: x, Y: y}
	if s.detached || next == s.offset {
		s.mu.Unlock()
		return
	}
	s.offset = next
	s.mu.Unlock()

	if s.coalescer != nil {
		s.coalescer.Post(coalesceKey, s.fire)
		return
	}
	s.fire()
}

func (s *Source) fire() {
	s.mu.Lock()
	if s.detached {
		s.mu.Unlock()
		return
	}
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// ScrollOffset implements port.ScrollSource.
func (s *Source) ScrollOffset() (entity.WindowScroll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached {
		return entity.WindowScroll{}, ErrDetached
	}
	return s.offset, nil
}

// AddScrollListener implements port.ScrollSource.
func (s *Source) AddScrollListener(fn func()) (func(), error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil listener", port.ErrRegistration)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached {
		return nil, ErrDetached
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}, nil
}

// Listeners returns the number of registered listeners.
func (s *Source) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// Detach marks the viewport as gone. Reads fail from now on and pending
// notifications are dropped.
func (s *Source) Detach() {
	s.mu.Lock()
	s.detached = true
	s.mu.Unlock()
}

// Notify fires listeners without moving the viewport, e.g. after a resize.
func (s *Source) Notify() {
	if s.coalescer != nil {
		s.coalescer.Post(coalesceKey, s.fire)
		return
	}
	s.fire()
}

var _ port.ScrollSource = (*Source)(nil)
