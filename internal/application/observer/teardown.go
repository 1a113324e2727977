// Package observer republishes environment signals (presentation preferences,
// viewport scroll) to subscribers for the lifetime of an activation.
package observer

import (
	"sync"

	"github.com/rs/zerolog"
)

// teardown is a LIFO list of release functions that runs exactly once.
type teardown struct {
	mu       sync.Mutex
	fns      []func()
	released bool
	log      *zerolog.Logger
}

func newTeardown(log *zerolog.Logger) *teardown {
	return &teardown{log: log}
}

// Add registers fn for release. If the list was already released, fn runs now
// so late registrations cannot outlive the observer.
func (t *teardown) Add(fn func()) {
	if fn == nil {
		return
	}

	t.mu.Lock()
	if t.released {
		t.mu.Unlock()
		t.call(fn)
		return
	}
	t.fns = append(t.fns, fn)
	t.mu.Unlock()
}

// Release runs every registered function in reverse order. Later calls are no-ops.
func (t *teardown) Release() {
	t.mu.Lock()
	if t.released {
		t.mu.Unlock()
		return
	}
	t.released = true
	fns := t.fns
	t.fns = nil
	t.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		t.call(fns[i])
	}
}

// Len returns the number of pending release functions.
func (t *teardown) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.fns)
}

func (t *teardown) call(fn func()) {
	defer func() {
		if r := recover(); r != nil && t.log != nil {
			t.log.Warn().Interface("panic", r).Msg("listener release panicked")
		}
	}()
	fn()
}
