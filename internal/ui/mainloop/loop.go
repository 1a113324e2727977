// Package mainloop provides the single event-notification thread that
// serializes observer callbacks, and helpers for coalescing bursts of work.
package mainloop

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned by Run when the loop was stopped before it started.
var ErrStopped = errors.New("mainloop: stopped")

const defaultQueueSize = 64

// Loop runs posted tasks one at a time, in FIFO order, on a single goroutine.
// Tasks posted before Run starts are queued and executed once it does.
type Loop struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	stopped bool
	running bool
	done    chan struct{}
	once    sync.Once
}

// New creates an idle loop. Call Run to start executing tasks.
func New() *Loop {
	l := &Loop{
		queue: make([]func(), 0, defaultQueueSize),
		done:  make(chan struct{}),
	}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Post enqueues fn. It never blocks and is a no-op after Stop.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.queue = append(l.queue, fn)
	l.cond.Signal()
}

// Run executes tasks until ctx is cancelled or Stop is called.
// Pending tasks are dropped on exit.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		l.once.Do(func() { close(l.done) })
		return ErrStopped
	}
	if l.running {
		l.mu.Unlock()
		return errors.New("mainloop: already running")
	}
	l.running = true
	l.mu.Unlock()
	defer l.once.Do(func() { close(l.done) })

	stopWatch := context.AfterFunc(ctx, l.Stop)
	defer stopWatch()

	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.stopped {
			l.cond.Wait()
		}
		if l.stopped {
			l.queue = nil
			l.mu.Unlock()
			return ctx.Err()
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		fn()
	}
}

// Stop makes Run return after the task in progress, if any.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.cond.Broadcast()
	l.mu.Unlock()
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Invoke posts fn and waits for it to run. It returns false if the loop
// stopped before fn could run. Must not be called from a loop task.
func (l *Loop) Invoke(ctx context.Context, fn func()) bool {
	ran := make(chan struct{})
	l.Post(func() {
		fn()
		close(ran)
	})

	select {
	case <-ran:
		return true
	case <-l.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// Immediate runs tasks synchronously on the caller's goroutine.
// Useful for hosts that already serialize notifications, and for tests.
func Immediate(fn func()) {
	fn()
}
