package observer

import (
	"errors"
	"sync"

	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/domain/entity"
)

var errNoListenerAPI = errors.New("listener API not supported")

type fakeQuery struct {
	mu        sync.Mutex
	media     string
	matches   bool
	addErr    error
	listeners map[int]func(bool)
	nextID    int
	removed   int
}

func (q *fakeQuery) Media() string { return q.media }

func (q *fakeQuery) Matches() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.matches
}

func (q *fakeQuery) AddListener(fn func(bool)) (func(), error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.addErr != nil {
		return nil, q.addErr
	}
	id := q.nextID
	q.nextID++
	q.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			q.mu.Lock()
			delete(q.listeners, id)
			q.removed++
			q.mu.Unlock()
		})
	}, nil
}

func (q *fakeQuery) set(matches bool) {
	q.mu.Lock()
	q.matches = matches
	fns := make([]func(bool), 0, len(q.listeners))
	for _, fn := range q.listeners {
		fns = append(fns, fn)
	}
	q.mu.Unlock()

	for _, fn := range fns {
		fn(matches)
	}
}

func (q *fakeQuery) listenerCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.listeners)
}

// fakeEnv is an in-memory MediaEnvironment that fires listeners synchronously.
type fakeEnv struct {
	queries map[string]*fakeQuery
}

func newFakeEnv(dark, high, medium bool) *fakeEnv {
	env := &fakeEnv{queries: map[string]*fakeQuery{}}
	for kind, v := range map[entity.SignalKind]bool{
		entity.SignalDark:           dark,
		entity.SignalHighContrast:   high,
		entity.SignalMediumContrast: medium,
	} {
		env.queries[kind.Media()] = &fakeQuery{
			media:     kind.Media(),
			matches:   v,
			listeners: map[int]func(bool){},
		}
	}
	return env
}

func (e *fakeEnv) MatchMedia(query string) (port.MediaQuery, error) {
	q, ok := e.queries[query]
	if !ok {
		return nil, port.ErrSignalUnavailable
	}
	return q, nil
}

func (e *fakeEnv) query(kind entity.SignalKind) *fakeQuery {
	return e.queries[kind.Media()]
}

func (e *fakeEnv) totalListeners() int {
	n := 0
	for _, q := range e.queries {
		n += q.listenerCount()
	}
	return n
}

// headlessEnv answers every query with ErrSignalUnavailable.
type headlessEnv struct{}

func (headlessEnv) MatchMedia(string) (port.MediaQuery, error) {
	return nil, port.ErrSignalUnavailable
}

// recorder collects callback invocations.
type recorder struct {
	mu    sync.Mutex
	calls []entity.SystemPreferences
}

func (r *recorder) callback() PreferenceCallback {
	return func(p entity.SystemPreferences) {
		r.mu.Lock()
		r.calls = append(r.calls, p)
		r.mu.Unlock()
	}
}

func (r *recorder) snapshot() []entity.SystemPreferences {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.SystemPreferences, len(r.calls))
	copy(out, r.calls)
	return out
}

type fakeScrollSource struct {
	mu        sync.Mutex
	offset    entity.WindowScroll
	readErr   error
	addErr    error
	listeners map[int]func()
	nextID    int
}

func newFakeScrollSource(x, y float64) *fakeScrollSource {
	return &fakeScrollSource{
		offset:    entity.WindowScroll{X: x, Y: y},
		listeners: map[int]func(){},
	}
}

func (s *fakeScrollSource) ScrollOffset() (entity.WindowScroll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return entity.WindowScroll{}, s.readErr
	}
	return s.offset, nil
}

func (s *fakeScrollSource) AddScrollListener(fn func()) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addErr != nil {
		return nil, s.addErr
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

// scroll moves the viewport and fires listeners. A non-nil readErr makes the
// following reads fail.
func (s *fakeScrollSource) scroll(x, y float64, readErr error) {
	s.mu.Lock()
	s.offset = entity.WindowScroll{X: x, Y: y}
	s.readErr = readErr
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (s *fakeScrollSource) listenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
