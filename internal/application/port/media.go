package port

import (
	"errors"

	"github.com/bnema/lookout/internal/domain/entity"
)

var (
	// ErrSignalUnavailable means the environment exposes no queryable signal,
	// e.g. a headless session without a desktop portal.
	ErrSignalUnavailable = errors.New("preference signal unavailable")

	// ErrRegistration means a change listener could not be registered.
	ErrRegistration = errors.New("listener registration failed")

	// ErrSideEffect means a presentation side effect could not be applied.
	ErrSideEffect = errors.New("presentation side effect failed")
)

// MediaQuery is a boolean preference signal that supports change notification.
type MediaQuery interface {
	// Media returns the query string, e.g. "(prefers-color-scheme: dark)".
	Media() string

	// Matches reports the current value of the signal.
	Matches() bool

	// AddListener registers fn to be called when the value changes.
	// The returned function removes the listener and is safe to call more than once.
	AddListener(fn func(matches bool)) (remove func(), err error)
}

// MediaEnvironment gives access to preference signals.
type MediaEnvironment interface {
	// MatchMedia returns the signal for query. A signal with no answer yet
	// still returns a query that does not match and notifies once it can be
	// answered. Returns ErrSignalUnavailable when the environment has no
	// source for the query at all.
	MatchMedia(query string) (MediaQuery, error)
}

// ScrollSource exposes a viewport's scroll offset.
type ScrollSource interface {
	// ScrollOffset reads the current offset.
	ScrollOffset() (entity.WindowScroll, error)

	// AddScrollListener registers fn to be called after the viewport scrolls.
	// The returned function removes the listener and is safe to call more than once.
	AddScrollListener(fn func()) (remove func(), err error)
}

// PresentationSink receives the visual side effects of a preference change.
type PresentationSink interface {
	// ApplyThemeClass sets the root style class, e.g. "dark contrast-high".
	ApplyThemeClass(name string) error

	// SetMetaColor sets the theme color advertised to the host chrome.
	SetMetaColor(value string) error
}
