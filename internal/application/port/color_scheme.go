package port

import "github.com/bnema/lookout/internal/domain/entity"

// SignalState is the resolved value of one preference signal.
type SignalState struct {
	// Matches indicates whether the signal is active (e.g. dark mode is preferred).
	Matches bool
	// Source identifies which detector provided this state.
	Source string
}

// SignalDetector detects one boolean preference signal from the desktop.
// Multiple detectors can be registered with different priorities.
type SignalDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   - 100+: Runtime detectors (XDG desktop portal)
	//   -  10+: Fallback detectors (gsettings, env vars)
	Priority() int

	// Available returns true if this detector can be used.
	Available() bool

	// Detect returns the detected value and whether detection succeeded.
	// Returns (matches, true) on success, (_, false) if detection failed.
	Detect() (matches bool, ok bool)
}

// SignalResolver resolves the effective value of one preference signal.
// It manages multiple detectors and respects config overrides.
type SignalResolver interface {
	// Kind returns the signal this resolver answers for.
	Kind() entity.SignalKind

	// Resolve returns the current state.
	// It checks config for explicit overrides, then queries detectors by priority.
	// If all detectors fail, the signal is inactive.
	Resolve() SignalState

	// RegisterDetector adds a detector to the resolver.
	RegisterDetector(detector SignalDetector)

	// Detectors returns the registered detectors in priority order.
	Detectors() []SignalDetector

	// Refresh forces re-evaluation and returns the new state.
	// Change callbacks fire when the match value differs from the last one.
	Refresh() SignalState

	// OnChange registers a callback for changes.
	// Returns a function to unregister the callback.
	OnChange(callback func(SignalState)) func()
}
