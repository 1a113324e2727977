// Package usecase contains application business logic.
package usecase

import (
	"context"
	"sort"

	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/logging"
)

// DetectorStatus is the outcome of probing one detector.
type DetectorStatus struct {
	Name      string
	Priority  int
	Available bool
	// Detected is false when the detector was unavailable or failed.
	Detected bool
	Matches  bool
}

// SignalDiagnosis describes how one signal resolves.
type SignalDiagnosis struct {
	Kind      entity.SignalKind
	Media     string
	State     port.SignalState
	Detectors []DetectorStatus
}

// Available reports whether at least one detector can answer the signal.
func (d SignalDiagnosis) Available() bool {
	for _, det := range d.Detectors {
		if det.Available {
			return true
		}
	}
	return false
}

// DiagnosePreferencesInput contains options for the diagnosis.
type DiagnosePreferencesInput struct {
	// Refresh re-resolves every signal before reporting.
	Refresh bool
}

// DiagnosePreferencesOutput is the full report.
type DiagnosePreferencesOutput struct {
	Signals  []SignalDiagnosis
	Snapshot entity.SystemPreferences
	// Headless is true when no detector is available for any signal.
	Headless bool
}

// DiagnosePreferencesUseCase reports detector availability and results per signal.
type DiagnosePreferencesUseCase struct {
	resolvers []port.SignalResolver
}

// NewDiagnosePreferencesUseCase creates a new use case.
func NewDiagnosePreferencesUseCase(resolvers ...port.SignalResolver) *DiagnosePreferencesUseCase {
	return &DiagnosePreferencesUseCase{resolvers: resolvers}
}

// Execute probes every detector and resolves the snapshot.
func (uc *DiagnosePreferencesUseCase) Execute(ctx context.Context, input DiagnosePreferencesInput) (*DiagnosePreferencesOutput, error) {
	log := logging.Component(ctx, "diagnose-preferences")

	out := &DiagnosePreferencesOutput{Headless: true}
	states := make(map[entity.SignalKind]bool, len(uc.resolvers))

	for _, r := range uc.resolvers {
		var state port.SignalState
		if input.Refresh {
			state = r.Refresh()
		} else {
			state = r.Resolve()
		}

		diag := SignalDiagnosis{
			Kind:  r.Kind(),
			Media: r.Kind().Media(),
			State: state,
		}
		for _, det := range r.Detectors() {
			status := DetectorStatus{
				Name:      det.Name(),
				Priority:  det.Priority(),
				Available: det.Available(),
			}
			if status.Available {
				status.Matches, status.Detected = det.Detect()
			}
			diag.Detectors = append(diag.Detectors, status)
		}

		if diag.Available() {
			out.Headless = false
		}
		states[diag.Kind] = state.Matches
		out.Signals = append(out.Signals, diag)
	}

	order := make(map[entity.SignalKind]int)
	for i, k := range entity.SignalKinds() {
		order[k] = i
	}
	sort.SliceStable(out.Signals, func(i, j int) bool {
		return order[out.Signals[i].Kind] < order[out.Signals[j].Kind]
	})

	out.Snapshot = entity.ResolvePreferences(
		states[entity.SignalDark],
		states[entity.SignalHighContrast],
		states[entity.SignalMediumContrast],
	)

	log.Debug().
		Int("signals", len(out.Signals)).
		Bool("headless", out.Headless).
		Str("prefs", out.Snapshot.String()).
		Msg("preference diagnosis complete")

	return out, nil
}
