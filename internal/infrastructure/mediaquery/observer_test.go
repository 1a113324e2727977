package mediaquery

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lookout/internal/application/observer"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/infrastructure/colorscheme"
)

// overrides is a config provider whose values change between refreshes, as
// they do on a config reload.
type overrides struct {
	mu     sync.Mutex
	values map[entity.SignalKind]bool
}

func (o *overrides) SignalOverride(kind entity.SignalKind) (bool, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	v, ok := o.values[kind]
	return v, ok
}

func (o *overrides) set(kind entity.SignalKind, matches bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.values == nil {
		o.values = make(map[entity.SignalKind]bool)
	}
	o.values[kind] = matches
}

func TestPreferenceObserver_SignalAnswerableAfterActivate(t *testing.T) {
	cfg := &overrides{}
	dark := newSwitch(false)

	resolvers := map[entity.SignalKind]*colorscheme.Resolver{}
	for _, kind := range entity.SignalKinds() {
		resolvers[kind] = colorscheme.NewResolver(kind, cfg)
	}
	// Only the color scheme has a detector; both contrast signals start unanswerable.
	resolvers[entity.SignalDark].RegisterDetector(dark)

	env := New(context.Background(), resolvers)
	require.False(t, env.Headless())

	var got []entity.SystemPreferences
	obs := observer.NewPreferenceObserver(context.Background(), env,
		observer.WithCallback(func(p entity.SystemPreferences) { got = append(got, p) }))
	obs.Activate()
	defer obs.Deactivate()

	cfg.set(entity.SignalHighContrast, true)
	env.Refresh()

	require.Len(t, got, 2)
	assert.Equal(t, entity.SystemPreferences{Theme: entity.ThemeLight, Contrast: entity.ContrastStandard}, got[0])
	assert.Equal(t, entity.SystemPreferences{Theme: entity.ThemeLight, Contrast: entity.ContrastHigh}, got[1])
	assert.Equal(t, got[1], obs.Snapshot())
}

func TestPreferenceObserver_HeadlessDefaults(t *testing.T) {
	resolvers := map[entity.SignalKind]*colorscheme.Resolver{}
	for _, kind := range entity.SignalKinds() {
		resolvers[kind] = colorscheme.NewResolver(kind, nil)
	}
	env := New(context.Background(), resolvers)

	var got []entity.SystemPreferences
	obs := observer.NewPreferenceObserver(context.Background(), env,
		observer.WithCallback(func(p entity.SystemPreferences) { got = append(got, p) }))
	obs.Activate()
	defer obs.Deactivate()

	assert.Equal(t, []entity.SystemPreferences{entity.DefaultPreferences()}, got)
}
