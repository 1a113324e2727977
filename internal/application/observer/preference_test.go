package observer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lookout/internal/application/port/mocks"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/logging"
)

func logCtx(buf *bytes.Buffer) context.Context {
	logger := logging.NewWithWriter(logging.Config{Level: zerolog.DebugLevel, Format: "json"}, buf)
	return logging.WithContext(context.Background(), logger)
}

func TestPreferenceObserver_InitialSnapshot(t *testing.T) {
	for _, dark := range []bool{false, true} {
		for _, high := range []bool{false, true} {
			for _, medium := range []bool{false, true} {
				t.Run(fmt.Sprintf("dark=%v high=%v medium=%v", dark, high, medium), func(t *testing.T) {
					env := newFakeEnv(dark, high, medium)
					rec := &recorder{}

					obs := NewPreferenceObserver(context.Background(), env, WithCallback(rec.callback()))
					obs.Activate()
					defer obs.Deactivate()

					calls := rec.snapshot()
					require.Len(t, calls, 1)
					assert.Equal(t, entity.ResolvePreferences(dark, high, medium), calls[0])
				})
			}
		}
	}
}

func TestPreferenceObserver_CallOnMountDisabled(t *testing.T) {
	env := newFakeEnv(true, false, false)
	rec := &recorder{}

	obs := NewPreferenceObserver(context.Background(), env,
		WithCallback(rec.callback()),
		WithCallOnMount(false),
	)
	obs.Activate()
	defer obs.Deactivate()

	assert.Empty(t, rec.snapshot())
	assert.Equal(t, 3, obs.Listeners())

	env.query(entity.SignalDark).set(false)
	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, entity.DefaultPreferences(), calls[0])
}

func TestPreferenceObserver_ChangeRecomputesFullSnapshot(t *testing.T) {
	env := newFakeEnv(true, false, true)
	rec := &recorder{}

	obs := NewPreferenceObserver(context.Background(), env, WithCallback(rec.callback()))
	obs.Activate()
	defer obs.Deactivate()

	env.query(entity.SignalHighContrast).set(true)

	calls := rec.snapshot()
	require.Len(t, calls, 2)
	assert.Equal(t, entity.SystemPreferences{Theme: entity.ThemeDark, Contrast: entity.ContrastMedium}, calls[0])
	assert.Equal(t, entity.SystemPreferences{Theme: entity.ThemeDark, Contrast: entity.ContrastHigh}, calls[1])
}

func TestPreferenceObserver_LatestCallbackWins(t *testing.T) {
	env := newFakeEnv(false, false, false)
	a := &recorder{}
	b := &recorder{}

	obs := NewPreferenceObserver(context.Background(), env, WithCallback(a.callback()))
	obs.Activate()
	defer obs.Deactivate()
	require.Len(t, a.snapshot(), 1, "mount goes to A")

	obs.SetCallback(b.callback())
	env.query(entity.SignalDark).set(true)

	assert.Len(t, a.snapshot(), 1, "A must not see changes after being replaced")
	calls := b.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, entity.ThemeDark, calls[0].Theme)
	assert.Equal(t, 3, obs.Listeners(), "swapping callbacks must not re-register")
}

func TestPreferenceObserver_DeactivateIsIdempotent(t *testing.T) {
	env := newFakeEnv(false, false, false)
	rec := &recorder{}

	obs := NewPreferenceObserver(context.Background(), env, WithCallback(rec.callback()))
	obs.Activate()
	require.Equal(t, 3, env.totalListeners())

	obs.Deactivate()
	obs.Deactivate()

	assert.False(t, obs.Active())
	assert.Equal(t, 0, env.totalListeners())
	for _, q := range env.queries {
		assert.Equal(t, 1, q.removed)
	}

	env.query(entity.SignalDark).set(true)
	assert.Len(t, rec.snapshot(), 1, "only the mount call")
}

func TestPreferenceObserver_DeactivateBeforeActivate(t *testing.T) {
	env := newFakeEnv(true, false, false)
	rec := &recorder{}

	obs := NewPreferenceObserver(context.Background(), env, WithCallback(rec.callback()))
	obs.Deactivate()
	obs.Activate()

	assert.Empty(t, rec.snapshot())
	assert.Equal(t, 0, env.totalListeners())
}

func TestPreferenceObserver_RegistrationFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	env := newFakeEnv(false, false, false)
	env.query(entity.SignalDark).addErr = errNoListenerAPI
	rec := &recorder{}

	obs := NewPreferenceObserver(logCtx(&buf), env, WithCallback(rec.callback()))
	obs.Activate()

	assert.Equal(t, 2, obs.Listeners())
	assert.Contains(t, buf.String(), "failed to register preference listener")
	assert.Contains(t, buf.String(), `"level":"warn"`)

	env.query(entity.SignalHighContrast).set(true)
	calls := rec.snapshot()
	require.Len(t, calls, 2)
	assert.Equal(t, entity.ContrastHigh, calls[1].Contrast)

	assert.NotPanics(t, func() {
		obs.Deactivate()
		obs.Deactivate()
	})
	assert.Equal(t, 0, env.totalListeners())
}

func TestPreferenceObserver_HeadlessDefaults(t *testing.T) {
	for name, obs := range map[string]*PreferenceObserver{
		"headless": NewPreferenceObserver(context.Background(), headlessEnv{}),
		"nil":      NewPreferenceObserver(context.Background(), nil),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, entity.SystemPreferences{Theme: entity.ThemeLight, Contrast: entity.ContrastStandard}, obs.Snapshot())
		})
	}

	rec := &recorder{}
	obs := NewPreferenceObserver(context.Background(), headlessEnv{}, WithCallback(rec.callback()))
	obs.Activate()
	defer obs.Deactivate()

	require.Len(t, rec.snapshot(), 1)
	assert.Equal(t, entity.DefaultPreferences(), rec.snapshot()[0])
	assert.Equal(t, 0, obs.Listeners())
}

func TestQueryPreferences_NilEnv(t *testing.T) {
	assert.Equal(t, entity.DefaultPreferences(), QueryPreferences(nil))
}

func TestPreferenceObserver_CallbackPanicDoesNotStopObservation(t *testing.T) {
	env := newFakeEnv(false, false, false)
	calls := 0

	obs := NewPreferenceObserver(context.Background(), env, WithCallback(func(entity.SystemPreferences) {
		calls++
		panic("boom")
	}))

	assert.NotPanics(t, obs.Activate)
	assert.NotPanics(t, func() { env.query(entity.SignalDark).set(true) })
	assert.Equal(t, 2, calls)
	obs.Deactivate()
}

func TestPreferenceObserver_MountRunsBeforeChanges(t *testing.T) {
	env := newFakeEnv(false, false, false)
	rec := &recorder{}
	started := make(chan struct{})

	obs := NewPreferenceObserver(context.Background(), env, WithCallback(func(p entity.SystemPreferences) {
		rec.callback()(p)
		if len(rec.snapshot()) == 1 {
			go func() {
				close(started)
				env.query(entity.SignalDark).set(true)
			}()
			<-started
			// Give the change a chance to race the mount callback.
			time.Sleep(5 * time.Millisecond)
		}
	}))
	obs.Activate()
	defer obs.Deactivate()

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, time.Millisecond)
	calls := rec.snapshot()
	assert.Equal(t, entity.ThemeLight, calls[0].Theme)
	assert.Equal(t, entity.ThemeDark, calls[1].Theme)
}

func TestPreferenceObserver_DeactivateFromCallback(t *testing.T) {
	env := newFakeEnv(false, false, false)

	var obs *PreferenceObserver
	obs = NewPreferenceObserver(context.Background(), env, WithCallback(func(entity.SystemPreferences) {
		obs.Deactivate()
	}))

	done := make(chan struct{})
	go func() {
		obs.Activate()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deactivating from the mount callback deadlocked")
	}
	assert.Equal(t, 0, env.totalListeners())
}

func TestPreferenceObserver_DefaultHandlerAppliesSink(t *testing.T) {
	env := newFakeEnv(true, true, false)
	sink := mocks.NewMockPresentationSink(t)
	sink.EXPECT().ApplyThemeClass("dark contrast-high").Return(nil).Once()
	sink.EXPECT().SetMetaColor("#000000").Return(nil).Once()

	obs := NewPreferenceObserver(context.Background(), env, WithPresentationSink(sink, DefaultMetaColors()))
	obs.Activate()
	obs.Deactivate()
}

func TestDefaultPreferenceHandler_SwallowsSinkErrors(t *testing.T) {
	var buf bytes.Buffer
	sink := mocks.NewMockPresentationSink(t)
	sink.EXPECT().ApplyThemeClass("light").Return(errors.New("document is read-only")).Once()
	sink.EXPECT().SetMetaColor("#ffffff").Return(errors.New("no head element")).Once()

	handler := DefaultPreferenceHandler(logCtx(&buf), sink, DefaultMetaColors())
	assert.NotPanics(t, func() { handler(entity.DefaultPreferences()) })

	assert.Contains(t, buf.String(), "failed to apply theme class")
	assert.Contains(t, buf.String(), "failed to set meta color")
	assert.Contains(t, buf.String(), "presentation side effect failed")
}

func TestDefaultPreferenceHandler_SwallowsSinkPanic(t *testing.T) {
	var buf bytes.Buffer
	sink := mocks.NewMockPresentationSink(t)
	sink.EXPECT().ApplyThemeClass("dark").RunAndReturn(func(string) error {
		panic("dom gone")
	}).Once()

	handler := DefaultPreferenceHandler(logCtx(&buf), sink, DefaultMetaColors())
	assert.NotPanics(t, func() {
		handler(entity.SystemPreferences{Theme: entity.ThemeDark, Contrast: entity.ContrastStandard})
	})
	assert.Contains(t, buf.String(), "presentation side effect panicked")
}

func TestDefaultPreferenceHandler_NilSink(t *testing.T) {
	handler := DefaultPreferenceHandler(context.Background(), nil, DefaultMetaColors())
	assert.NotPanics(t, func() { handler(entity.DefaultPreferences()) })
}

func TestMetaColors_For(t *testing.T) {
	c := DefaultMetaColors()
	assert.Equal(t, c.Light, c.For(entity.DefaultPreferences()))
	assert.Equal(t, c.Dark, c.For(entity.SystemPreferences{Theme: entity.ThemeDark, Contrast: entity.ContrastMedium}))
	assert.Equal(t, c.HighContrast, c.For(entity.SystemPreferences{Theme: entity.ThemeLight, Contrast: entity.ContrastHigh}))

	c.HighContrast = ""
	assert.Equal(t, c.Dark, c.For(entity.SystemPreferences{Theme: entity.ThemeDark, Contrast: entity.ContrastHigh}))
}
