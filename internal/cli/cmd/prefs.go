package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/lookout/internal/application/observer"
	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/infrastructure/mediaquery"
	"github.com/bnema/lookout/internal/logging"
)

var (
	prefsJSON  bool
	prefsWatch bool
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show the current color scheme and contrast preferences",
	Long: `Resolve the desktop's color scheme and contrast preferences and print them.

With --watch, keep running and print a line every time the preferences change.

Examples:
  lookout prefs
  lookout prefs --json
  lookout prefs --watch --json   # one JSON object per change`,
	Args: cobra.NoArgs,
	RunE: runPrefs,
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.Flags().BoolVar(&prefsJSON, "json", false, "print JSON instead of styled text")
	prefsCmd.Flags().BoolVarP(&prefsWatch, "watch", "w", false, "print every change until interrupted")
}

// prefsOutput is the JSON shape of a snapshot.
type prefsOutput struct {
	entity.SystemPreferences
	Class   string         `json:"class"`
	Signals []signalOutput `json:"signals,omitempty"`
}

type signalOutput struct {
	Media   string `json:"media"`
	Matches bool   `json:"matches"`
	Source  string `json:"source,omitempty"`
}

func runPrefs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	rt := app.Runtime
	renderer := styles.NewPrefsRenderer(app.Theme)

	if !prefsWatch {
		prefs := observer.QueryPreferences(rt.Env)
		sources := signalSources(rt.Env)
		if prefsJSON {
			return writeJSON(newPrefsOutput(prefs, sources))
		}
		fmt.Println(renderer.Render(prefs, sources))
		return nil
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obs := observer.NewPreferenceObserver(ctx, rt.Env, observer.WithCallback(func(prefs entity.SystemPreferences) {
		if prefsJSON {
			if err := writeJSON(newPrefsOutput(prefs, nil)); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Msg("failed to write snapshot")
			}
			return
		}
		fmt.Println(renderer.RenderLine(prefs))
	}))
	obs.Activate()
	defer obs.Deactivate()

	return runUntilDone(ctx, rt.Run)
}

// signalSources reports every signal's state in display order.
func signalSources(env *mediaquery.Environment) []styles.SignalSource {
	states := env.States()
	sources := make([]styles.SignalSource, 0, len(states))
	for _, kind := range entity.SignalKinds() {
		state, ok := states[kind]
		if !ok {
			continue
		}
		sources = append(sources, styles.SignalSource{
			Media:   kind.Media(),
			Matches: state.Matches,
			Source:  state.Source,
		})
	}
	return sources
}

func newPrefsOutput(prefs entity.SystemPreferences, sources []styles.SignalSource) prefsOutput {
	out := prefsOutput{SystemPreferences: prefs, Class: prefs.ClassName()}
	for _, s := range sources {
		out.Signals = append(out.Signals, signalOutput{Media: s.Media, Matches: s.Matches, Source: s.Source})
	}
	return out
}

func writeJSON(v any) error {
	return json.NewEncoder(os.Stdout).Encode(v)
}

// runUntilDone runs fn and treats cancellation of ctx as a clean exit.
func runUntilDone(ctx context.Context, fn func(context.Context) error) error {
	err := fn(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
