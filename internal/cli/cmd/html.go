package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/lookout/internal/application/observer"
	"github.com/bnema/lookout/internal/application/usecase"
	"github.com/bnema/lookout/internal/infrastructure/document"
	"github.com/bnema/lookout/internal/logging"
)

var htmlWatch bool

var htmlCmd = &cobra.Command{
	Use:   "html FILE",
	Short: "Apply the theme class and meta color to an HTML file",
	Long: `Write the current preferences into an HTML document: the class of the
<html> element ("dark", "light contrast-high", ...) and the content of the
theme-color meta tags.

With --watch, keep the file in sync until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runHTML,
}

func init() {
	rootCmd.AddCommand(htmlCmd)
	htmlCmd.Flags().BoolVarP(&htmlWatch, "watch", "w", false, "rewrite the file on every change")
}

func runHTML(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	rt := app.Runtime
	sink := document.NewSink(args[0])

	if !htmlWatch {
		uc := usecase.NewApplyPreferencesUseCase(rt.Env, sink)
		out, err := uc.Execute(app.Ctx(), usecase.ApplyPreferencesInput{Colors: rt.MetaColors()})
		if err != nil {
			return err
		}
		fmt.Printf("%s class=%q color=%q\n", sink.Path(), out.Class, out.Color)
		return nil
	}

	// The file must be usable before anything is watched.
	if _, _, err := document.Inspect(sink.Path()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obs := observer.NewPreferenceObserver(ctx, rt.Env,
		observer.WithPresentationSink(sink, rt.MetaColors()))
	obs.Activate()
	defer obs.Deactivate()

	logging.FromContext(ctx).Info().Str("file", sink.Path()).Msg("watching preferences")
	return runUntilDone(ctx, rt.Run)
}
