package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/lookout/internal/application/observer"
	"github.com/bnema/lookout/internal/cli"
	"github.com/bnema/lookout/internal/cli/model"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/infrastructure/viewport"
	"github.com/bnema/lookout/internal/logging"
	"github.com/bnema/lookout/internal/ui/mainloop"
)

var viewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Page a document that follows the system theme",
	Long: `Open FILE in a full-screen pager. Markdown files are rendered.

The pager restyles itself whenever the color scheme or contrast preference
changes, and reports its scroll offset in the status bar.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	rt := app.Runtime
	log := logging.FromContext(app.Ctx())

	if !cli.IsTerminal(os.Stdout) {
		return fmt.Errorf("view needs a terminal; use `lookout prefs` for scripts")
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()

	coalescer := mainloop.NewCoalescer(rt.Loop.Post)
	defer coalescer.Destroy()
	src := viewport.New(viewport.WithCoalescer(coalescer))
	defer src.Detach()

	scrollObs := observer.NewScrollObserver(ctx, src, rt.DefaultScroll())
	defer scrollObs.Deactivate()

	// Assigned before the program starts; the mount command runs after.
	// Activation happens on the main loop so the mount callbacks and later
	// change notifications share one thread.
	var prefObs *observer.PreferenceObserver
	mount := func() tea.Msg {
		if !rt.Loop.Invoke(ctx, func() {
			prefObs.Activate()
			scrollObs.Activate()
		}) {
			log.Debug().Msg("main loop stopped before the pager mounted")
		}
		return nil
	}

	m := model.NewPagerModel(ctx, app.Theme, path, string(data),
		model.WithOffsetSink(src),
		model.WithMount(mount),
	)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	prefObs = observer.NewPreferenceObserver(ctx, rt.Env,
		observer.WithPresentationSink(model.NewTeaSink(p), rt.MetaColors()))
	defer prefObs.Deactivate()

	scrollObs.OnChange(func(s entity.WindowScroll) {
		p.Send(model.ScrollMsg{Scroll: s})
	})

	var (
		final  tea.Model
		runErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Quitting the pager stops the runtime.
		defer cancel()
		final, runErr = p.Run()
		return nil
	})
	g.Go(func() error {
		err := runUntilDone(gctx, rt.Run)
		if err != nil {
			p.Quit()
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}

	if pm, ok := final.(model.PagerModel); ok && pm.Err() != nil {
		log.Warn().Err(pm.Err()).Msg("pager finished with errors")
	}
	return nil
}
