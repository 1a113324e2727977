package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/lookout/internal/application/observer"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/infrastructure/bridge"
	"github.com/bnema/lookout/internal/infrastructure/viewport"
	"github.com/bnema/lookout/internal/ui/mainloop"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Push preference and scroll changes to browsers over WebSocket",
	Long: `Start the WebSocket bridge.

Connected clients receive a message for every preference change, the root
class and theme color to apply, and the shared scroll offset. Clients may
report their own scroll offset, which is then broadcast to everyone.

Routes:
  GET /healthz       liveness probe
  GET /preferences   current preferences as JSON
  GET /ws            WebSocket endpoint`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (default server.listen)")
}

func runServe(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	rt := app.Runtime
	cfg := rt.Config()

	addr := serveListen
	if addr == "" {
		addr = cfg.Server.Listen
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	coalescer := mainloop.NewCoalescer(rt.Loop.Post)
	defer coalescer.Destroy()
	src := viewport.New(viewport.WithCoalescer(coalescer))
	defer src.Detach()

	hub := bridge.NewHub(ctx, src, bridge.WithAgent(app.BuildInfo.Agent()))
	defer hub.Close()

	scrollObs := observer.NewScrollObserver(ctx, src, rt.DefaultScroll())
	scrollObs.OnChange(hub.BroadcastScroll)
	scrollObs.Activate()
	defer scrollObs.Deactivate()

	apply := observer.DefaultPreferenceHandler(ctx, hub, rt.MetaColors())
	prefObs := observer.NewPreferenceObserver(ctx, rt.Env, observer.WithCallback(func(prefs entity.SystemPreferences) {
		hub.BroadcastPreferences(prefs)
		apply(prefs)
	}))
	prefObs.Activate()
	defer prefObs.Deactivate()

	server := bridge.NewServer(ctx, addr, bridge.RouterOptions{
		Hub:            hub,
		Snapshot:       prefObs.Snapshot,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Run(gctx) })
	g.Go(func() error { return runUntilDone(gctx, rt.Run) })
	return g.Wait()
}
