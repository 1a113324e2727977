// Package cmd provides Cobra CLI commands for lookout.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/lookout/internal/bootstrap"
	"github.com/bnema/lookout/internal/cli"
	"github.com/bnema/lookout/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	configFile string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "lookout",
		Short: "Watch desktop color scheme, contrast and scroll preferences",
		Long: `lookout follows the desktop's appearance preferences the way a web page
does with prefers-color-scheme and prefers-contrast media queries.

It reads the XDG desktop portal, gsettings and GTK_THEME, resolves them into
a theme (light/dark) and a contrast level (standard/medium/high), and pushes
every change to a sink: the terminal, an HTML document, or browser clients
over WebSocket.

Examples:
  lookout prefs --watch          # Stream preference changes
  lookout view README.md         # Page a document that follows the theme
  lookout html index.html -w     # Keep an HTML file's class in sync
  lookout serve                  # Push changes to browsers over WebSocket`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}
			// config subcommands must work when the config file is broken
			if cmd.HasParent() && cmd.Parent().Name() == "config" {
				return nil
			}

			var err error
			app, err = cli.NewApp(bootstrap.Options{
				ConfigFile: configFile,
				LogLevel:   logLevel,
				Quiet:      quietCommands[cmd.Name()],
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// quietCommands own the terminal, so console logging would corrupt their output.
var quietCommands = map[string]bool{
	"view": true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/lookout/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info.Normalize()
	rootCmd.Version = buildInfo.Version
}
