package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/lookout/internal/application/observer"
	"github.com/bnema/lookout/internal/cli"
	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/domain/entity"
	"github.com/bnema/lookout/internal/infrastructure/colorscheme"
	"github.com/bnema/lookout/internal/infrastructure/config"
	"github.com/bnema/lookout/internal/infrastructure/mediaquery"
)

var (
	configForce bool
	configYes   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the config file location, write the defaults, or print the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Write the default configuration to the config file.

An existing file is only replaced after confirmation, or with --force.`,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	Long:  `Print a JSON schema for config.toml, usable by editors with TOML schema support.`,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configInitCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

// configTarget returns the --config path or the XDG default.
func configTarget() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigFile()
}

// plainTheme is used by commands that run without the app.
func plainTheme() *styles.Theme {
	return styles.NewTheme(entity.DefaultPreferences())
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(plainTheme())

	path, err := configTarget()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	_, statErr := os.Stat(path)
	fmt.Println(renderer.RenderPath(path, statErr == nil))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	theme := plainTheme()
	renderer := styles.NewConfigRenderer(theme)

	path, err := configTarget()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	err = config.WriteDefault(path)
	switch {
	case err == nil:
		fmt.Println(renderer.RenderWritten(path))
		return nil
	case !errors.Is(err, config.ErrExists):
		fmt.Println(renderer.RenderError(err))
		return err
	}

	overwrite := configForce || configYes
	if !overwrite && !cli.IsTerminal(os.Stdin) {
		fmt.Println(renderer.RenderExists(path))
		return nil
	}
	if !overwrite {
		confirmed, err := confirmOverwrite(desktopTheme(), path)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println(renderer.RenderExists(path))
			return nil
		}
	}

	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderWritten(path))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}

// desktopTheme styles interactive config prompts from the desktop's own
// signals. The config file is what is being replaced, so its overrides are
// not consulted.
func desktopTheme() *styles.Theme {
	resolvers := colorscheme.NewResolvers(nil, colorscheme.ChainOptions{
		Portal:    colorscheme.DefaultSystemPortal(),
		Env:       true,
		Gsettings: true,
	})
	env := mediaquery.New(context.Background(), resolvers)
	defer env.Close()
	return styles.NewTheme(observer.QueryPreferences(env))
}

func confirmOverwrite(theme *styles.Theme, path string) (bool, error) {
	m := styles.NewConfirm(theme, fmt.Sprintf("Replace %s with the defaults?", path))
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation: %w", err)
	}
	answer, ok := final.(styles.ConfirmModel)
	return ok && answer.Result(), nil
}
