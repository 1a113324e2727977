package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lookout/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version and build info together with the preferences lookout currently sees.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Println(renderer.Render(styles.AboutInfo{
		Build:       app.BuildInfo,
		Preferences: app.Theme.Preferences,
		Headless:    app.Runtime.Env.Headless(),
	}))
	return nil
}
