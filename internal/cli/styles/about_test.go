package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/domain/build"
	"github.com/bnema/lookout/internal/domain/entity"
)

func TestAboutRenderer(t *testing.T) {
	prefs := entity.SystemPreferences{Theme: entity.ThemeDark, Contrast: entity.ContrastHigh}
	r := styles.NewAboutRenderer(styles.NewTheme(prefs))

	out := r.Render(styles.AboutInfo{
		Build:       build.Info{Version: "1.4.0", Commit: "3f2a9c1d8e7b"},
		Preferences: prefs,
	})

	assert.Contains(t, out, "1.4.0")
	assert.Contains(t, out, "3f2a9c1")
	assert.NotContains(t, out, "3f2a9c1d")
	assert.Contains(t, out, prefs.ClassName())
	assert.Contains(t, out, "desktop")
	assert.Contains(t, out, build.RepoURL)
}

func TestAboutRenderer_Headless(t *testing.T) {
	prefs := entity.DefaultPreferences()
	r := styles.NewAboutRenderer(styles.NewTheme(prefs))

	out := r.Render(styles.AboutInfo{Preferences: prefs, Headless: true})

	assert.Contains(t, out, "headless")
	assert.Contains(t, out, "dev")
	assert.Contains(t, out, string(entity.ThemeLight))
}
