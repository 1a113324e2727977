package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/domain/entity"
)

func TestPrefsRenderer(t *testing.T) {
	prefs := entity.SystemPreferences{Theme: entity.ThemeDark, Contrast: entity.ContrastHigh}
	r := styles.NewPrefsRenderer(styles.NewTheme(prefs))

	out := r.Render(prefs, []styles.SignalSource{
		{Media: entity.MediaPrefersDark, Matches: true, Source: "xdg-portal"},
		{Media: entity.MediaPrefersMediumContrast},
	})
	assert.Contains(t, out, "dark contrast-high")
	assert.Contains(t, out, "xdg-portal")
	assert.Contains(t, out, "fallback")

	assert.Contains(t, r.RenderLine(prefs), "theme=dark contrast=high")
}
