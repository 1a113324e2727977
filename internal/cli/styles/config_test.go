package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/domain/entity"
)

func TestConfigRenderer_RenderPath(t *testing.T) {
	theme := styles.NewTheme(entity.DefaultPreferences())
	r := styles.NewConfigRenderer(theme)

	out := r.RenderPath("/tmp/lookout/config.toml", false)
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "lookout config init")

	out = r.RenderPath("/tmp/lookout/config.toml", true)
	require.Contains(t, out, "found")
}

func TestConfigRenderer_RenderExistsAndError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(entity.DefaultPreferences()))

	require.Contains(t, r.RenderExists("/tmp/c.toml"), "--force")
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
	require.Contains(t, r.RenderWritten("/tmp/c.toml"), "/tmp/c.toml")
}
