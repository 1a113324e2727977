package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/domain/entity"
)

func TestDoctorRenderer_Render(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme(entity.DefaultPreferences()))

	out := r.Render(styles.DoctorReport{
		Preference: "theme=dark contrast=standard",
		ClassName:  "dark",
		Signals: []styles.DoctorSignal{{
			Media:   entity.MediaPrefersDark,
			Matches: true,
			Source:  "xdg-portal",
			Detectors: []styles.DoctorDetector{
				{Name: "xdg-portal", Priority: 100, Available: true, Detected: true, Matches: true},
				{Name: "gsettings", Priority: 10},
			},
		}},
	})

	assert.Contains(t, out, "Doctor")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, entity.MediaPrefersDark)
	assert.Contains(t, out, "xdg-portal")
	assert.Contains(t, out, "unavailable")
	assert.NotContains(t, out, "No detector is available")
}

func TestDoctorRenderer_RenderHeadless(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme(entity.DefaultPreferences()))

	out := r.Render(styles.DoctorReport{
		Headless:   true,
		Preference: entity.DefaultPreferences().String(),
		ClassName:  "light",
		Signals:    []styles.DoctorSignal{{Media: entity.MediaPrefersHighContrast}},
	})

	assert.Contains(t, out, "Headless")
	assert.Contains(t, out, "No detector is available")
	assert.Contains(t, out, "fallback")
	assert.Contains(t, out, "no detectors registered")
}
