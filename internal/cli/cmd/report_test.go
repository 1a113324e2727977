package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lookout/internal/application/port"
	"github.com/bnema/lookout/internal/application/usecase"
	"github.com/bnema/lookout/internal/cli/styles"
	"github.com/bnema/lookout/internal/domain/entity"
)

func TestDoctorReport(t *testing.T) {
	out := &usecase.DiagnosePreferencesOutput{
		Snapshot: entity.SystemPreferences{Theme: entity.ThemeDark, Contrast: entity.ContrastHigh},
		Signals: []usecase.SignalDiagnosis{
			{
				Kind:  entity.SignalDark,
				Media: entity.MediaPrefersDark,
				State: port.SignalState{Matches: true, Source: "gsettings"},
				Detectors: []usecase.DetectorStatus{
					{Name: "xdg-desktop-portal", Priority: 100},
					{Name: "gsettings", Priority: 10, Available: true, Detected: true, Matches: true},
				},
			},
		},
	}

	report := doctorReport(out, "/tmp/lookout/config.toml")

	assert.False(t, report.Headless)
	assert.Equal(t, "dark contrast-high", report.ClassName)
	assert.Equal(t, out.Snapshot.String(), report.Preference)
	assert.Equal(t, "/tmp/lookout/config.toml", report.ConfigFile)
	require.Len(t, report.Signals, 1)

	sig := report.Signals[0]
	assert.Equal(t, entity.MediaPrefersDark, sig.Media)
	assert.True(t, sig.Matches)
	assert.Equal(t, "gsettings", sig.Source)
	assert.Equal(t, []styles.DoctorDetector{
		{Name: "xdg-desktop-portal", Priority: 100},
		{Name: "gsettings", Priority: 10, Available: true, Detected: true, Matches: true},
	}, sig.Detectors)
}

func TestNewPrefsOutput_JSON(t *testing.T) {
	prefs := entity.SystemPreferences{Theme: entity.ThemeLight, Contrast: entity.ContrastMedium}
	out := newPrefsOutput(prefs, []styles.SignalSource{
		{Media: entity.MediaPrefersMediumContrast, Matches: true, Source: "xdg-desktop-portal"},
	})

	data, err := json.Marshal(out)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "light", got["theme"])
	assert.Equal(t, "medium", got["contrast"])
	assert.Equal(t, "light contrast-medium", got["class"])

	signals, ok := got["signals"].([]any)
	require.True(t, ok)
	require.Len(t, signals, 1)
	assert.Equal(t, map[string]any{
		"media":   entity.MediaPrefersMediumContrast,
		"matches": true,
		"source":  "xdg-desktop-portal",
	}, signals[0])
}

func TestNewPrefsOutput_OmitsEmptySignals(t *testing.T) {
	data, err := json.Marshal(newPrefsOutput(entity.DefaultPreferences(), nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"light","contrast":"standard","class":"light"}`, string(data))
}
