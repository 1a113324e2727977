package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePreferences_AllCombinations(t *testing.T) {
	tests := []struct {
		name   string
		dark   bool
		high   bool
		medium bool
		want   SystemPreferences
	}{
		{"nothing", false, false, false, SystemPreferences{ThemeLight, ContrastStandard}},
		{"medium only", false, false, true, SystemPreferences{ThemeLight, ContrastMedium}},
		{"high only", false, true, false, SystemPreferences{ThemeLight, ContrastHigh}},
		{"high beats medium", false, true, true, SystemPreferences{ThemeLight, ContrastHigh}},
		{"dark", true, false, false, SystemPreferences{ThemeDark, ContrastStandard}},
		{"dark medium", true, false, true, SystemPreferences{ThemeDark, ContrastMedium}},
		{"dark high", true, true, false, SystemPreferences{ThemeDark, ContrastHigh}},
		{"dark high medium", true, true, true, SystemPreferences{ThemeDark, ContrastHigh}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePreferences(tt.dark, tt.high, tt.medium))
		})
	}
}

func TestDefaultPreferences(t *testing.T) {
	assert.Equal(t, SystemPreferences{Theme: ThemeLight, Contrast: ContrastStandard}, DefaultPreferences())
}

func TestSystemPreferences_ClassName(t *testing.T) {
	assert.Equal(t, "light", DefaultPreferences().ClassName())
	assert.Equal(t, "dark", SystemPreferences{ThemeDark, ContrastStandard}.ClassName())
	assert.Equal(t, "dark contrast-high", SystemPreferences{ThemeDark, ContrastHigh}.ClassName())
	assert.Equal(t, "light contrast-medium", SystemPreferences{ThemeLight, ContrastMedium}.ClassName())
	assert.Equal(t, "light", SystemPreferences{}.ClassName())
}

func TestParseTheme(t *testing.T) {
	got, err := ParseTheme("prefer-dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got)

	got, err = ParseTheme(" Light ")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got)

	_, err = ParseTheme("sepia")
	assert.Error(t, err)
}

func TestParseContrast(t *testing.T) {
	got, err := ParseContrast("more")
	require.NoError(t, err)
	assert.Equal(t, ContrastMedium, got)

	got, err = ParseContrast("HIGH")
	require.NoError(t, err)
	assert.Equal(t, ContrastHigh, got)

	_, err = ParseContrast("ultra")
	assert.Error(t, err)
}

func TestSignalForMedia(t *testing.T) {
	for _, k := range SignalKinds() {
		got, ok := SignalForMedia(k.Media())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := SignalForMedia("(prefers-reduced-motion: reduce)")
	assert.False(t, ok)
}

func TestParseClassName(t *testing.T) {
	for _, theme := range []Theme{ThemeLight, ThemeDark} {
		for _, contrast := range []Contrast{ContrastStandard, ContrastMedium, ContrastHigh} {
			prefs := SystemPreferences{Theme: theme, Contrast: contrast}
			got, err := ParseClassName(prefs.ClassName())
			require.NoError(t, err)
			assert.Equal(t, prefs, got)
		}
	}

	got, err := ParseClassName("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), got)

	_, err = ParseClassName("dark sepia")
	assert.Error(t, err)
}
