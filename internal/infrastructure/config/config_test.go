package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.ColorScheme = "sepia"
	cfg.Appearance.DarkMetaColor = "black"
	cfg.Detection.PollInterval = Duration(-time.Second)
	cfg.Server.Listen = "nowhere"
	cfg.Logging.Format = "xml"

	err := Validate(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))

	msg := err.Error()
	for _, want := range []string{
		"appearance.color_scheme",
		"appearance.dark_meta_color",
		"detection.poll_interval",
		"server.listen",
		"logging.format",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.ColorScheme = " Dark "
	cfg.Appearance.Contrast = "MORE"
	cfg.Logging.Level = "DEBUG"
	cfg.Logging.Format = ""

	normalizeConfig(cfg)

	assert.Equal(t, ColorSchemePreferDark, cfg.Appearance.ColorScheme)
	assert.Equal(t, ContrastMedium, cfg.Appearance.Contrast)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	require.NoError(t, Validate(cfg))
}

func TestManager_LoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookout", "config.toml")

	m, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.FileExists(t, path)
	assert.Equal(t, DefaultConfig(), m.Get())
	assert.Equal(t, path, m.ConfigFile())
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[appearance]
color_scheme = "prefer-dark"
contrast = "high"

[detection]
poll_interval = "5s"
portal = false

[scroll]
default_y = 12.5

[server]
allowed_origins = ["http://localhost:3000"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("LOOKOUT_SERVER_LISTEN", "0.0.0.0:9000")
	t.Setenv("LOOKOUT_LOG_LEVEL", "debug")

	m, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, ColorSchemePreferDark, cfg.Appearance.ColorScheme)
	assert.Equal(t, ContrastHigh, cfg.Appearance.Contrast)
	assert.Equal(t, 5*time.Second, cfg.Detection.PollInterval.Std())
	assert.False(t, cfg.Detection.Portal)
	assert.True(t, cfg.Detection.Gsettings, "unset keys keep defaults")
	assert.Equal(t, 12.5, cfg.Scroll.DefaultY)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Listen)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[appearance]\ncontrast = \"extreme\"\n"), 0o644))

	m, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)

	err = m.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "appearance.contrast")
}

func TestManager_LoadWithoutCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	m, err := NewManager(WithConfigFile(path), WithCreateMissing(false))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.NoFileExists(t, path)
	assert.Equal(t, DefaultConfig(), m.Get())
}

func TestManager_GetReturnsCopy(t *testing.T) {
	m, err := NewManager(WithConfigFile(filepath.Join(t.TempDir(), "config.toml")))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Appearance.ColorScheme = ColorSchemePreferLight
	cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, "http://evil")

	again := m.Get()
	assert.Equal(t, ColorSchemeDefault, again.Appearance.ColorScheme)
	assert.Empty(t, again.Server.AllowedOrigins)
}

func TestWriteDefault_DoesNotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path))

	err := WriteDefault(path)
	assert.ErrorIs(t, err, ErrExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `poll_interval = '30s'`)
}

func TestEncodeTOML_SectionsSorted(t *testing.T) {
	data, err := EncodeTOML(DefaultConfig())
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	assert.Equal(t, []string{"[appearance]", "[detection]", "[logging]", "[scroll]", "[server]"}, sections)
}

func TestSortTOMLSections(t *testing.T) {
	input := "top = 1\n\n[zeta]\na = 1\n\n[alpha]\nb = 2\n"
	assert.Equal(t, "top = 1\n\n[alpha]\nb = 2\n\n[zeta]\na = 1\n", sortTOMLSections(input))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "lookout configuration", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"appearance", "detection", "scroll", "server", "logging"} {
		assert.Contains(t, props, key)
	}
}

func TestGetXDGDirs(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cfg/lookout", dirs.ConfigHome)
	assert.Equal(t, "/tmp/state/lookout", dirs.StateHome)

	file, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cfg/lookout/config.toml", file)

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/state/lookout/logs", logDir)

	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	manDir, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/data/man/man1", manDir)
}

func TestConfig_LogDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.LogDir = "/var/log/lookout/"

	dir, err := cfg.LogDir()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/lookout", dir)
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.Std())

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))

	assert.Error(t, d.UnmarshalText([]byte("soon")))
}

func TestManager_LoadsEnvFileNextToConfig(t *testing.T) {
	const key = "LOOKOUT_SERVER_LISTEN"
	if _, set := os.LookupEnv(key); set {
		t.Skipf("%s already set", key)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(EnvFilePath(file), []byte(key+"=127.0.0.1:9999\n"), 0o600))

	m, err := NewManager(WithConfigFile(file), WithCreateMissing(false))
	require.NoError(t, err)
	require.NoError(t, m.Load())
	assert.Equal(t, "127.0.0.1:9999", m.Get().Server.Listen)
}

func TestLoadEnvFile_MissingIsIgnored(t *testing.T) {
	assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), ".env")))
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestManager_LogsThroughConfiguredLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	out := &syncBuffer{}

	m, err := NewManager(WithConfigFile(path), WithLogger(zerolog.New(out)))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Contains(t, out.String(), "created default configuration file")
}

func TestManager_ReloadFailureUsesSetLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	out := &syncBuffer{}

	m, err := NewManager(WithConfigFile(path), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	require.NoError(t, m.Load())
	m.SetLogger(zerolog.New(out))
	require.NoError(t, m.Watch())

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("[appearance]\ncolor_scheme = \"sepia\"\n"), 0o600)
		return strings.Contains(out.String(), "failed to reload config")
	}, 3*time.Second, 50*time.Millisecond)

	assert.Equal(t, DefaultConfig(), m.Get())
}
