package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/lookout/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	log       zerolog.Logger
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	file          string
	createMissing bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigFile reads path instead of the XDG config file.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) {
		m.file = path
	}
}

// WithLogger sets the logger used for file creation and reload failures.
// Defaults to a console logger configured from the environment.
func WithLogger(log zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = log
	}
}

// WithCreateMissing writes the default config when none exists. Defaults to true.
func WithCreateMissing(enabled bool) ManagerOption {
	return func(m *Manager) {
		m.createMissing = enabled
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		log:           logging.NewFromEnv(),
		viper:         viper.New(),
		callbacks:     make([]func(*Config), 0),
		createMissing: true,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.file == "" {
		file, err := GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.file = file
	}

	if err := loadEnvFile(EnvFilePath(m.file)); err != nil {
		return nil, err
	}

	v := m.viper
	v.SetConfigFile(m.file)
	v.SetConfigType("toml")

	// LOOKOUT_SERVER_LISTEN, LOOKOUT_APPEARANCE_COLOR_SCHEME, ...
	v.SetEnvPrefix("LOOKOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "LOOKOUT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LOOKOUT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "LOOKOUT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LOOKOUT_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// EnvFilePath returns the .env file read next to configFile.
func EnvFilePath(configFile string) string {
	return filepath.Join(filepath.Dir(configFile), envFileName)
}

// loadEnvFile exports the variables of path that are not already set.
// A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// SetLogger replaces the logger, typically once the runtime logger is built
// from the loaded configuration.
func (m *Manager) SetLogger(log zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = log
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := Validate(config); err != nil {
		return fmt.Errorf("invalid configuration in %s: %w", m.file, err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.file, err)
	}
	if !m.createMissing {
		// Defaults and environment only.
		return nil
	}

	if createErr := WriteDefault(m.file); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.file,
			createErr,
		)
	}
	m.log.Info().Str("path", m.file).Msg("created default configuration file")

	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := m.viper.Unmarshal(config, hook); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.file,
			err,
		)
	}
	return config, nil
}

// Get returns a copy of the current configuration (thread-safe).
// Before Load it returns the defaults.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Server.AllowedOrigins = slices.Clone(m.config.Server.AllowedOrigins)
	return &configCopy
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	return m.file
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("appearance.color_scheme", string(defaults.Appearance.ColorScheme))
	m.viper.SetDefault("appearance.contrast", string(defaults.Appearance.Contrast))
	m.viper.SetDefault("appearance.light_meta_color", defaults.Appearance.LightMetaColor)
	m.viper.SetDefault("appearance.dark_meta_color", defaults.Appearance.DarkMetaColor)
	m.viper.SetDefault("appearance.high_contrast_meta_color", defaults.Appearance.HighContrastMetaColor)

	m.viper.SetDefault("detection.poll_interval", defaults.Detection.PollInterval.String())
	m.viper.SetDefault("detection.portal", defaults.Detection.Portal)
	m.viper.SetDefault("detection.gsettings", defaults.Detection.Gsettings)
	m.viper.SetDefault("detection.env", defaults.Detection.Env)
	m.viper.SetDefault("detection.watch_dconf", defaults.Detection.WatchDconf)

	m.viper.SetDefault("scroll.default_x", defaults.Scroll.DefaultX)
	m.viper.SetDefault("scroll.default_y", defaults.Scroll.DefaultY)

	m.viper.SetDefault("server.listen", defaults.Server.Listen)
	m.viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

// LogDir returns the configured log directory or the XDG default.
func (c *Config) LogDir() (string, error) {
	if c.Logging.LogDir != "" {
		return filepath.Clean(c.Logging.LogDir), nil
	}
	return GetLogDir()
}
