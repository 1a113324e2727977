package config

import "time"

const (
	dirPerm  = 0755
	filePerm = 0644

	defaultPollInterval = 30 * time.Second
	defaultListen       = "127.0.0.1:7077"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			ColorScheme:           ColorSchemeDefault,
			Contrast:              ContrastDefault,
			LightMetaColor:        "#ffffff",
			DarkMetaColor:         "#0a0a0b",
			HighContrastMetaColor: "#000000",
		},
		Detection: DetectionConfig{
			PollInterval: Duration(defaultPollInterval),
			Portal:       true,
			Gsettings:    true,
			Env:          true,
			WatchDconf:   true,
		},
		Scroll: ScrollConfig{},
		Server: ServerConfig{
			Listen:         defaultListen,
			AllowedOrigins: []string{},
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			LogDir:        "",
			MaxSizeMB:     10,
			MaxBackups:    3,
			MaxAgeDays:    7,
		},
	}
}
