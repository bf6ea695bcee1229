package config

import (
	"fmt"
	"slices"
)

// Config holds the settings of the useragents command.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"USERAGENTS_LOG_LEVEL" envDefault:"warn"`
	// LogFormat is text or json.
	LogFormat string `env:"USERAGENTS_LOG_FORMAT" envDefault:"text"`
	// Env is attached to every log record.
	Env string `env:"USERAGENTS_ENV" envDefault:"development"`
	// Seed makes random output reproducible. Zero keeps the time-based seed.
	Seed int64 `env:"USERAGENTS_SEED"`
	// DataDir serves corpora from "<dir>/<name>.csv" instead of the embedded files.
	DataDir string `env:"USERAGENTS_DATA_DIR"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("%w: log level %q", ErrInvalidSetting, c.LogLevel)
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return fmt.Errorf("%w: log format %q", ErrInvalidSetting, c.LogFormat)
	}
	return nil
}

// Get loads and validates Config.
func Get() (Config, error) {
	var cfg Config
	if err := Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
