package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/useragents/pkg/config"
)

func TestGet(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"USERAGENTS_LOG_LEVEL", "USERAGENTS_LOG_FORMAT", "USERAGENTS_ENV", "USERAGENTS_SEED", "USERAGENTS_DATA_DIR"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
		config.ResetCache()

		cfg, err := config.Get()
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Zero(t, cfg.Seed)
		assert.Empty(t, cfg.DataDir)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("USERAGENTS_LOG_LEVEL", "debug")
		t.Setenv("USERAGENTS_LOG_FORMAT", "json")
		t.Setenv("USERAGENTS_SEED", "42")
		t.Setenv("USERAGENTS_DATA_DIR", "/srv/corpora")
		config.ResetCache()

		cfg, err := config.Get()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, "/srv/corpora", cfg.DataDir)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv("USERAGENTS_LOG_LEVEL", "verbose")
		config.ResetCache()

		_, err := config.Get()
		assert.ErrorIs(t, err, config.ErrInvalidSetting)
	})

	t.Run("invalid seed", func(t *testing.T) {
		t.Setenv("USERAGENTS_SEED", "abc")
		config.ResetCache()

		_, err := config.Get()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, config.Config{LogLevel: "info", LogFormat: "json"}.Validate())
	assert.ErrorIs(t, config.Config{LogLevel: "info", LogFormat: "xml"}.Validate(), config.ErrInvalidSetting)
}
