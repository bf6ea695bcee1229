package config_test

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/useragents/pkg/config"
)

type defaultsConfig struct {
	Name  string `env:"TEST_DEFAULT_NAME" envDefault:"default_value"`
	Count int    `env:"TEST_DEFAULT_COUNT" envDefault:"42"`
	Flag  bool   `env:"TEST_DEFAULT_FLAG" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Name   string   `env:"TEST_FILE_STRING"`
	Count  int      `env:"TEST_FILE_INT"`
	List   []string `env:"TEST_FILE_LIST" envSeparator:","`
	Quoted string   `env:"TEST_FILE_QUOTED"`
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("TEST_DEFAULT_NAME")
	os.Unsetenv("TEST_DEFAULT_COUNT")
	os.Unsetenv("TEST_DEFAULT_FLAG")
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.True(t, cfg.Flag)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "parsed once per type")

	config.ResetCache()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("TEST_REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("TEST_REQUIRED_VALUE", "now set")
	require.NoError(t, config.Load(&cfg), "failed parses are retried")
	assert.Equal(t, "now set", cfg.Required)

	var nilCfg *requiredConfig
	assert.ErrorIs(t, config.Load(nilCfg), config.ErrNilPointer)
}

func TestLoad_ConcurrentFailure(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("TEST_REQUIRED_VALUE")

	const workers = 16
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, workers)
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			var cfg requiredConfig
			errs[i] = config.Load(&cfg)
		}()
	}
	close(start)
	wg.Wait()

	for _, err := range errs {
		require.ErrorIs(t, err, config.ErrParsingConfig)
		assert.NotErrorIs(t, err, config.ErrConfigNotLoaded)
	}
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("TEST_REQUIRED_VALUE")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	for _, key := range []string{"TEST_FILE_STRING", "TEST_FILE_INT", "TEST_FILE_LIST", "TEST_FILE_QUOTED", "USERAGENTS_SEED"} {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range []string{"TEST_FILE_STRING", "TEST_FILE_INT", "TEST_FILE_LIST", "TEST_FILE_QUOTED", "USERAGENTS_SEED"} {
			os.Unsetenv(key)
		}
	})
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Name)
	assert.Equal(t, 1234, cfg.Count)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
	assert.Equal(t, "quoted value", cfg.Quoted)

	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
