package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed value per configuration type.
type cache struct {
	mu      sync.RWMutex
	values  map[string]any
	pending map[string]*parse
}

// parse is one parse attempt. err is set inside once and read after it, so
// callers waiting on the same attempt see the same failure.
type parse struct {
	once sync.Once
	err  error
}

var (
	loaded = newCache()

	defaultEnvLoaded sync.Once
)

func newCache() *cache {
	return &cache{
		values:  make(map[string]any),
		pending: make(map[string]*parse),
	}
}

// Load parses the environment into v using `env` struct tags. Each
// configuration type is parsed once per process; later calls copy the cached
// value. The default .env file, if present, is read before the first parse.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	if cached, ok := lookup[T](key); ok {
		*v = cached
		return nil
	}

	loaded.mu.Lock()
	p, ok := loaded.pending[key]
	if !ok {
		p = new(parse)
		loaded.pending[key] = p
	}
	loaded.mu.Unlock()

	p.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			p.err = errors.Join(ErrParsingConfig, err)
			return
		}

		loaded.mu.Lock()
		loaded.values[key] = parsed
		loaded.mu.Unlock()
	})
	if p.err != nil {
		// Allow a retry once the environment is fixed.
		loaded.mu.Lock()
		if loaded.pending[key] == p {
			delete(loaded.pending, key)
		}
		loaded.mu.Unlock()
		return p.err
	}

	if cached, ok := lookup[T](key); ok {
		*v = cached
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment.
// Variables that are already set win over file values.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration so the next Load re-parses the
// environment. Intended for tests.
func ResetCache() {
	loaded.mu.Lock()
	defer loaded.mu.Unlock()
	loaded.values = make(map[string]any)
	loaded.pending = make(map[string]*parse)
}

func lookup[T any](key string) (T, bool) {
	loaded.mu.RLock()
	defer loaded.mu.RUnlock()

	cached, ok := loaded.values[key].(T)
	return cached, ok
}

func typeKey[T any]() string {
	return reflect.TypeFor[T]().String()
}
