package useragents

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/useragents/pkg/category"
	"github.com/dmitrymomot/useragents/pkg/chrome"
	"github.com/dmitrymomot/useragents/pkg/firefox"
	"github.com/dmitrymomot/useragents/pkg/googlebot"
	"github.com/dmitrymomot/useragents/pkg/logger"
	"github.com/dmitrymomot/useragents/pkg/random"
	"github.com/dmitrymomot/useragents/pkg/useragent"
)

// Family names accepted by Registry.Family.
const (
	FamilyChrome           = "chrome"
	FamilyFirefox          = "firefox"
	FamilyGoogleBot        = "googlebot"
	FamilyBingBot          = "bingbot"
	FamilySafari           = "safari"
	FamilyEdge             = "edge"
	FamilyOpera            = "opera"
	FamilyInternetExplorer = "internet_explorer"
	FamilyAndroid          = "android"
	FamilyIOS              = "ios"
)

// Families lists every family Random chooses from: bots, browsers, then
// mobile operating systems.
var Families = []string{
	FamilyGoogleBot,
	FamilyBingBot,
	FamilyChrome,
	FamilyFirefox,
	FamilySafari,
	FamilyEdge,
	FamilyOpera,
	FamilyInternetExplorer,
	FamilyAndroid,
	FamilyIOS,
}

// No Edge corpus is shipped; Edge serves the Safari corpus.
var corpusAliases = map[string]string{
	FamilyEdge: FamilySafari,
}

// DefaultMaxAttempts bounds how many strings a builder family generates while
// looking for one accepted by a predicate.
const DefaultMaxAttempts = 16

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report corpus loads.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithProvider replaces the embedded corpora, e.g. with a CSVProvider over a directory.
func WithProvider(p category.Provider) Option {
	return func(r *Registry) {
		if p != nil {
			r.provider = p
		}
	}
}

// WithMaxAttempts sets the predicate retry bound of builder families.
func WithMaxAttempts(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.attempts = n
		}
	}
}

// lazyCategory loads one corpus at most once.
type lazyCategory struct {
	once sync.Once
	cat  *category.Category
	err  error
}

// Registry hands out memoized categories and builder generators.
// It is safe for concurrent use.
type Registry struct {
	log      *slog.Logger
	provider category.Provider
	attempts int

	mu         sync.Mutex
	categories map[string]*lazyCategory

	chrome    *Generator
	firefox   *Generator
	googleBot *Generator
}

// New creates a registry over the embedded corpora unless WithProvider is given.
func New(opts ...Option) *Registry {
	r := &Registry{
		log:        logger.Discard(),
		provider:   category.DefaultProvider(),
		attempts:   DefaultMaxAttempts,
		categories: make(map[string]*lazyCategory),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.log = r.log.With(logger.Component("useragents"))
	r.chrome = r.generator(FamilyChrome, func() (string, error) { return chrome.Random(chrome.Options{}) })
	r.firefox = r.generator(FamilyFirefox, func() (string, error) { return firefox.Random(firefox.Options{}) })
	r.googleBot = r.generator(FamilyGoogleBot, func() (string, error) { return googlebot.Random(googlebot.Options{}) })
	return r
}

func (r *Registry) generator(name string, fn func() (string, error)) *Generator {
	return &Generator{name: name, generate: fn, attempts: r.attempts}
}

// Chrome returns the Chrome builder.
func (r *Registry) Chrome() *Generator { return r.chrome }

// GoogleChrome is an alias of Chrome.
func (r *Registry) GoogleChrome() *Generator { return r.chrome }

// Firefox returns the Firefox builder.
func (r *Registry) Firefox() *Generator { return r.firefox }

// GoogleBot returns the Googlebot builder.
func (r *Registry) GoogleBot() *Generator { return r.googleBot }

func (r *Registry) Safari() (*category.Category, error) { return r.Category(FamilySafari) }

// Edge returns the Safari corpus; there is no dedicated Edge corpus.
func (r *Registry) Edge() (*category.Category, error) { return r.Category(FamilyEdge) }

func (r *Registry) Opera() (*category.Category, error) { return r.Category(FamilyOpera) }

func (r *Registry) InternetExplorer() (*category.Category, error) {
	return r.Category(FamilyInternetExplorer)
}

func (r *Registry) BingBot() (*category.Category, error) { return r.Category(FamilyBingBot) }

func (r *Registry) Android() (*category.Category, error) { return r.Category(FamilyAndroid) }

func (r *Registry) IOS() (*category.Category, error) { return r.Category(FamilyIOS) }

// Category returns the named corpus, loading it on first access. Every
// later call returns the same *category.Category, or the same load error.
func (r *Registry) Category(name string) (*category.Category, error) {
	if alias, ok := corpusAliases[name]; ok {
		name = alias
	}

	r.mu.Lock()
	lazy, ok := r.categories[name]
	if !ok {
		lazy = &lazyCategory{}
		r.categories[name] = lazy
	}
	r.mu.Unlock()

	lazy.once.Do(func() {
		lazy.cat, lazy.err = category.LoadFrom(r.provider, name)
		if lazy.err != nil {
			r.log.Warn("corpus load failed", logger.Category(name), logger.Error(lazy.err))
			return
		}
		r.log.Debug("corpus loaded", logger.Category(name), logger.Count(lazy.cat.Len()))
	})
	return lazy.cat, lazy.err
}

// Random picks one of Families uniformly and returns a User-Agent from it
// accepted by match (nil accepts anything). ok is false when the chosen
// family has nothing matching; no other family is tried.
func (r *Registry) Random(match useragent.Predicate) (string, bool, error) {
	return r.Family(random.Pick(Families), match)
}

// Family returns a User-Agent accepted by match from the named family.
func (r *Registry) Family(name string, match useragent.Predicate) (string, bool, error) {
	switch name {
	case FamilyChrome:
		return r.chrome.RandomFunc(match)
	case FamilyFirefox:
		return r.firefox.RandomFunc(match)
	case FamilyGoogleBot:
		return r.googleBot.RandomFunc(match)
	}

	cat, err := r.Category(name)
	if err != nil {
		return "", false, err
	}
	s, ok := cat.RandomFunc(match)
	return s, ok, nil
}
