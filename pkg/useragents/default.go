package useragents

import (
	"sync"

	"github.com/dmitrymomot/useragents/pkg/category"
	"github.com/dmitrymomot/useragents/pkg/useragent"
)

var defaultRegistry = sync.OnceValue(func() *Registry { return New() })

// Default returns the process-wide registry over the embedded corpora.
func Default() *Registry { return defaultRegistry() }

// Random returns a User-Agent from a uniformly chosen family of the default registry.
func Random(match useragent.Predicate) (string, bool, error) {
	return Default().Random(match)
}

func Chrome() *Generator       { return Default().Chrome() }
func GoogleChrome() *Generator { return Default().GoogleChrome() }
func Firefox() *Generator      { return Default().Firefox() }
func GoogleBot() *Generator    { return Default().GoogleBot() }

func Safari() (*category.Category, error)           { return Default().Safari() }
func Edge() (*category.Category, error)             { return Default().Edge() }
func Opera() (*category.Category, error)            { return Default().Opera() }
func InternetExplorer() (*category.Category, error) { return Default().InternetExplorer() }
func BingBot() (*category.Category, error)          { return Default().BingBot() }
func Android() (*category.Category, error)          { return Default().Android() }
func IOS() (*category.Category, error)              { return Default().IOS() }
