package useragents

import (
	"errors"

	"github.com/dmitrymomot/useragents/pkg/useragent"
)

// Generator produces User-Agent strings for one builder family.
type Generator struct {
	name     string
	generate func() (string, error)
	attempts int
}

// Name returns the family name, e.g. "chrome".
func (g *Generator) Name() string { return g.name }

// Random returns a freshly generated User-Agent string.
func (g *Generator) Random() (string, error) {
	return g.generate()
}

// RandomFunc generates strings until one parses into a record accepted by
// match, giving up after a bounded number of attempts. A nil match accepts
// the first string. ok is false when no attempt matched.
func (g *Generator) RandomFunc(match useragent.Predicate) (string, bool, error) {
	if match == nil {
		s, err := g.generate()
		if err != nil {
			return "", false, err
		}
		return s, true, nil
	}

	for range g.attempts {
		s, err := g.generate()
		if err != nil {
			return "", false, err
		}

		rec, err := useragent.Parse(s)
		if err != nil && !errors.Is(err, useragent.ErrMalformedUserAgent) {
			return "", false, err
		}
		if match(rec) {
			return s, true, nil
		}
	}
	return "", false, nil
}
