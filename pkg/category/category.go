package category

import (
	"fmt"
	"iter"
	"regexp"

	"github.com/dmitrymomot/useragents/pkg/random"
	"github.com/dmitrymomot/useragents/pkg/useragent"
)

// Provider supplies the parsed records of a named corpus in a fixed order.
type Provider interface {
	Records(name string) ([]useragent.UserAgent, error)
}

// Category is a named, ordered collection of observed User-Agent records.
// A Category is read-only after construction and safe for concurrent use.
type Category struct {
	name    string
	records []useragent.UserAgent
}

// New returns a category owning a copy of records.
func New(name string, records []useragent.UserAgent) *Category {
	return &Category{
		name:    name,
		records: append([]useragent.UserAgent(nil), records...),
	}
}

// Load reads the named corpus from the embedded data.
func Load(name string) (*Category, error) {
	return LoadFrom(DefaultProvider(), name)
}

// LoadFrom reads the named corpus from p. A missing corpus yields an error
// wrapping useragent.ErrDataNotFound.
func LoadFrom(p Provider, name string) (*Category, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	records, err := p.Records(name)
	if err != nil {
		return nil, fmt.Errorf("load category %q: %w", name, err)
	}
	return &Category{name: name, records: records}, nil
}

// Names lists the embedded corpora.
func Names() ([]string, error) {
	return DefaultProvider().Names()
}

// Name returns the corpus name.
func (c *Category) Name() string { return c.name }

// Len returns the number of records.
func (c *Category) Len() int { return len(c.records) }

// Random returns the raw string of a uniformly chosen record.
// ok is false only for an empty category.
func (c *Category) Random() (string, bool) {
	return c.RandomFunc(nil)
}

// RandomFunc samples among records accepted by match; a nil match accepts
// every record. ok is false when nothing matches.
func (c *Category) RandomFunc(match useragent.Predicate) (string, bool) {
	if match == nil {
		if len(c.records) == 0 {
			return "", false
		}
		return random.Pick(c.records).Raw, true
	}

	var candidates []int
	for i := range c.records {
		if match(c.records[i]) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return c.records[random.Pick(candidates)].Raw, true
}

// RandomRegexp samples among records whose raw string matches re.
func (c *Category) RandomRegexp(re *regexp.Regexp) (string, bool) {
	if re == nil {
		return c.Random()
	}
	return c.RandomFunc(useragent.MatchRegexp(re))
}

// RandomMatching compiles pattern (cached) and samples among matching records.
// An invalid pattern fails with useragent.ErrInvalidArgument.
func (c *Category) RandomMatching(pattern string) (string, bool, error) {
	re, err := patterns.compile(pattern)
	if err != nil {
		return "", false, fmt.Errorf("%w: pattern %q: %v", useragent.ErrInvalidArgument, pattern, err)
	}
	s, ok := c.RandomRegexp(re)
	return s, ok, nil
}

// Each calls fn for every record in load order until fn returns false.
func (c *Category) Each(fn func(useragent.UserAgent) bool) {
	for _, rec := range c.records {
		if !fn(rec) {
			return
		}
	}
}

// All returns a restartable iterator over the records in load order.
func (c *Category) All() iter.Seq[useragent.UserAgent] {
	return c.Each
}

// Records returns a copy of the records in load order.
func (c *Category) Records() []useragent.UserAgent {
	return append([]useragent.UserAgent(nil), c.records...)
}

// Concat returns a new category holding c's records followed by other's.
// Neither operand is modified.
func (c *Category) Concat(other *Category) *Category {
	if other == nil {
		return New(c.name, c.records)
	}

	records := make([]useragent.UserAgent, 0, len(c.records)+len(other.records))
	records = append(records, c.records...)
	records = append(records, other.records...)
	return &Category{name: c.name + "+" + other.name, records: records}
}
