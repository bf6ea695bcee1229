package platform

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/useragents/pkg/useragent"
)

// Mode decides what a Table does with a key it does not know.
type Mode int

const (
	// Strict tables reject unknown keys with useragent.ErrInvalidArgument.
	Strict Mode = iota
	// Fallback tables map unknown keys through the table's fallback function.
	Fallback
)

// Table maps symbolic keys to the canonical fragment used in a User-Agent.
// The empty key means "absent" and always resolves to an absent fragment.
type Table struct {
	name     string
	mode     Mode
	optional bool
	keys     []string
	values   map[string]string
	fallback func(string) string
}

// Entry is one key/value pair of a table, in declaration order.
type Entry struct {
	Key   string
	Value string
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithFallback makes the table a Fallback table using fn for unknown keys.
func WithFallback(fn func(string) string) TableOption {
	return func(t *Table) {
		t.mode = Fallback
		t.fallback = fn
	}
}

// WithPassthrough makes the table a Fallback table returning unknown keys verbatim.
func WithPassthrough() TableOption {
	return WithFallback(func(key string) string { return key })
}

// Optional marks absence as a valid choice when sampling keys.
func Optional() TableOption {
	return func(t *Table) { t.optional = true }
}

// NewTable builds a table from ordered entries. It is Strict unless an option says otherwise.
func NewTable(name string, entries []Entry, opts ...TableOption) *Table {
	t := &Table{
		name:   name,
		mode:   Strict,
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		t.keys = append(t.keys, e.Key)
		t.values[e.Key] = e.Value
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the table name used in error messages.
func (t *Table) Name() string { return t.name }

// Mode reports whether the table is Strict or Fallback.
func (t *Table) Mode() Mode { return t.mode }

// IsOptional reports whether absence is one of the sampled choices.
func (t *Table) IsOptional() bool { return t.optional }

// Keys returns the known keys in declaration order.
func (t *Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Has reports whether key is a known key.
func (t *Table) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Resolve returns the fragment for key. An empty key yields an empty
// fragment. Unknown keys fail on Strict tables and go through the fallback
// function on Fallback tables.
func (t *Table) Resolve(key string) (string, error) {
	if key == "" {
		return "", nil
	}
	if v, ok := t.values[key]; ok {
		return v, nil
	}
	if t.mode == Fallback && t.fallback != nil {
		return t.fallback(key), nil
	}
	return "", fmt.Errorf("%w: unknown %s value (%q)", useragent.ErrInvalidArgument, t.name, key)
}

// SampleKeys lists the keys a random builder draws from: the known keys,
// plus the empty key when the table is optional.
func (t *Table) SampleKeys() []string {
	keys := t.Keys()
	if t.optional {
		keys = append(keys, "")
	}
	return keys
}

// Join concatenates the present fragments with "; ", skipping absent ones.
func Join(fragments ...string) string {
	present := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			present = append(present, f)
		}
	}
	return strings.Join(present, "; ")
}
