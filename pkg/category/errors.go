package category

import "errors"

var (
	// ErrMalformedCorpus is returned when a corpus file does not follow the
	// fixed column layout.
	ErrMalformedCorpus = errors.New("malformed user agent corpus")

	// ErrNilProvider is returned when loading through a nil Provider.
	ErrNilProvider = errors.New("nil record provider")
)
