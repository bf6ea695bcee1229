package useragent

import "errors"

var (
	// ErrInvalidArgument reports an unsupported or incomplete combination of
	// builder parameters, or a lookup key without a fallback rule.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDataNotFound reports a named corpus that does not exist.
	ErrDataNotFound = errors.New("data not found")

	ErrEmptyUserAgent     = errors.New("empty user agent string")
	ErrMalformedUserAgent = errors.New("malformed user agent string")
)
