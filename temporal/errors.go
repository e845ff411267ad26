package temporal

import "errors"

// Sentinel errors returned by temporal operations.
var (
	// ErrMalformedTimestamp is returned by [Parse] when the text does not
	// match the pattern.  The underlying *time.ParseError is wrapped as well.
	ErrMalformedTimestamp = errors.New("temporal: text does not match pattern")

	// ErrInvalidPattern is returned when a pattern uses an unknown field
	// letter, an unsupported field width or a forbidden literal.
	ErrInvalidPattern = errors.New("temporal: invalid pattern")

	// ErrUnknownUnit is returned by [ParseUnit] for unrecognised unit names.
	ErrUnknownUnit = errors.New("temporal: unknown duration unit")
)
