package codec

import "errors"

// Sentinel errors returned by codec operations.
//
// Callers should use errors.Is for comparisons:
//
//	_, err := codec.Decode(input)
//	if errors.Is(err, codec.ErrMalformedEncoding) {
//	    // ask the caller for valid Base64
//	}
var (
	// ErrMalformedEncoding is returned when the input is not valid Base64 for
	// the selected variant.  The wrapped message carries the byte offset of
	// the first offending character.
	ErrMalformedEncoding = errors.New("codec: malformed base64 input")

	// ErrUnsupportedVariant is returned when an unrecognised variant name is
	// used.
	ErrUnsupportedVariant = errors.New("codec: unsupported base64 variant")
)
