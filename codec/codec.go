package codec

import (
	"fmt"
	"strings"
)

// Encode returns the padded, standard-alphabet Base64 text of b.
// An empty or nil slice encodes to "".
func Encode(b []byte) string {
	return variantSpecs[Std].padded.EncodeToString(b)
}

// Decode is the exact inverse of [Encode].  See the package documentation for
// the accepted non-canonical spellings.  Malformed input yields
// [ErrMalformedEncoding]; partial output is never returned.
func Decode(s string) ([]byte, error) {
	return decode(s, variantSpecs[Std])
}

// EncodeURL returns the padded, URL-safe Base64 text of b.
func EncodeURL(b []byte) string {
	return variantSpecs[URL].padded.EncodeToString(b)
}

// DecodeURL is the exact inverse of [EncodeURL].
func DecodeURL(s string) ([]byte, error) {
	return decode(s, variantSpecs[URL])
}

// EncodeVariant encodes b with the alphabet named by v.
func EncodeVariant(b []byte, v Variant) (string, error) {
	spec, err := lookup(v)
	if err != nil {
		return "", err
	}
	return spec.padded.EncodeToString(b), nil
}

// DecodeVariant decodes s with the alphabet named by v.
func DecodeVariant(s string, v Variant) ([]byte, error) {
	spec, err := lookup(v)
	if err != nil {
		return nil, err
	}
	return decode(s, spec)
}

// EncodeString encodes the UTF-8 bytes of s with the standard alphabet.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// DecodeString decodes s with the standard alphabet and returns the result as
// a string.  The decoded bytes are not checked for UTF-8 validity.
func DecodeString(s string) (string, error) {
	b, err := Decode(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Canonical returns the canonical standard-alphabet spelling of s: line
// breaks removed and padding restored.  Malformed input yields
// [ErrMalformedEncoding].
func Canonical(s string) (string, error) {
	b, err := Decode(s)
	if err != nil {
		return "", err
	}
	return Encode(b), nil
}

// decode picks the padded or unpadded encoding of spec depending on whether
// s carries any padding.  encoding/base64 skips '\r' and '\n' by itself.
func decode(s string, spec variantSpec) ([]byte, error) {
	enc := spec.raw
	if strings.ContainsRune(s, '=') {
		enc = spec.padded
	}
	b, err := enc.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}
