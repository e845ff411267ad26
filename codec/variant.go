package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Variant names a Base64 alphabet.
type Variant string

const (
	// Std is the standard RFC 4648 §4 alphabet ("+" and "/").  It is the
	// default for every function without a variant parameter.
	Std Variant = "std"
	// URL is the URL- and filename-safe RFC 4648 §5 alphabet ("-" and "_").
	URL Variant = "url"
)

// variantSpec pairs the padded and unpadded encodings of one alphabet.
// Both are strict: non-zero trailing bits are rejected.
type variantSpec struct {
	padded *base64.Encoding
	raw    *base64.Encoding
}

var variantSpecs = map[Variant]variantSpec{
	Std: {padded: base64.StdEncoding.Strict(), raw: base64.RawStdEncoding.Strict()},
	URL: {padded: base64.URLEncoding.Strict(), raw: base64.RawURLEncoding.Strict()},
}

// ParseVariant resolves a configuration string to a [Variant].  It accepts
// "std", "standard", "basic", "url", "urlsafe" and "base64url", ignoring
// case, hyphens and underscores.
func ParseVariant(name string) (Variant, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	switch key {
	case "std", "standard", "basic":
		return Std, nil
	case "url", "urlsafe", "base64url":
		return URL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedVariant, name)
}

// ValidateVariant returns a non-nil error if v is not a recognised variant.
func ValidateVariant(v Variant) error {
	_, err := lookup(v)
	return err
}

func lookup(v Variant) (variantSpec, error) {
	spec, ok := variantSpecs[v]
	if !ok {
		return variantSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedVariant, v)
	}
	return spec, nil
}
