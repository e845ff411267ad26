// Package codec converts arbitrary bytes to printable Base64 text and back.
//
// # Alphabets
//
// The default [Std] variant uses the standard ("basic") RFC 4648 §4 alphabet
// with "=" padding and no line wrapping.  The [URL] variant uses the
// URL- and filename-safe RFC 4648 §5 alphabet, also padded.  The two are never
// mixed: decoding standard text that contains "-" or "_" fails rather than
// being reinterpreted.
//
// # Quick start
//
//	text := codec.Encode([]byte("hello"))   // "aGVsbG8="
//	raw, err := codec.Decode(text)          // []byte("hello")
//
//	token := codec.EncodeURL(sessionID)     // safe inside a query string
//
// # Canonical form
//
// [Encode] and [Decode] are exact inverses.  Decode also accepts two common
// non-canonical spellings of valid data:
//
//   - CR and LF line breaks, as produced by MIME-wrapping encoders;
//   - missing trailing padding, when the remaining length is still valid.
//
// Anything else is rejected with [ErrMalformedEncoding]: characters outside
// the alphabet (including spaces), misplaced or partial padding, impossible
// lengths and non-zero trailing bits.  As a result Encode(Decode(t)) equals
// t with line breaks removed and padding restored; [Canonical] computes
// exactly that.
//
// # Empty values
//
// Encode of an empty slice is "", and Decode of "" is an empty, non-nil
// slice.  Neither is an error.
package codec
