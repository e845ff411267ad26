package codec_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hasbyte1/go-transform-utils/codec"
)

// FuzzRoundTrip checks decode(encode(b)) == b for both alphabets.
//
// Run with: go test -fuzz=FuzzRoundTrip ./codec/
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello"))
	f.Add([]byte{0x00, 0x01, 0x02, 0xff})
	f.Add(bytes.Repeat([]byte{0xAA}, 1024))

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, v := range []codec.Variant{codec.Std, codec.URL} {
			text, _ := codec.EncodeVariant(data, v)
			got, err := codec.DecodeVariant(text, v)
			if err != nil {
				t.Fatalf("%s: decode of own output failed: %v", v, err)
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("%s: round-trip mismatch for input len=%d", v, len(data))
			}
		}
	})
}

// FuzzDecode ensures Decode never panics, only fails with
// ErrMalformedEncoding, and that accepted input re-encodes to its canonical
// form.
func FuzzDecode(f *testing.F) {
	for _, s := range []string{"", "Zg", "Zm9vYmFy", "Zm9v\r\nYg==", "====", "not base64!", "Zh=="} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, text string) {
		b, err := codec.Decode(text)
		if err != nil {
			if !errors.Is(err, codec.ErrMalformedEncoding) {
				t.Fatalf("unexpected error type: %v", err)
			}
			return
		}
		canonical := codec.Encode(b)
		again, err := codec.Decode(canonical)
		if err != nil || !bytes.Equal(again, b) {
			t.Fatalf("canonical form %q does not decode back: %v", canonical, err)
		}
	})
}
