package codec_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hasbyte1/go-transform-utils/codec"
)

// Example demonstrates the basic encode/decode pair.
func Example() {
	text := codec.Encode([]byte("hello"))
	fmt.Println(text)

	raw, err := codec.Decode(text)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(raw))
	// Output:
	// aGVsbG8=
	// hello
}

// ExampleEncodeURL shows the URL-safe alphabet.
func ExampleEncodeURL() {
	fmt.Println(codec.Encode([]byte{0xfb, 0xff}))
	fmt.Println(codec.EncodeURL([]byte{0xfb, 0xff}))
	// Output:
	// +/8=
	// -_8=
}

// ExampleCanonical normalises text produced by a line-wrapping encoder.
func ExampleCanonical() {
	canonical, err := codec.Canonical("Zm9v\r\nYmE")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(canonical)
	// Output: Zm9vYmE=
}

// ExampleDecode_malformed shows how to detect invalid input.
func ExampleDecode_malformed() {
	_, err := codec.Decode("not base64!")
	fmt.Println(errors.Is(err, codec.ErrMalformedEncoding))
	// Output: true
}
