package digest

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"
)

// Sum returns the lowercase hex digest of input under alg.
//
// A zero-length input yields ("", nil) once alg has been validated; see the
// package documentation.  An unknown alg yields [ErrUnsupportedAlgorithm].
func Sum(input []byte, alg Algorithm) (string, error) {
	spec, err := lookup(alg)
	if err != nil {
		return "", err
	}
	if len(input) == 0 {
		return "", nil
	}
	h := spec.new()
	h.Write(input)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumString hashes the UTF-8 bytes of s.  It follows the same empty-input
// rule as [Sum].
func SumString(s string, alg Algorithm) (string, error) {
	return Sum([]byte(s), alg)
}

// SumReader streams r through alg until EOF.  A reader that produces no bytes
// yields ("", nil), matching [Sum].  Read errors are returned wrapped.
func SumReader(r io.Reader, alg Algorithm) (string, error) {
	h, err := New(alg)
	if err != nil {
		return "", err
	}
	n, err := io.Copy(h, r)
	if err != nil {
		return "", fmt.Errorf("digest: %s: read failed: %w", alg, err)
	}
	if n == 0 {
		return "", nil
	}
	return h.HexSum(), nil
}

// Verify reports whether input hashes to expected under alg.
//
// expected is matched case-insensitively and compared in constant time.  An
// empty expected digest matches only an empty input.  Returns
// [ErrInvalidDigest] when expected is not hex of the length alg produces.
func Verify(input []byte, alg Algorithm, expected string) (bool, error) {
	spec, err := lookup(alg)
	if err != nil {
		return false, err
	}
	if expected == "" {
		return len(input) == 0, nil
	}
	want := strings.ToLower(expected)
	if len(want) != spec.size*2 {
		return false, fmt.Errorf("%w: %s digest must be %d hex characters, got %d",
			ErrInvalidDigest, alg, spec.size*2, len(want))
	}
	if _, err := hex.DecodeString(want); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	got, err := Sum(input, alg)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1, nil
}

// Hasher is a streaming digest.  Unlike [Sum], it applies no empty-input
// rule: HexSum always returns the digest of exactly the bytes written, which
// for zero bytes is the algorithm's digest of the empty message.
//
// A Hasher is not safe for concurrent use.
type Hasher struct {
	alg Algorithm
	h   hash.Hash
}

// New returns a [Hasher] for alg, or [ErrUnsupportedAlgorithm].
func New(alg Algorithm) (*Hasher, error) {
	spec, err := lookup(alg)
	if err != nil {
		return nil, err
	}
	return &Hasher{alg: alg, h: spec.new()}, nil
}

// Write adds p to the running digest.  It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) { return h.h.Write(p) }

// HexSum returns the lowercase hex digest of the bytes written so far.
// It does not change the running state.
func (h *Hasher) HexSum() string { return hex.EncodeToString(h.h.Sum(nil)) }

// Algorithm returns the algorithm this Hasher computes.
func (h *Hasher) Algorithm() Algorithm { return h.alg }

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return h.h.Size() }

// Reset discards everything written so far.
func (h *Hasher) Reset() { h.h.Reset() }
