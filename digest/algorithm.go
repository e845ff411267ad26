package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a digest algorithm.
// Using a named string type prevents accidental confusion with plain strings.
type Algorithm string

const (
	// MD5 is the legacy 128-bit digest.  Use it for interoperability with
	// existing checksums only; it is not collision resistant.
	MD5 Algorithm = "md5"
	// SHA1 is the 160-bit SHA-1 digest.  Legacy use only.
	SHA1 Algorithm = "sha1"
	// SHA256 is the 256-bit SHA-2 digest.
	SHA256 Algorithm = "sha256"
	// SHA512 is the 512-bit SHA-2 digest.
	SHA512 Algorithm = "sha512"
	// SHA3_256 is the 256-bit SHA-3 digest (FIPS 202).
	SHA3_256 Algorithm = "sha3-256"
	// BLAKE2b256 is BLAKE2b with a 32-byte output and no key.
	BLAKE2b256 Algorithm = "blake2b-256"
	// SHAKE256 is the SHAKE256 extendable-output function read to 64 bytes.
	SHAKE256 Algorithm = "shake256"
	// K12 is KangarooTwelve (draft 10, empty customisation) read to 32 bytes.
	K12 Algorithm = "k12"
)

// algorithmSpec holds the per-algorithm parameters.
type algorithmSpec struct {
	size int              // digest length in bytes
	new  func() hash.Hash // fresh, unkeyed state
}

var algorithmSpecs = map[Algorithm]algorithmSpec{
	MD5:    {size: md5.Size, new: md5.New},
	SHA1:   {size: sha1.Size, new: sha1.New},
	SHA256: {size: sha256.Size, new: sha256.New},
	SHA512: {size: sha512.Size, new: sha512.New},
	SHA3_256: {size: 32, new: func() hash.Hash {
		return sha3.New256()
	}},
	BLAKE2b256: {size: blake2b.Size256, new: func() hash.Hash {
		// New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	}},
	SHAKE256: {size: shake256Size, new: newShake256},
	K12:      {size: k12Size, new: newK12},
}

// algorithmAliases maps normalised spellings accepted by [ParseAlgorithm].
var algorithmAliases = map[string]Algorithm{
	"md5":            MD5,
	"legacy128":      MD5,
	"sha1":           SHA1,
	"sha256":         SHA256,
	"sha2256":        SHA256,
	"sha512":         SHA512,
	"sha2512":        SHA512,
	"sha3256":        SHA3_256,
	"blake2b":        BLAKE2b256,
	"blake2b256":     BLAKE2b256,
	"shake256":       SHAKE256,
	"k12":            K12,
	"kangarootwelve": K12,
}

// Algorithms returns every supported algorithm, weakest first.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA512, SHA3_256, BLAKE2b256, SHAKE256, K12}
}

// Supported reports whether alg is known to this package.
func Supported(alg Algorithm) bool {
	_, ok := algorithmSpecs[alg]
	return ok
}

// HexLen returns the number of hex characters produced by alg.
// It returns -1 for unsupported algorithms.
func HexLen(alg Algorithm) int {
	if spec, ok := algorithmSpecs[alg]; ok {
		return spec.size * 2
	}
	return -1
}

// ParseAlgorithm resolves a configuration string such as "SHA-256",
// "sha3_256" or "MD5" to an [Algorithm].  Matching ignores case, hyphens and
// underscores.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	if alg, ok := algorithmAliases[key]; ok {
		return alg, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// lookup returns the spec for alg or a wrapped [ErrUnsupportedAlgorithm].
func lookup(alg Algorithm) (algorithmSpec, error) {
	spec, ok := algorithmSpecs[alg]
	if !ok {
		return algorithmSpec{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	return spec, nil
}
