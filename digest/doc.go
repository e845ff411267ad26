// Package digest computes fixed-length, lowercase hexadecimal fingerprints
// of arbitrary byte input.
//
// # Algorithms
//
// Every algorithm is identified by an [Algorithm] value:
//
//   - [MD5]:        the legacy 128-bit digest (32 hex characters)
//   - [SHA1]:       160-bit (40 hex characters)
//   - [SHA256]:     256-bit (64 hex characters)
//   - [SHA512]:     512-bit (128 hex characters)
//   - [SHA3_256]:   SHA3-256, FIPS 202 (64 hex characters)
//   - [BLAKE2b256]: BLAKE2b with a 32-byte output (64 hex characters)
//   - [SHAKE256]:   SHAKE256 squeezed to 64 bytes (128 hex characters)
//   - [K12]:        KangarooTwelve squeezed to 32 bytes (64 hex characters)
//
// Digests are integrity fingerprints, not password storage.  MD5 and SHA-1
// are kept for interoperability with legacy checksums only.
//
// # Quick start
//
//	sum, err := digest.Sum([]byte("hello"), digest.SHA256)
//	// sum == "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
//
//	ok, err := digest.Verify([]byte("hello"), digest.SHA256, sum) // true
//
// # Empty input
//
// A zero-length input is answered with the empty string and a nil error
// instead of the digest of zero bytes.  The algorithm is still validated
// first, so an unknown [Algorithm] always surfaces [ErrUnsupportedAlgorithm].
// Callers that need the true digest of an empty message can call the
// underlying crypto package directly.
//
// # Text input
//
// The package is byte oriented.  [SumString] hashes the UTF-8 bytes of a Go
// string; callers holding text in another encoding must convert it first.
//
// # Thread safety
//
// All package-level functions are safe for concurrent use.  A [Hasher] holds
// running state and must not be shared between goroutines without external
// synchronisation.
package digest
