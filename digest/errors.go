package digest

import "errors"

// Sentinel errors returned by digest operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := digest.Sum(data, alg)
//	if errors.Is(err, digest.ErrUnsupportedAlgorithm) {
//	    // configuration error: alg is not available
//	}
var (
	// ErrUnsupportedAlgorithm is returned when the requested algorithm is not
	// known to this package.  It is a configuration error; retrying the same
	// call will never succeed.
	ErrUnsupportedAlgorithm = errors.New("digest: unsupported algorithm")

	// ErrInvalidDigest is returned by [Verify] when the expected digest is not
	// a hexadecimal string of the length produced by the selected algorithm.
	ErrInvalidDigest = errors.New("digest: invalid hex digest")
)
