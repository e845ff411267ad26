package digest_test

import (
	"bytes"
	"testing"

	"github.com/hasbyte1/go-transform-utils/digest"
)

// ──────────────────────────────────────────────────────────────────────────────
// Throughput per algorithm over a 4 KiB message
// ──────────────────────────────────────────────────────────────────────────────

var benchPayload = bytes.Repeat([]byte{0x5a}, 4096)

func benchmarkSum(b *testing.B, alg digest.Algorithm) {
	b.SetBytes(int64(len(benchPayload)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = digest.Sum(benchPayload, alg)
	}
}

func BenchmarkSum_MD5(b *testing.B)        { benchmarkSum(b, digest.MD5) }
func BenchmarkSum_SHA256(b *testing.B)     { benchmarkSum(b, digest.SHA256) }
func BenchmarkSum_SHA512(b *testing.B)     { benchmarkSum(b, digest.SHA512) }
func BenchmarkSum_SHA3_256(b *testing.B)   { benchmarkSum(b, digest.SHA3_256) }
func BenchmarkSum_BLAKE2b256(b *testing.B) { benchmarkSum(b, digest.BLAKE2b256) }
func BenchmarkSum_SHAKE256(b *testing.B)   { benchmarkSum(b, digest.SHAKE256) }
func BenchmarkSum_K12(b *testing.B)        { benchmarkSum(b, digest.K12) }

func BenchmarkVerify_SHA256(b *testing.B) {
	want, _ := digest.Sum(benchPayload, digest.SHA256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = digest.Verify(benchPayload, digest.SHA256, want)
	}
}
