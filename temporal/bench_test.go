package temporal_test

import (
	"testing"
	"time"

	"github.com/hasbyte1/go-transform-utils/temporal"
)

var benchInstant = time.Date(2024, time.March, 7, 9, 5, 3, 123456789, time.UTC)

func BenchmarkFormat_Default(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = temporal.Format(benchInstant, "")
	}
}

func BenchmarkFormat_ISO(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = temporal.Format(benchInstant, "yyyy-MM-dd'T'HH:mm:ss.SSSXXX")
	}
}

func BenchmarkParse_Default(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = temporal.Parse("2024-03-07 09:05:03", "")
	}
}

func BenchmarkDifference(b *testing.B) {
	end := benchInstant.Add(1000 * time.Hour)
	for i := 0; i < b.N; i++ {
		_ = temporal.Difference(benchInstant, end, temporal.Milliseconds)
	}
}
