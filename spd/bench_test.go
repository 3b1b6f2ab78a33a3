package spd_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/spdmanifold/spd"
)

const benchN = 20

// BenchmarkNewPoint measures construction with all caches materialized.
func BenchmarkNewPoint(b *testing.B) {
	src := kms(benchN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spd.NewPoint(src); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSqrt_Cached measures the O(1) accessor fast path.
func BenchmarkSqrt_Cached(b *testing.B) {
	p, err := spd.NewPoint(kms(benchN))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Sqrt()
	}
}

// BenchmarkSqrt_Derived measures the recompute path of a point that never
// materialized its square root.
func BenchmarkSqrt_Derived(b *testing.B) {
	p, err := spd.NewPoint(kms(benchN), spd.StoreSqrt(false))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Sqrt()
	}
}

// BenchmarkSqrt_Raw measures the trivial wrapper, which re-factorizes on
// every call.
func BenchmarkSqrt_Raw(b *testing.B) {
	r := spd.AsRaw(kms(benchN))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Sqrt()
	}
}

// BenchmarkRand measures random point generation.
func BenchmarkRand(b *testing.B) {
	man, err := spd.New(benchN)
	if err != nil {
		b.Fatal(err)
	}
	src := rand.NewSource(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = man.Rand(spd.WithSource(src)); err != nil {
			b.Fatal(err)
		}
	}
}
