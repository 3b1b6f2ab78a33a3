package spd_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spdmanifold/spd"
)

// tol is the numeric tolerance for round-trip assertions (double precision,
// small n).
const tol = 1e-8

// mustManifold builds a manifold tag or fails the test.
func mustManifold(t *testing.T, n int) *spd.Manifold {
	t.Helper()
	m, err := spd.New(n)
	if err != nil {
		t.Fatalf("spd.New(%d): %v", n, err)
	}

	return m
}

// mustPoint builds a cached point or fails the test.
func mustPoint(t *testing.T, p mat.Matrix, opts ...spd.PointOption) *spd.SPDPoint {
	t.Helper()
	sp, err := spd.NewPoint(p, opts...)
	if err != nil {
		t.Fatalf("spd.NewPoint: %v", err)
	}

	return sp
}

// kms returns the Kac–Murdock–Szegő matrix a[i,j] = 0.5^|i−j|, a
// well-conditioned SPD test matrix for any n.
func kms(n int) *mat.SymDense {
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, math.Pow(0.5, float64(j-i)))
		}
	}

	return s
}

// identity returns the n×n identity in symmetric storage.
func identity(n int) *mat.SymDense {
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, 1)
	}

	return s
}

// mulDense multiplies two matrices into fresh dense storage.
func mulDense(a, b mat.Matrix) *mat.Dense {
	r, _ := a.Dims()
	_, c := b.Dims()
	out := mat.NewDense(r, c, nil)
	out.Mul(a, b)

	return out
}

// maxAbsDiff returns the largest entrywise |a−b|.
func maxAbsDiff(a, b mat.Matrix) float64 {
	r, c := a.Dims()
	var worst, d float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d = math.Abs(a.At(i, j) - b.At(i, j))
			if d > worst {
				worst = d
			}
		}
	}

	return worst
}

// frobAsym returns ‖x − xᵗ‖ (Frobenius), the reference value for asymmetry
// residual assertions.
func frobAsym(x mat.Matrix) float64 {
	n, _ := x.Dims()
	var sum, d float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d = x.At(i, j) - x.At(j, i)
			sum += d * d
		}
	}

	return math.Sqrt(sum)
}
