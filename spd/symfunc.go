// SPDX-License-Identifier: MIT

// Package spd: numeric matrix-function kernels.
//
// Purpose:
//   - Wrap the external symmetric eigensolver (gonum mat.EigenSym) behind a
//     single entry point returning the package's Eigen pair.
//   - Evaluate eigendecomposition-backed matrix functions (reconstruction,
//     square root, inverse square root) with a numerical floor that keeps the
//     evaluation stable as eigenvalues approach zero.
//   - Provide symmetrization of arbitrary ambient matrices.
//
// Determinism & Performance:
//   - All kernels are pure; inputs are never mutated.
//   - Eigendecomposition dominates at O(n³); function evaluation is O(n³)
//     for the two dense multiplications, O(n) for the spectral map.
//
// AI-Hints:
//   - eigenOf is the ONLY call site of the eigensolver in this package; keep
//     it that way so failure handling stays uniform.
//   - Spectral maps receive floored eigenvalues; never call math.Sqrt on a
//     raw eigenvalue anywhere else.

package spd

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// evFloor is the smallest positive normal float64. Eigenvalues are floored
// to it before any square-root or inverse operation, guarding against
// non-positive values produced by rounding error.
const evFloor = 0x1p-1022

// half is the symmetrization coefficient in (X + Xᵗ)/2.
const half = 0.5

// floorEv clamps a single eigenvalue to the positive floor.
func floorEv(v float64) float64 {
	if v < evFloor {
		return evFloor
	}

	return v
}

// eigenOf computes the eigendecomposition of a symmetric matrix via the
// external eigensolver. Returns ErrEigenFailed when the solver does not
// converge; no retry is attempted.
// Complexity: O(n³).
func eigenOf(p mat.Symmetric) (Eigen, error) {
	var es mat.EigenSym
	if ok := es.Factorize(p, true); !ok {
		return Eigen{}, ErrEigenFailed
	}

	n := p.SymmetricDim()
	vecs := mat.NewDense(n, n, nil)
	es.VectorsTo(vecs)

	return Eigen{Values: es.Values(nil), Vectors: vecs}, nil
}

// mustEigenOf is eigenOf for contexts whose contract already guarantees a
// decomposable input (Raw accessors). A solver failure here is a caller
// precondition violation and is propagated uncaught.
func mustEigenOf(p mat.Symmetric) Eigen {
	e, err := eigenOf(p)
	if err != nil {
		panic(err)
	}

	return e
}

// apply evaluates U·diag(f(λ))·Uᵗ and folds the (numerically symmetric)
// result into symmetric storage. f receives RAW eigenvalues; spectral maps
// that divide or take roots must floor inside f.
// Complexity: O(n³) time, O(n²) space.
func (e Eigen) apply(f func(float64) float64) *mat.SymDense {
	n := len(e.Values)

	// Scale the columns of U by f(λ_j): scaled[i,j] = U[i,j]·f(λ_j).
	scaled := mat.NewDense(n, n, nil)
	var i, j int
	for j = 0; j < n; j++ {
		fj := f(e.Values[j])
		for i = 0; i < n; i++ {
			scaled.Set(i, j, e.Vectors.At(i, j)*fj)
		}
	}

	// full = scaled·Uᵗ.
	full := mat.NewDense(n, n, nil)
	full.Mul(scaled, e.Vectors.T())

	return foldSym(full)
}

// Matrix reconstructs the original matrix p = U·diag(λ)·Uᵗ.
func (e Eigen) Matrix() *mat.SymDense {
	return e.apply(func(v float64) float64 { return v })
}

// Sqrt evaluates p^{1/2} = U·diag(√λ)·Uᵗ with floored eigenvalues.
func (e Eigen) Sqrt() *mat.SymDense {
	return e.apply(func(v float64) float64 { return math.Sqrt(floorEv(v)) })
}

// SqrtInv evaluates p^{-1/2} = U·diag(1/√λ)·Uᵗ with floored eigenvalues.
func (e Eigen) SqrtInv() *mat.SymDense {
	return e.apply(func(v float64) float64 { return 1 / math.Sqrt(floorEv(v)) })
}

// clone deep-copies the pair into fresh storage (never aliased).
func (e Eigen) clone() Eigen {
	vals := make([]float64, len(e.Values))
	copy(vals, e.Values)

	vecs := mat.NewDense(len(e.Values), len(e.Values), nil)
	vecs.Copy(e.Vectors)

	return Eigen{Values: vals, Vectors: vecs}
}

// symmetrize maps an arbitrary ambient matrix into symmetric storage via
// (X + Xᵗ)/2. The input is not mutated.
// Complexity: O(n²).
func symmetrize(x mat.Matrix) *mat.SymDense {
	n, _ := x.Dims()
	s := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s.SetSym(i, j, half*(x.At(i, j)+x.At(j, i)))
		}
	}

	return s
}

// foldSym folds a numerically-symmetric dense product into symmetric
// storage, averaging the two triangles to shed rounding asymmetry.
func foldSym(x *mat.Dense) *mat.SymDense { return symmetrize(x) }

// symmetryResidual computes ‖X − Xᵗ‖ (Frobenius norm) of an arbitrary
// square matrix. Zero for exactly symmetric inputs.
// Complexity: O(n²).
func symmetryResidual(x mat.Matrix) float64 {
	n, _ := x.Dims()
	var sum, d float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d = x.At(i, j) - x.At(j, i)
			sum += d * d
		}
	}

	return math.Sqrt(sum)
}
