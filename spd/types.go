// SPDX-License-Identifier: MIT

// Package spd: domain types of the SPD manifold core.
// This file intentionally contains ONLY domain-facing types: the sampling
// mode enum, the Point capability interface with its trivial Raw variant, the
// external collaborator interfaces, and the Eigen pair. The Manifold tag and
// the cached SPDPoint live in dedicated files (manifold.go, point.go); errors
// and options live in errors.go / options.go per the package conventions.

package spd

import "gonum.org/v1/gonum/mat"

// RandMode selects how RandTangent draws around a base point.
type RandMode int

const (
	// ModeGaussian draws a tangent vector as a Gaussian-weighted combination
	// of an orthonormal tangent basis transported from the identity to the
	// base point (collaborators required, see WithTangentBasis/WithTransport).
	ModeGaussian RandMode = iota

	// ModeRician perturbs the Cholesky factor of the base point and returns
	// R·Rᵗ for the perturbed factor R.
	//
	// CAUTION: despite being invoked through the tangent-sampling entry
	// point, this mode yields a manifold POINT near the base point, not a
	// tangent vector at it. The discrepancy is inherited from the reference
	// behavior and preserved deliberately; callers selecting ModeRician must
	// treat the result as a point.
	ModeRician
)

// Point is the capability interface every SPD manifold operation dispatches
// on: "has a matrix, a square root and an inverse square root view". Two
// variants implement it — the trivial Raw wrapper around a plain symmetric
// matrix (recomputes everything on every call) and the caching *SPDPoint.
//
// Accessors return views owned by the implementation; callers must not
// modify the returned matrices. Accessors never mutate the point, so
// concurrent read-only use of a single Point is safe.
type Point interface {
	// Dim returns the side length n of the represented n×n matrix.
	// Complexity: O(1).
	Dim() int

	// Matrix returns the represented SPD matrix p.
	Matrix() *mat.SymDense

	// Sqrt returns p^{1/2}.
	Sqrt() *mat.SymDense

	// SqrtInv returns p^{-1/2}.
	SqrtInv() *mat.SymDense

	// SqrtAndSqrtInv returns p^{1/2} and p^{-1/2} together. Implementations
	// that must factorize to answer do so exactly once for both outputs.
	SqrtAndSqrtInv() (*mat.SymDense, *mat.SymDense)
}

// Raw is the trivial Point variant: a plain symmetric matrix with no caches.
// Every derived quantity is recomputed on every call, so prefer *SPDPoint
// when p^{1/2} or p^{-1/2} is consumed repeatedly.
//
// Raw accessors assume the wrapped matrix is a valid manifold point (run
// Manifold.CheckMatrix first if provenance is untrusted); if the eigensolver
// fails on the wrapped value, accessors panic — the contract violation is
// propagated uncaught rather than silently absorbed.
type Raw struct {
	sym *mat.SymDense
}

// AsRaw wraps a plain symmetric matrix as a Point without copying.
// The wrapped matrix must not be mutated while the Raw value is in use.
func AsRaw(m *mat.SymDense) Raw { return Raw{sym: m} }

// Dim returns the side length of the wrapped matrix.
func (r Raw) Dim() int { return r.sym.SymmetricDim() }

// Matrix returns the wrapped matrix itself (identity view, no copy).
func (r Raw) Matrix() *mat.SymDense { return r.sym }

// Sqrt recomputes p^{1/2} from a fresh eigendecomposition.
// Complexity: O(n³) per call.
func (r Raw) Sqrt() *mat.SymDense { return mustEigenOf(r.sym).Sqrt() }

// SqrtInv recomputes p^{-1/2} from a fresh eigendecomposition.
// Complexity: O(n³) per call.
func (r Raw) SqrtInv() *mat.SymDense { return mustEigenOf(r.sym).SqrtInv() }

// SqrtAndSqrtInv recomputes both roots from a SINGLE eigendecomposition —
// the factorization runs exactly once and is reused for both outputs.
func (r Raw) SqrtAndSqrtInv() (*mat.SymDense, *mat.SymDense) {
	e := mustEigenOf(r.sym)

	return e.Sqrt(), e.SqrtInv()
}

// TangentBasis is the external "diagonalizing orthonormal basis at a point"
// collaborator consumed by Gaussian tangent sampling. Implementations return
// an orthonormal basis of the tangent space at p, in a stable order.
type TangentBasis interface {
	OrthonormalBasis(m *Manifold, p Point) ([]*mat.SymDense, error)
}

// Transport is the external parallel-transport collaborator consumed by
// Gaussian tangent sampling. Implementations move the tangent vector x from
// the tangent space at from into the tangent space at to.
type Transport interface {
	Transport(m *Manifold, from, to Point, x *mat.SymDense) (*mat.SymDense, error)
}

// Eigen is the eigendecomposition p = U·diag(λ)·Uᵗ of a symmetric matrix:
// ascending eigenvalues plus orthonormal eigenvectors (columns of U).
// An Eigen value is immutable for the lifetime of the point owning it;
// callers must not modify the exposed fields.
type Eigen struct {
	// Values holds the n eigenvalues in ascending order.
	Values []float64

	// Vectors holds the corresponding orthonormal eigenvectors as columns.
	Vectors *mat.Dense
}
