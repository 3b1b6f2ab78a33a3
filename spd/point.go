// SPDX-License-Identifier: MIT

// Package spd: the cached SPD point.
//
// Purpose:
//   - Represent one manifold element p by its eigendecomposition (mandatory)
//     plus optionally materialized derived quantities: the original matrix,
//     p^{1/2} and p^{-1/2}.
//   - Expose accessors that transparently compute-on-demand when a field is
//     absent, WITHOUT mutating the point (no retroactive caching).
//
// Behavior highlights:
//   - The eigendecomposition is the single source of truth: every optional
//     field equals U·diag(f(λ))·Uᵗ for its spectral map f, so the caches can
//     never disagree with each other or go stale.
//   - Which fields are materialized is decided once, at construction, via
//     three independent store flags (see StoreMatrix/StoreSqrt/StoreSqrtInv).
//   - Copy/allocation semantics preserve the present/missing shape of a
//     point; see copy.go.
//
// Complexity quicksheet:
//   - NewPoint: one O(n³) eigendecomposition + O(n³) per enabled store flag.
//   - Accessors: O(1) on a stored field, O(n³) when deriving from eigen.
//
// AI-Hints:
//   - Cache p^{1/2}/p^{-1/2} (the defaults) when the point feeds repeated
//     exponential/log-map evaluations; each saved accessor call is O(n³).
//   - Use StoreX(false) flags for short-lived points to skip the upfront cost.

package spd

import "gonum.org/v1/gonum/mat"

// Operation name constants for unified error wrapping.
const (
	opNewPoint = "NewPoint"
	opWrap     = "Wrap"
)

// SPDPoint is the caching Point variant: an eigendecomposition that is
// always present, plus three optional derived fields (nil means "missing").
// A missing field is computable at any time from the eigendecomposition
// alone and is never stale, because the eigendecomposition is immutable for
// the point's lifetime.
//
// SPDPoint is never mutated in place except through CopyFrom (explicit,
// shape-preserving) — accessors are read-only, so concurrent reads of one
// point are safe.
type SPDPoint struct {
	eigen   Eigen         // mandatory, single source of truth
	matrix  *mat.SymDense // optional: p
	sqrt    *mat.SymDense // optional: p^{1/2}
	sqrtInv *mat.SymDense // optional: p^{-1/2}
}

// NewPoint constructs a cached point from an arbitrary ambient matrix.
//
// Implementation:
//   - Stage 1: validate (non-nil, square), then force symmetrization (X+Xᵗ)/2.
//   - Stage 2: one eigendecomposition of the symmetrized input.
//   - Stage 3: materialize each derived quantity whose store flag is enabled
//     (all three by default), flooring eigenvalues before roots/inverses.
//
// Inputs:
//   - p: the matrix to represent; assumed to be a valid manifold point
//     (run Manifold.CheckMatrix first if provenance is untrusted).
//   - opts: StoreMatrix/StoreSqrt/StoreSqrtInv switches.
//
// Returns:
//   - *SPDPoint: the cached point.
//   - error: ErrNilMatrix, ErrDimensionMismatch (non-square input), or
//     ErrEigenFailed when the eigensolver does not converge.
//
// Complexity:
//   - Time O(n³), Space O(n²) per materialized field.
func NewPoint(p mat.Matrix, opts ...PointOption) (*SPDPoint, error) {
	if err := validateMatrixNotNil(p); err != nil {
		return nil, spdErrorf(opNewPoint, err)
	}
	if r, c := p.Dims(); r != c {
		return nil, spdErrorf(opNewPoint, ErrDimensionMismatch)
	}

	sym := symmetrize(p)
	eig, err := eigenOf(sym)
	if err != nil {
		return nil, spdErrorf(opNewPoint, err)
	}

	o := gatherPointOptions(opts...)
	sp := &SPDPoint{eigen: eig}
	if o.storeMatrix {
		sp.matrix = sym // symmetrize allocated fresh storage; no aliasing of p
	}
	if o.storeSqrt {
		sp.sqrt = eig.Sqrt()
	}
	if o.storeSqrtInv {
		sp.sqrtInv = eig.SqrtInv()
	}

	return sp, nil
}

// Wrap converts any Point into a cached *SPDPoint. Idempotent: an argument
// that already is a *SPDPoint is returned unchanged (no double-wrapping, no
// recomputation, opts ignored); anything else goes through NewPoint.
func Wrap(p Point, opts ...PointOption) (*SPDPoint, error) {
	if err := validatePoint(p); err != nil {
		return nil, spdErrorf(opWrap, err)
	}
	if sp, ok := p.(*SPDPoint); ok {
		return sp, nil
	}

	sp, err := NewPoint(p.Matrix(), opts...)
	if err != nil {
		return nil, spdErrorf(opWrap, err)
	}

	return sp, nil
}

// Dim returns the side length n of the represented matrix.
func (p *SPDPoint) Dim() int { return len(p.eigen.Values) }

// Eigen returns a deep copy of the point's eigendecomposition. The copy
// keeps the point's internal pair safe from caller mutation.
func (p *SPDPoint) Eigen() Eigen { return p.eigen.clone() }

// Matrix returns the represented matrix p: the stored field when present,
// otherwise a reconstruction U·diag(λ)·Uᵗ. The point is not mutated — a
// derived result is NOT cached retroactively.
func (p *SPDPoint) Matrix() *mat.SymDense {
	if p.matrix != nil {
		return p.matrix
	}

	return p.eigen.Matrix()
}

// Sqrt returns p^{1/2}: the stored field when present, otherwise derived
// from the eigendecomposition. Never mutates the point.
func (p *SPDPoint) Sqrt() *mat.SymDense {
	if p.sqrt != nil {
		return p.sqrt
	}

	return p.eigen.Sqrt()
}

// SqrtInv returns p^{-1/2}: the stored field when present, otherwise derived
// from the eigendecomposition. Never mutates the point.
func (p *SPDPoint) SqrtInv() *mat.SymDense {
	if p.sqrtInv != nil {
		return p.sqrtInv
	}

	return p.eigen.SqrtInv()
}

// SqrtAndSqrtInv returns p^{1/2} and p^{-1/2} together. The eigendecomposition
// already exists on a constructed point, so no factorization runs at all —
// each missing side costs only its O(n³) spectral evaluation.
func (p *SPDPoint) SqrtAndSqrtInv() (*mat.SymDense, *mat.SymDense) {
	return p.Sqrt(), p.SqrtInv()
}

// HasMatrix reports whether the original matrix is materialized.
func (p *SPDPoint) HasMatrix() bool { return p.matrix != nil }

// HasSqrt reports whether p^{1/2} is materialized.
func (p *SPDPoint) HasSqrt() bool { return p.sqrt != nil }

// HasSqrtInv reports whether p^{-1/2} is materialized.
func (p *SPDPoint) HasSqrtInv() bool { return p.sqrtInv != nil }
