// SPDX-License-Identifier: MIT

// Package spd: copy & allocation semantics of the cached point.
//
// Purpose:
//   - Clone: deep copy; present fields copied into fresh storage, missing
//     fields stay missing, the eigendecomposition is never aliased.
//   - CopyFrom: lazy, shape-preserving copy-into — the RECEIVER's shape
//     decides what gets filled, so quantities the receiver never materialized
//     are never computed.
//   - Alloc: fresh point of the same shape whose eigendecomposition is
//     re-computed from the reconstructed matrix value.
//
// AI-Hints:
//   - CopyFrom is the only in-place mutation of an SPDPoint; it requires
//     exclusive access to the receiver (see the package concurrency notes).
//   - Alloc re-runs the eigensolver on purpose (fresh factorization of the
//     same value); Clone deliberately does not — it copies the pair.

package spd

import "gonum.org/v1/gonum/mat"

// Operation name constants for unified error wrapping.
const (
	opCopyFrom = "CopyFrom"
	opAlloc    = "Alloc"
)

// cloneSym deep-copies symmetric storage.
func cloneSym(s *mat.SymDense) *mat.SymDense {
	out := mat.NewSymDense(s.SymmetricDim(), nil)
	out.CopySym(s)

	return out
}

// Clone returns a deep copy of the point: fresh eigendecomposition storage
// (elementwise copy, never aliased with the receiver), fresh storage for
// every present field, and missing fields left missing.
// Complexity: O(n²) per present field; no factorization runs.
func (p *SPDPoint) Clone() *SPDPoint {
	out := &SPDPoint{eigen: p.eigen.clone()}
	if p.matrix != nil {
		out.matrix = cloneSym(p.matrix)
	}
	if p.sqrt != nil {
		out.sqrt = cloneSym(p.sqrt)
	}
	if p.sqrtInv != nil {
		out.sqrtInv = cloneSym(p.sqrtInv)
	}

	return out
}

// CopyFrom fills the receiver from src, preserving the receiver's
// present/missing shape:
//   - the eigendecomposition is always copied elementwise;
//   - each field PRESENT in the receiver is filled from the corresponding
//     src field when src has it, otherwise derived from src's
//     eigendecomposition;
//   - fields MISSING in the receiver remain missing — the lazy contract:
//     quantities the receiver never asked to materialize are never computed.
//
// Returns ErrNilPoint for a nil src and ErrDimensionMismatch when the two
// points represent different matrix sizes.
// Complexity: O(n²) per copied field, O(n³) per derived field.
func (p *SPDPoint) CopyFrom(src *SPDPoint) error {
	if src == nil {
		return spdErrorf(opCopyFrom, ErrNilPoint)
	}
	if src.Dim() != p.Dim() {
		return spdErrorf(opCopyFrom, ErrDimensionMismatch)
	}

	p.eigen = src.eigen.clone()

	if p.matrix != nil {
		if src.matrix != nil {
			p.matrix.CopySym(src.matrix)
		} else {
			p.matrix.CopySym(src.eigen.Matrix())
		}
	}
	if p.sqrt != nil {
		if src.sqrt != nil {
			p.sqrt.CopySym(src.sqrt)
		} else {
			p.sqrt.CopySym(src.eigen.Sqrt())
		}
	}
	if p.sqrtInv != nil {
		if src.sqrtInv != nil {
			p.sqrtInv.CopySym(src.sqrtInv)
		} else {
			p.sqrtInv.CopySym(src.eigen.SqrtInv())
		}
	}

	return nil
}

// Alloc produces a new point of the same present/missing shape and the same
// underlying value, with fresh storage for each present field and a FRESHLY
// computed eigendecomposition of the reconstructed matrix.
//
// Returns ErrEigenFailed if the eigensolver fails on the reconstruction
// (cannot happen for a point built by NewPoint from finite input).
// Complexity: O(n³).
func (p *SPDPoint) Alloc() (*SPDPoint, error) {
	value := p.Matrix() // stored field or reconstruction; not mutated below

	eig, err := eigenOf(value)
	if err != nil {
		return nil, spdErrorf(opAlloc, err)
	}

	out := &SPDPoint{eigen: eig}
	if p.matrix != nil {
		out.matrix = cloneSym(value) // fresh storage, never aliased with p
	}
	if p.sqrt != nil {
		out.sqrt = eig.Sqrt()
	}
	if p.sqrtInv != nil {
		out.sqrtInv = eig.SqrtInv()
	}

	return out, nil
}
