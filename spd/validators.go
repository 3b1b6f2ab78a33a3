// SPDX-License-Identifier: MIT
// Package: spd
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep facades minimal by delegating nil/shape/symmetry checks here.
//  - Return sentinel-backed errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//  - The symmetry check runs O(n²); everything else is O(1).
//
// AI-Hints:
//  - Centralizing validators eliminates inconsistent guard logic across files.
//  - Composite validators follow a fixed sequence: nil → shape → symmetry.
//  - validateSymmetric reports the FULL Frobenius residual, which is what the
//    structured AsymmetryError carries to the caller.

package spd

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validatePoint ensures the Point reference is usable: neither a nil
// interface nor a typed-nil *SPDPoint smuggled behind the interface.
// Complexity: O(1).
func validatePoint(p Point) error {
	if p == nil {
		return validatorErrorf("validatePoint", ErrNilPoint)
	}
	if sp, ok := p.(*SPDPoint); ok && sp == nil {
		return validatorErrorf("validatePoint", ErrNilPoint)
	}

	return nil
}

// validateMatrixNotNil ensures a matrix argument is present.
// Complexity: O(1).
func validateMatrixNotNil(x mat.Matrix) error {
	if x == nil {
		return validatorErrorf("validateMatrixNotNil", ErrNilMatrix)
	}

	return nil
}

// validateShape ensures x is want×want. Assumes x is not nil (caller must
// ensure). Returns a *SizeError (unwraps to ErrDimensionMismatch) otherwise.
// Complexity: O(1).
func validateShape(x mat.Matrix, want int) error {
	r, c := x.Dims()
	if r != want || c != want {
		return &SizeError{Rows: r, Cols: c, Want: want}
	}

	return nil
}

// validateSymmetric ensures ‖x − xᵗ‖ ≤ eps (Frobenius residual). Assumes x
// is square. Returns a *AsymmetryError carrying the residual otherwise.
// Complexity: O(n²).
func validateSymmetric(x mat.Matrix, eps float64) error {
	if res := symmetryResidual(x); res > eps {
		return &AsymmetryError{Residual: res, Eps: eps}
	}

	return nil
}

// validateDst ensures an in-place destination is present and want×want.
// Complexity: O(1).
func validateDst(dst *mat.SymDense, want int) error {
	if dst == nil {
		return validatorErrorf("validateDst", ErrNilMatrix)
	}
	if dst.SymmetricDim() != want {
		return &SizeError{Rows: dst.SymmetricDim(), Cols: dst.SymmetricDim(), Want: want}
	}

	return nil
}
