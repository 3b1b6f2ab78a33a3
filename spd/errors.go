// SPDX-License-Identifier: MIT
// Package spd: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors used across the spd
// package, plus the structured error types that carry the offending quantity
// for domain-validity failures. All operations MUST return these sentinels
// (possibly behind a structured wrapper) and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions; panics
// are reserved for contract violations (see Raw accessors).

package spd

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "spd: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at
// the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> shape mismatch -> asymmetry -> definiteness -> numerical failure.

var (
	// ErrBadSize is returned when a requested manifold size is invalid (n < 1).
	ErrBadSize = errors.New("spd: manifold size must be positive")

	// ErrNilPoint indicates that a nil Point (or nil *SPDPoint) was used.
	ErrNilPoint = errors.New("spd: nil point")

	// ErrNilMatrix indicates that a nil matrix argument or destination was used.
	ErrNilMatrix = errors.New("spd: nil matrix")

	// ErrDimensionMismatch indicates that matrix dimensions disagree with the
	// manifold's declared size, or that two operands have incompatible shapes.
	// Deliberately distinct from the symmetry/definiteness errors below.
	ErrDimensionMismatch = errors.New("spd: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance (eps).
	ErrAsymmetry = errors.New("spd: matrix is not symmetric within eps")

	// ErrNotPositiveDefinite signals that a symmetric matrix has at least one
	// eigenvalue ≤ 0 and therefore lies outside the manifold.
	ErrNotPositiveDefinite = errors.New("spd: matrix is not positive definite")

	// ErrEigenFailed indicates that the symmetric eigensolver failed to
	// converge. Treated as a fatal precondition violation by the caller; the
	// package performs no retry.
	ErrEigenFailed = errors.New("spd: symmetric eigendecomposition failed")

	// ErrCholeskyFailed indicates that the Cholesky factorization of a base
	// point failed (the base point is not positive definite).
	ErrCholeskyFailed = errors.New("spd: cholesky factorization failed")

	// ErrMissingCollaborator is returned by Gaussian tangent sampling when no
	// TangentBasis or Transport collaborator was configured via options.
	ErrMissingCollaborator = errors.New("spd: tangent basis or transport collaborator not configured")
)

// spdErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades; callers still match with errors.Is/errors.As.
// Use only when err != nil to avoid wrapping a nil cause.
func spdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// AsymmetryError reports a failed symmetry check together with the residual
// ‖X − Xᵗ‖ (Frobenius norm) that exceeded the tolerance. It unwraps to
// ErrAsymmetry so errors.Is keeps working at call sites.
type AsymmetryError struct {
	// Residual is the Frobenius norm of X − Xᵗ.
	Residual float64
	// Eps is the tolerance the residual was compared against.
	Eps float64
}

// Error implements the error interface with a stable, human-readable message.
func (e *AsymmetryError) Error() string {
	return fmt.Sprintf("%v (residual %.6g, eps %.6g)", ErrAsymmetry, e.Residual, e.Eps)
}

// Unwrap exposes the ErrAsymmetry sentinel for errors.Is matching.
func (e *AsymmetryError) Unwrap() error { return ErrAsymmetry }

// DefinitenessError reports a failed positive-definiteness check together
// with the full eigenvalue set of the offending matrix (ascending order).
// It unwraps to ErrNotPositiveDefinite.
type DefinitenessError struct {
	// Eigenvalues holds all eigenvalues of the checked matrix, ascending.
	Eigenvalues []float64
}

// Error implements the error interface; the message carries the eigenvalues
// so the failure is diagnosable without re-running the check.
func (e *DefinitenessError) Error() string {
	return fmt.Sprintf("%v (eigenvalues %v)", ErrNotPositiveDefinite, e.Eigenvalues)
}

// Unwrap exposes the ErrNotPositiveDefinite sentinel for errors.Is matching.
func (e *DefinitenessError) Unwrap() error { return ErrNotPositiveDefinite }

// SizeError reports a shape mismatch against the manifold's declared size.
// It unwraps to ErrDimensionMismatch.
type SizeError struct {
	// Rows, Cols describe the observed shape.
	Rows, Cols int
	// Want is the manifold's declared side length n.
	Want int
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	return fmt.Sprintf("%v (got %dx%d, want %dx%d)", ErrDimensionMismatch, e.Rows, e.Cols, e.Want, e.Want)
}

// Unwrap exposes the ErrDimensionMismatch sentinel for errors.Is matching.
func (e *SizeError) Unwrap() error { return ErrDimensionMismatch }
