// SPDX-License-Identifier: MIT

// Package spd: the manifold tag — structural queries and validity checks.
//
// Purpose:
//   - Manifold is a zero-data tag parameterized by the matrix side length n.
//   - Structural queries: Dim, Size, InjectivityRadius, Embed, Project,
//     ZeroVector — all O(1) or O(n²), no factorizations.
//   - Validity predicates: CheckMatrix/CheckPoint/CheckVector/CheckSize —
//     pure, returning structured domain errors, never aborting the process.
//
// Behavior highlights:
//   - Checks are informational: callers decide whether a failure is fatal.
//   - CheckVector deliberately does NOT re-validate the base point; it
//     composes with CheckPoint instead of duplicating it.
//   - Embedding is the identity: an SPD matrix embeds into ℝ^{n×n} as itself,
//     and so does a (symmetric) tangent vector.
//
// AI-Hints:
//   - Run CheckMatrix before NewPoint whenever input provenance is untrusted;
//     constructors assume manifold membership and do not re-validate.
//   - Match failures with errors.Is (ErrAsymmetry, ErrNotPositiveDefinite,
//     ErrDimensionMismatch) or errors.As for the structured detail.

package spd

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opCheckMatrix = "CheckMatrix"
	opCheckPoint  = "CheckPoint"
	opCheckVector = "CheckVector"
	opCheckSize   = "CheckSize"
	opProject     = "Project"
)

// Manifold is the 𝒫(n) tag: the set of symmetric positive definite n×n
// matrices under the identity embedding into ℝ^{n×n}. The value carries no
// data beyond n and is safe to share freely.
type Manifold struct {
	n int
}

// New constructs the SPD manifold tag of side length n.
// Returns ErrBadSize for n < 1.
func New(n int) (*Manifold, error) {
	if n < 1 {
		return nil, ErrBadSize
	}

	return &Manifold{n: n}, nil
}

// N returns the matrix side length n.
func (m *Manifold) N() int { return m.n }

// Dim returns the manifold dimension n(n+1)/2 — the dimension of the space
// of symmetric n×n matrices.
func (m *Manifold) Dim() int { return m.n * (m.n + 1) / 2 }

// Size returns the representation size (n, n).
func (m *Manifold) Size() (rows, cols int) { return m.n, m.n }

// InjectivityRadius returns +Inf unconditionally: the manifold is
// non-positively curved under the metrics this type pairs with, so no cut
// locus exists.
func (m *Manifold) InjectivityRadius() float64 { return math.Inf(1) }

// InjectivityRadiusAt is the pointed overload; the radius does not depend
// on the point (or on any retraction) and is +Inf for every argument.
func (m *Manifold) InjectivityRadiusAt(_ Point) float64 { return m.InjectivityRadius() }

// CheckSize validates only that p has the manifold's declared shape,
// unwrapping a cached point to its raw-matrix form first.
// Returns ErrNilPoint or a *SizeError.
func (m *Manifold) CheckSize(p Point) error {
	if err := validatePoint(p); err != nil {
		return spdErrorf(opCheckSize, err)
	}
	if err := validateShape(p.Matrix(), m.n); err != nil {
		return spdErrorf(opCheckSize, err)
	}

	return nil
}

// CheckVectorSize validates only that x has the manifold's declared shape.
func (m *Manifold) CheckVectorSize(x mat.Matrix) error {
	if err := validateMatrixNotNil(x); err != nil {
		return spdErrorf(opCheckSize, err)
	}
	if err := validateShape(x, m.n); err != nil {
		return spdErrorf(opCheckSize, err)
	}

	return nil
}

// CheckMatrix validates an arbitrary ambient matrix as a manifold point.
//
// Implementation:
//   - Stage 1: nil and shape guards (*SizeError on mismatch).
//   - Stage 2: symmetry — ‖x − xᵗ‖ within eps, else *AsymmetryError carrying
//     the residual.
//   - Stage 3: definiteness — eigenvalues of the symmetrized input; any
//     λ ≤ 0 yields a *DefinitenessError carrying the FULL eigenvalue set.
//
// Returns nil ("valid") otherwise. ErrEigenFailed surfaces an eigensolver
// failure (e.g. non-finite input).
// Complexity: O(n³) (values-only eigendecomposition).
func (m *Manifold) CheckMatrix(x mat.Matrix, opts ...Option) error {
	o := gatherOptions(opts...)

	if err := validateMatrixNotNil(x); err != nil {
		return spdErrorf(opCheckMatrix, err)
	}
	if err := validateShape(x, m.n); err != nil {
		return spdErrorf(opCheckMatrix, err)
	}
	if err := validateSymmetric(x, o.eps); err != nil {
		return spdErrorf(opCheckMatrix, err)
	}

	var es mat.EigenSym
	if ok := es.Factorize(symmetrize(x), false); !ok {
		return spdErrorf(opCheckMatrix, ErrEigenFailed)
	}
	vals := es.Values(nil)
	// Values are ascending: the smallest decides definiteness.
	if vals[0] <= 0 {
		return spdErrorf(opCheckMatrix, &DefinitenessError{Eigenvalues: vals})
	}

	return nil
}

// CheckPoint validates a Point (raw or cached) as a manifold element. The
// point is unwrapped via its Matrix view first, then checked exactly like a
// raw matrix.
func (m *Manifold) CheckPoint(p Point, opts ...Option) error {
	if err := validatePoint(p); err != nil {
		return spdErrorf(opCheckPoint, err)
	}
	if err := m.CheckMatrix(p.Matrix(), opts...); err != nil {
		return spdErrorf(opCheckPoint, err)
	}

	return nil
}

// CheckVector validates a proposed tangent vector x at p: same shape as the
// representation and symmetric within eps. Per contract it does NOT
// re-validate that p lies on the manifold — callers compose it with a prior
// CheckPoint instead of paying that check twice.
func (m *Manifold) CheckVector(p Point, x mat.Matrix, opts ...Option) error {
	o := gatherOptions(opts...)

	if err := validatePoint(p); err != nil {
		return spdErrorf(opCheckVector, err)
	}
	if err := validateMatrixNotNil(x); err != nil {
		return spdErrorf(opCheckVector, err)
	}
	if err := validateShape(x, m.n); err != nil {
		return spdErrorf(opCheckVector, err)
	}
	if err := validateSymmetric(x, o.eps); err != nil {
		return spdErrorf(opCheckVector, err)
	}

	return nil
}

// Embed maps a point into the ambient space of n×n real matrices. The
// embedding is the identity; only the storage changes to dense.
func (m *Manifold) Embed(p Point) *mat.Dense {
	out := mat.NewDense(m.n, m.n, nil)
	out.Copy(p.Matrix())

	return out
}

// EmbedVector maps a tangent vector into ambient dense storage (identity).
func (m *Manifold) EmbedVector(x *mat.SymDense) *mat.Dense {
	out := mat.NewDense(m.n, m.n, nil)
	out.Copy(x)

	return out
}

// Project maps an arbitrary ambient matrix onto the tangent space via
// symmetrization (X + Xᵗ)/2. Idempotent: projecting a projection is a no-op
// up to floating rounding.
// Returns ErrNilMatrix or a *SizeError on a malformed input.
func (m *Manifold) Project(x mat.Matrix) (*mat.SymDense, error) {
	if err := validateMatrixNotNil(x); err != nil {
		return nil, spdErrorf(opProject, err)
	}
	if err := validateShape(x, m.n); err != nil {
		return nil, spdErrorf(opProject, err)
	}

	return symmetrize(x), nil
}

// ProjectInto is the in-place form of Project, filling dst. The destination
// must be exclusively owned by the caller for the duration of the call.
func (m *Manifold) ProjectInto(dst *mat.SymDense, x mat.Matrix) error {
	if err := validateDst(dst, m.n); err != nil {
		return spdErrorf(opProject, err)
	}
	if err := validateMatrixNotNil(x); err != nil {
		return spdErrorf(opProject, err)
	}
	if err := validateShape(x, m.n); err != nil {
		return spdErrorf(opProject, err)
	}

	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i; j < m.n; j++ {
			dst.SetSym(i, j, half*(x.At(i, j)+x.At(j, i)))
		}
	}

	return nil
}

// ZeroVector returns the zero tangent vector at any point: the n×n zero
// matrix in symmetric storage.
func (m *Manifold) ZeroVector() *mat.SymDense { return mat.NewSymDense(m.n, nil) }

// Equal compares two points (raw or cached, in any combination) elementwise
// within the caller-supplied tolerance. nil points and size mismatches
// compare unequal.
func (m *Manifold) Equal(p, q Point, opts ...Option) bool {
	o := gatherOptions(opts...)

	if validatePoint(p) != nil || validatePoint(q) != nil {
		return false
	}
	pm, qm := p.Matrix(), q.Matrix()
	if pm.SymmetricDim() != qm.SymmetricDim() {
		return false
	}

	return mat.EqualApprox(pm, qm, o.eps)
}
