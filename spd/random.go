// SPDX-License-Identifier: MIT

// Package spd: random point and tangent generation.
//
// Purpose:
//   - Rand: sample a random manifold point — Q·diag(1+u)·Qᵗ with Q the
//     orthogonal factor of a Gaussian matrix's QR decomposition.
//   - RandTangent (ModeGaussian): a Gaussian-weighted combination of an
//     orthonormal tangent basis transported from the identity to the base
//     point via the configured external collaborators.
//   - RandTangent (ModeRician): a Cholesky-perturbation draw near the base
//     point (yields a POINT, not a tangent vector — see ModeRician docs).
//
// Randomness:
//   - Every entry point accepts WithSource for reproducible draws; without
//     it the process-wide default source is used. Draw order is fixed
//     (row-major for matrices, basis order for combinations), so a given
//     source always yields the same output.
//
// AI-Hints:
//   - The two collaborators are CONSUMED interfaces; this package ships no
//     metric-specific basis or transport. Wire the framework's operators via
//     WithTangentBasis/WithTransport.
//   - Sigma resolution: explicit WithSigma wins; otherwise Rand uses
//     DefaultSigma and tangent sampling uses 1/‖base‖.

package spd

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Operation name constants for unified error wrapping.
const (
	opRand        = "Rand"
	opRandTangent = "RandTangent"
)

// diagShift offsets the uniform diagonal draws of Rand: d = diagShift + u,
// u ∈ [0,1), keeping every eigenvalue of the sample strictly positive.
const diagShift = 1.0

// stdNormal builds a unit normal over the configured source (nil source
// selects the process-wide default).
func stdNormal(o options) distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: o.src}
}

// Rand samples a random manifold point.
//
// Implementation:
//   - Stage 1: fill an n×n matrix with sigma-scaled Gaussian draws
//     (row-major order) and take Q from its QR decomposition.
//   - Stage 2: draw d = diagShift + Uniform[0,1) per axis.
//   - Stage 3: return the symmetrized product Q·diag(d)·Qᵗ.
//
// The result always passes CheckMatrix: it is symmetric by construction and
// its eigenvalues are exactly the entries of d, all ≥ diagShift.
// Complexity: O(n³).
func (m *Manifold) Rand(opts ...Option) (*mat.SymDense, error) {
	o := gatherOptions(opts...)
	sigma := o.sigma
	if sigma == 0 {
		sigma = DefaultSigma
	}

	normal := stdNormal(o)
	uniform := distuv.Uniform{Min: 0, Max: 1, Src: o.src}

	gauss := mat.NewDense(m.n, m.n, nil)
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			gauss.Set(i, j, sigma*normal.Rand())
		}
	}

	var qr mat.QR
	qr.Factorize(gauss)
	q := mat.NewDense(m.n, m.n, nil)
	qr.QTo(q)

	// scaled[i,j] = Q[i,j]·d_j, then the product scaled·Qᵗ = Q·diag(d)·Qᵗ.
	scaled := mat.NewDense(m.n, m.n, nil)
	var dj float64
	for j = 0; j < m.n; j++ {
		dj = diagShift + uniform.Rand()
		for i = 0; i < m.n; i++ {
			scaled.Set(i, j, q.At(i, j)*dj)
		}
	}
	full := mat.NewDense(m.n, m.n, nil)
	full.Mul(scaled, q.T())

	return foldSym(full), nil
}

// RandInto is the in-place form of Rand, filling dst. The destination must
// be exclusively owned by the caller for the duration of the call.
func (m *Manifold) RandInto(dst *mat.SymDense, opts ...Option) error {
	if err := validateDst(dst, m.n); err != nil {
		return spdErrorf(opRand, err)
	}

	s, err := m.Rand(opts...)
	if err != nil {
		return spdErrorf(opRand, err)
	}
	dst.CopySym(s)

	return nil
}

// RandTangent samples around the base point at, dispatching on the
// configured mode:
//   - ModeGaussian (default): a tangent vector at at — Gaussian-weighted
//     combination of the transported identity-tangent basis. Requires both
//     collaborators (ErrMissingCollaborator otherwise).
//   - ModeRician: a manifold point NEAR at, not a tangent vector; the mode
//     is routed through this entry point for compatibility with the
//     reference behavior (see the ModeRician constant).
//
// The base point is assumed valid (compose with CheckPoint); its shape is
// still guarded here because a mismatch would corrupt the draw silently.
func (m *Manifold) RandTangent(at Point, opts ...Option) (*mat.SymDense, error) {
	o := gatherOptions(opts...)

	if err := validatePoint(at); err != nil {
		return nil, spdErrorf(opRandTangent, err)
	}
	if err := validateShape(at.Matrix(), m.n); err != nil {
		return nil, spdErrorf(opRandTangent, err)
	}

	if o.mode == ModeRician {
		return m.randRician(at, o)
	}

	return m.randGaussian(at, o)
}

// tangentSigma resolves the draw scale for tangent sampling: an explicit
// WithSigma wins; otherwise 1/‖base‖ (Frobenius), falling back to
// DefaultSigma for a degenerate zero base.
func (m *Manifold) tangentSigma(at Point, o options) float64 {
	if o.sigma != 0 {
		return o.sigma
	}
	if nrm := mat.Norm(at.Matrix(), 2); nrm > 0 {
		return 1 / nrm
	}

	return DefaultSigma
}

// identityPoint builds the identity matrix of the manifold's size as a Raw
// point — the anchor of the tangent basis before transport.
func (m *Manifold) identityPoint() Raw {
	id := mat.NewSymDense(m.n, nil)
	for i := 0; i < m.n; i++ {
		id.SetSym(i, i, 1)
	}

	return AsRaw(id)
}

// randGaussian draws Σ sigma·N(0,1)ᵢ·Bᵢ where {Bᵢ} is the identity-tangent
// orthonormal basis transported to the base point.
func (m *Manifold) randGaussian(at Point, o options) (*mat.SymDense, error) {
	if o.basis == nil || o.trans == nil {
		return nil, spdErrorf(opRandTangent, ErrMissingCollaborator)
	}

	sigma := m.tangentSigma(at, o)
	idPt := m.identityPoint()

	basis, err := o.basis.OrthonormalBasis(m, idPt)
	if err != nil {
		return nil, spdErrorf(opRandTangent, err)
	}

	normal := stdNormal(o)
	sum := mat.NewSymDense(m.n, nil)
	var moved *mat.SymDense
	for _, b := range basis {
		if moved, err = o.trans.Transport(m, idPt, at, b); err != nil {
			return nil, spdErrorf(opRandTangent, err)
		}
		addScaledSym(sum, sigma*normal.Rand(), moved)
	}

	return sum, nil
}

// randRician perturbs the base point's Cholesky factor: R = L + triu(sigma·G)
// with G standard Gaussian, returning the symmetrized R·Rᵗ — a point near
// the base, NOT a tangent vector.
func (m *Manifold) randRician(at Point, o options) (*mat.SymDense, error) {
	sigma := m.tangentSigma(at, o)

	var ch mat.Cholesky
	if ok := ch.Factorize(at.Matrix()); !ok {
		return nil, spdErrorf(opRandTangent, ErrCholeskyFailed)
	}
	lower := mat.NewTriDense(m.n, mat.Lower, nil)
	ch.LTo(lower)

	normal := stdNormal(o)
	factor := mat.NewDense(m.n, m.n, nil)
	factor.Copy(lower)
	// Upper-triangular perturbation (diagonal included), row-major order.
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i; j < m.n; j++ {
			factor.Set(i, j, factor.At(i, j)+sigma*normal.Rand())
		}
	}

	full := mat.NewDense(m.n, m.n, nil)
	full.Mul(factor, factor.T())

	return foldSym(full), nil
}

// addScaledSym accumulates dst += w·x over the upper triangle.
func addScaledSym(dst *mat.SymDense, w float64, x *mat.SymDense) {
	n := dst.SymmetricDim()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			dst.SetSym(i, j, dst.At(i, j)+w*x.At(i, j))
		}
	}
}
