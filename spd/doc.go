// Package spd implements the manifold of symmetric positive definite (SPD)
// matrices of fixed size n×n, with validity checks, structural queries,
// an eigendecomposition-backed cached point type and random sampling.
//
// 🚀 What is spd?
//
//	The SPD manifold 𝒫(n) is the set of real symmetric n×n matrices whose
//	eigenvalues are all strictly positive. It shows up in:
//	  • Diffusion-tensor and covariance-matrix processing
//	  • Kernel methods & metric learning
//	  • Brain-computer interfaces (covariance descriptors)
//	  • Radar/array signal processing
//
// ✨ Key features:
//   - Manifold: dimension n(n+1)/2, representation size (n,n), identity
//     embedding into ℝ^{n×n}, +Inf injectivity radius
//   - CheckMatrix/CheckPoint/CheckVector: structured domain errors carrying the
//     offending quantity (asymmetry residual, eigenvalue list, observed shape)
//   - SPDPoint: stores the eigendecomposition once; the original matrix, √p and
//     p^(-1/2) are optional caches, derived on demand and never stale
//   - Clone/CopyFrom/Alloc: shape-preserving copy semantics — fields missing in
//     the target are never materialized behind the caller's back
//   - Rand/RandTangent: random manifold points, plus Gaussian tangent draws
//     through external basis/transport collaborators and Rician perturbations
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spdmanifold/spd"
//
//	man, _ := spd.New(3)
//	if err := man.CheckMatrix(sigma); err != nil {
//	  // errors.Is(err, spd.ErrAsymmetry) / spd.ErrNotPositiveDefinite ...
//	}
//	p, _ := spd.NewPoint(sigma)       // eigendecomposition computed once
//	s, si := p.SqrtAndSqrtInv()       // cached, or derived from the eigen pair
//
// Numeric backbone: gonum (mat.EigenSym, mat.Cholesky, mat.QR, distuv).
// All operations are synchronous, allocation-bounded, O(n³) dense algebra.
//
// Accessors never mutate their receiver, so read-only sharing of points
// across goroutines is safe; in-place targets (ProjectInto, RandInto,
// CopyFrom) require exclusive access to the destination.
//
// See example_test.go for runnable examples.
package spd
