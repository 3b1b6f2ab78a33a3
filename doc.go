// Package spdmanifold models the manifold of symmetric positive definite
// (SPD) matrices as a Riemannian manifold — point validation, structural
// queries, eigendecomposition-backed cached points and random sampling.
//
// 🚀 What is spdmanifold?
//
//	A focused numeric library that brings together:
//		• Manifold queries: dimension, representation size, embedding, injectivity radius
//		• Validity checks: symmetry, positive definiteness, tangent membership
//		• Cached points: one eigendecomposition, lazily derived √p and p^(-1/2)
//		• Tangent projection: symmetrization of arbitrary ambient matrices
//		• Random sampling: manifold points and Gaussian/Rician tangent draws
//
// ✨ Why choose spdmanifold?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – explicit random sources, sentinel errors, errors.Is discipline
//   - Pure Go – dense linear algebra via gonum, no cgo
//   - Extensible – external basis/transport collaborators plug into sampling
//
// Everything lives in a single working package:
//
//	spd/ — Manifold tag, SPDPoint cache, checks, matrix functions & sampling
//
// Quick sketch of the cached point:
//
//	    p = U·diag(λ)·Uᵗ          (eigendecomposition: always present)
//	    √p = U·diag(√λ)·Uᵗ        (optional, derived on demand)
//	    p^(-1/2) = U·diag(1/√λ)·Uᵗ (optional, derived on demand)
//
// The eigendecomposition is the single source of truth, so the cached
// fields can never disagree with each other.
//
// Dive into spd/doc.go for the full API walkthrough and examples.
//
//	go get github.com/katalvlaran/spdmanifold/spd
package spdmanifold
