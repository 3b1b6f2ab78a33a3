// SPDX-License-Identifier: MIT

// Package spd: functional configuration for checks, comparisons and random
// generation, plus the store-flag switches of SPDPoint construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - PointOption / pointOptions (constructor-time store flags),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions / gatherPointOptions helpers that enforce invariants.
//
// Design goals:
//   - Deterministic behavior: no hidden global state beyond the process-wide
//     default random source used when no explicit source is supplied.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Epsilon is the caller-supplied approximate-equality tolerance used by
//     CheckMatrix/CheckPoint/CheckVector/Equal. It bounds the Frobenius
//     residual ‖X − Xᵗ‖, not per-entry deviation.
//   - Sigma is the scale of random draws. Zero means "unset": Rand falls back
//     to DefaultSigma, RandTangent to 1/‖base‖ (the documented default).
//   - A nil Source selects the process-wide default source (seeded once at
//     process start by the underlying library); pass an explicit Source for
//     reproducible draws.

package spd

import (
	"math"

	"golang.org/x/exp/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by symmetry,
	// definiteness and approximate-equality checks.
	DefaultEpsilon = 1e-9

	// DefaultSigma is the scale applied to the Gaussian matrix feeding the QR
	// step of Rand when no explicit sigma was supplied.
	DefaultSigma = 1.0

	// DefaultMode selects Gaussian tangent sampling when no mode was supplied.
	DefaultMode = ModeGaussian
)

// Constructor-time store flags of NewPoint: every derived quantity is
// materialized unless explicitly disabled.
const (
	// DefaultStoreMatrix materializes the original matrix p at construction.
	DefaultStoreMatrix = true

	// DefaultStoreSqrt materializes p^{1/2} at construction.
	DefaultStoreSqrt = true

	// DefaultStoreSqrtInv materializes p^{-1/2} at construction.
	DefaultStoreSqrtInv = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "spd: WithEpsilon: eps must be finite, non-negative"
	panicSigmaInvalid   = "spd: WithSigma: sigma must be finite, positive"
	panicModeInvalid    = "spd: WithMode: unknown sampling mode"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type options struct {
	// numeric policy
	eps float64 // >= 0; DefaultEpsilon

	// random generation
	src   rand.Source  // nil ⇒ process-wide default source
	sigma float64      // 0 ⇒ unset (resolved per entry point)
	mode  RandMode     // DefaultMode
	basis TangentBasis // nil ⇒ ErrMissingCollaborator in Gaussian sampling
	trans Transport    // nil ⇒ ErrMissingCollaborator in Gaussian sampling
}

// defaultOptions returns the documented zero-configuration state.
func defaultOptions() options {
	return options{
		eps:  DefaultEpsilon,
		mode: DefaultMode,
	}
}

// gatherOptions folds the supplied setters over the defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithEpsilon sets the approximate-equality tolerance used by checks and
// Equal. Panics if eps is negative, NaN or ±Inf (programmer error).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithSource sets an explicit random source for reproducible draws.
// A nil src restores the process-wide default source.
func WithSource(src rand.Source) Option {
	return func(o *options) { o.src = src }
}

// WithSigma sets the scale of random draws. Panics unless sigma is finite
// and strictly positive (programmer error).
func WithSigma(sigma float64) Option {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic(panicSigmaInvalid)
	}

	return func(o *options) { o.sigma = sigma }
}

// WithMode selects the tangent sampling mode (ModeGaussian or ModeRician).
// Panics on an unknown mode value (programmer error).
func WithMode(mode RandMode) Option {
	if mode != ModeGaussian && mode != ModeRician {
		panic(panicModeInvalid)
	}

	return func(o *options) { o.mode = mode }
}

// WithTangentBasis plugs in the external "orthonormal basis at a point"
// collaborator consumed by Gaussian tangent sampling.
func WithTangentBasis(b TangentBasis) Option {
	return func(o *options) { o.basis = b }
}

// WithTransport plugs in the external parallel-transport collaborator
// consumed by Gaussian tangent sampling.
func WithTransport(t Transport) Option {
	return func(o *options) { o.trans = t }
}

// ---------- SPDPoint construction switches ----------

// PointOption toggles which derived quantities NewPoint materializes.
// The three switches are independent; disabled quantities stay "missing"
// and are derived from the eigendecomposition on demand.
type PointOption func(*pointOptions)

// pointOptions carries the resolved store flags of one NewPoint call.
type pointOptions struct {
	storeMatrix  bool // DefaultStoreMatrix
	storeSqrt    bool // DefaultStoreSqrt
	storeSqrtInv bool // DefaultStoreSqrtInv
}

// gatherPointOptions folds the supplied setters over the defaults.
func gatherPointOptions(opts ...PointOption) pointOptions {
	o := pointOptions{
		storeMatrix:  DefaultStoreMatrix,
		storeSqrt:    DefaultStoreSqrt,
		storeSqrtInv: DefaultStoreSqrtInv,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// StoreMatrix toggles materialization of the original matrix p.
func StoreMatrix(store bool) PointOption {
	return func(o *pointOptions) { o.storeMatrix = store }
}

// StoreSqrt toggles materialization of p^{1/2}.
func StoreSqrt(store bool) PointOption {
	return func(o *pointOptions) { o.storeSqrt = store }
}

// StoreSqrtInv toggles materialization of p^{-1/2}.
func StoreSqrtInv(store bool) PointOption {
	return func(o *pointOptions) { o.storeSqrtInv = store }
}
