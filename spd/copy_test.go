// Package spd_test contains unit tests for the copy/allocation semantics of
// the cached point: Clone, shape-preserving CopyFrom and Alloc.
package spd_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spdmanifold/spd"
)

// TestClone_ShapePreserved verifies that Clone reproduces the exact
// present/missing shape for every switch combination.
func TestClone_ShapePreserved(t *testing.T) {
	for _, tc := range storeCombos {
		name := fmt.Sprintf("matrix=%v,sqrt=%v,sqrtInv=%v", tc.m, tc.s, tc.si)
		t.Run(name, func(t *testing.T) {
			p := mustPoint(t, kms(3),
				spd.StoreMatrix(tc.m), spd.StoreSqrt(tc.s), spd.StoreSqrtInv(tc.si))
			c := p.Clone()

			assert.Equal(t, p.HasMatrix(), c.HasMatrix())
			assert.Equal(t, p.HasSqrt(), c.HasSqrt())
			assert.Equal(t, p.HasSqrtInv(), c.HasSqrtInv())
			assert.InDelta(t, 0, maxAbsDiff(p.Matrix(), c.Matrix()), tol)
		})
	}
}

// TestClone_Independent verifies deep copy: mutating the clone's stored
// matrix must not leak into the source.
func TestClone_Independent(t *testing.T) {
	p := mustPoint(t, kms(3))
	c := p.Clone()

	c.Matrix().SetSym(0, 0, 99) // stored field: the accessor returns the cache itself

	assert.InDelta(t, 1.0, p.Matrix().At(0, 0), tol, "source must be unaffected")
	assert.InDelta(t, 99.0, c.Matrix().At(0, 0), tol)
}

// TestCopyFrom_DirectFields verifies that fields present on both sides are
// copied directly and the eigendecomposition is taken from the source.
func TestCopyFrom_DirectFields(t *testing.T) {
	dst := mustPoint(t, identity(3))
	src := mustPoint(t, kms(3))

	require.NoError(t, dst.CopyFrom(src))

	assert.InDelta(t, 0, maxAbsDiff(src.Matrix(), dst.Matrix()), tol)
	assert.InDelta(t, 0, maxAbsDiff(src.Sqrt(), dst.Sqrt()), tol)
	assert.InDelta(t, 0, maxAbsDiff(src.SqrtInv(), dst.SqrtInv()), tol)
}

// TestCopyFrom_LazyShape verifies the lazy contract: fields missing in the
// target stay missing, fields present in the target but missing in the
// source are derived from the source's eigendecomposition.
func TestCopyFrom_LazyShape(t *testing.T) {
	// Target materializes ONLY sqrt; source materializes nothing optional.
	dst := mustPoint(t, identity(3),
		spd.StoreMatrix(false), spd.StoreSqrt(true), spd.StoreSqrtInv(false))
	src := mustPoint(t, kms(3),
		spd.StoreMatrix(false), spd.StoreSqrt(false), spd.StoreSqrtInv(false))

	require.NoError(t, dst.CopyFrom(src))

	assert.False(t, dst.HasMatrix(), "missing target field must remain missing")
	assert.False(t, dst.HasSqrtInv(), "missing target field must remain missing")
	assert.True(t, dst.HasSqrt())

	// The filled field matches what the source would derive on demand, and
	// the copied eigendecomposition reconstructs the source's value.
	assert.InDelta(t, 0, maxAbsDiff(src.Sqrt(), dst.Sqrt()), tol)
	assert.InDelta(t, 0, maxAbsDiff(src.Matrix(), dst.Matrix()), tol)
}

// TestCopyFrom_Errors verifies the guards: nil source and size mismatch.
func TestCopyFrom_Errors(t *testing.T) {
	dst := mustPoint(t, kms(3))

	assert.ErrorIs(t, dst.CopyFrom(nil), spd.ErrNilPoint)
	assert.ErrorIs(t, dst.CopyFrom(mustPoint(t, kms(2))), spd.ErrDimensionMismatch)
}

// TestAlloc verifies shape preservation, value equality and storage
// freshness of the allocate path.
func TestAlloc(t *testing.T) {
	for _, tc := range storeCombos {
		name := fmt.Sprintf("matrix=%v,sqrt=%v,sqrtInv=%v", tc.m, tc.s, tc.si)
		t.Run(name, func(t *testing.T) {
			p := mustPoint(t, kms(3),
				spd.StoreMatrix(tc.m), spd.StoreSqrt(tc.s), spd.StoreSqrtInv(tc.si))

			a, err := p.Alloc()
			require.NoError(t, err)

			assert.Equal(t, p.HasMatrix(), a.HasMatrix())
			assert.Equal(t, p.HasSqrt(), a.HasSqrt())
			assert.Equal(t, p.HasSqrtInv(), a.HasSqrtInv())

			assert.InDelta(t, 0, maxAbsDiff(p.Matrix(), a.Matrix()), tol)
			assert.InDelta(t, 0, maxAbsDiff(p.Sqrt(), a.Sqrt()), tol)
			assert.InDelta(t, 0, maxAbsDiff(p.SqrtInv(), a.SqrtInv()), tol)
		})
	}
}

// TestAlloc_FreshStorage verifies that the allocated point shares nothing
// with its origin.
func TestAlloc_FreshStorage(t *testing.T) {
	p := mustPoint(t, kms(2))
	a, err := p.Alloc()
	require.NoError(t, err)

	a.Matrix().SetSym(0, 0, -5)

	assert.InDelta(t, 1.0, p.Matrix().At(0, 0), tol, "origin must be unaffected")
}
