// SPDX-License-Identifier: MIT

// Package cachematrix - the CacheSolve accessor.
//
// Purpose:
//   - Provide the classic "solve through the cache" entry point: given
//     something that behaves like a CacheMatrix, return the inverse of its
//     current matrix, computing and caching it only when absent.
//   - Guard the boundary with a capability check rather than a concrete-type
//     check, so alternative handle implementations (decorators, test fakes)
//     pass through untouched.

package cachematrix

import "github.com/joffefasser/ProgrammingAssignment2/matrix"

// Solver is the capability surface CacheSolve requires: the three named
// operations of a cache-matrix handle. This is a shape check, not a
// type-identity check; *CacheMatrix satisfies it, and so does anything else
// exposing the same operations.
type Solver interface {
	// Set replaces the underlying matrix and invalidates any cached inverse.
	Set(rows [][]float64) error

	// Get returns the current underlying matrix.
	Get() matrix.Matrix

	// GetInverse returns the (possibly cached) inverse of the current matrix.
	GetInverse(opts ...matrix.Option) (matrix.Matrix, error)
}

// Compile-time assertion: the concrete handle provides the full surface.
var _ Solver = (*CacheMatrix)(nil)

// CacheSolve returns the inverse of the matrix held by v, serving it from
// v's cache when present.
//
// Implementation:
//   - Stage 1: capability check - v must provide the Solver surface
//     (Set/Get/GetInverse); otherwise ErrNotCacheMatrix, and no computation
//     is performed.
//   - Stage 2: pure delegation to v.GetInverse(opts...); the result or error
//     propagates unchanged. CacheSolve holds no state of its own.
//
// Errors:
//   - ErrNotCacheMatrix when v lacks the capability surface (including a nil
//     or typed-nil argument that cannot serve the calls).
//   - Whatever GetInverse returns, verbatim (matrix.ErrSingular et al.).
//
// Complexity: O(1) on top of the delegated call.
func CacheSolve(v any, opts ...matrix.Option) (matrix.Matrix, error) {
	// Capability check: shape, not identity.
	s, ok := v.(Solver)
	if !ok {
		return nil, ErrNotCacheMatrix
	}
	// A typed-nil concrete handle satisfies the interface but cannot serve
	// the calls; treat it like any other non-handle.
	if cm, concrete := v.(*CacheMatrix); concrete && cm == nil {
		return nil, ErrNotCacheMatrix
	}

	// Thin pass-through; no retries, no swallowing.
	return s.GetInverse(opts...)
}
