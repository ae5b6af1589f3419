// SPDX-License-Identifier: MIT

// Package cachematrix - the CacheMatrix handle.
//
// Purpose:
//   - Own exactly one square matrix and, optionally, its computed inverse.
//   - Serve repeated inversion requests from cache; recompute only after the
//     matrix has been replaced.
//   - Validate every incoming matrix before any state mutation (strong
//     exception safety: a failed New or Set changes nothing).
//
// Invariant:
//   - Whenever the cached inverse is present it is the inverse of the
//     CURRENT matrix. The only transition to absent is Set; the only
//     transition to present is a successful inversion of the then-current
//     matrix inside GetInverse.
//
// Concurrency:
//   - Single-owner, single-thread state. No internal locking; callers that
//     share a handle must guard Set and GetInverse as a unit themselves.

package cachematrix

import (
	"errors"
	"fmt"

	"github.com/joffefasser/ProgrammingAssignment2/matrix"
)

// ---------- operation tags (error context) ----------

const (
	opNew = "New"
	opSet = "Set"
)

// opErrorf attaches the operation tag to a sentinel:
// "cachematrix.<op>: <err>". Sentinel identity is preserved via %w.
// Complexity: O(1).
func opErrorf(op string, err error) error {
	return fmt.Errorf("cachematrix.%s: %w", op, err)
}

// Stats counts cache activity on a single CacheMatrix. Counters only ever
// increase; read them via the Stats method. A failed inversion still counts
// as a miss (the cache was consulted and found empty).
type Stats struct {
	// Hits is the number of GetInverse calls served from the cache.
	Hits uint64

	// Misses is the number of GetInverse calls that had to consult the
	// inversion primitive (successfully or not).
	Misses uint64

	// Invalidations is the number of successful Set calls, each of which
	// cleared the cached inverse.
	Invalidations uint64
}

// CacheMatrix pairs one square matrix with its optionally cached inverse.
// The zero value is not usable; construct with New. The matrix is owned
// exclusively by the handle: Set is the only mutation path, and it clears
// the cache atomically with the replacement.
type CacheMatrix struct {
	mat   *matrix.Dense // current matrix; never nil after New
	inv   matrix.Matrix // cached inverse; nil means "absent"
	stats Stats         // hit/miss/invalidation accounting
}

// ingest validates rows structurally and materializes them as a Dense.
//
// Implementation:
//   - Stage 1: rectangularity via matrix.ValidateRows; a nil or ragged row
//     maps to ErrNotMatrix (the input is not a two-dimensional matrix).
//   - Stage 2: squareness on the derived shape; maps to ErrNotSquare.
//     The empty input is the conventional 0×0 square and passes.
//   - Stage 3: matrix.FromRows copies the data (the handle never aliases
//     caller slices); its numeric-policy errors propagate verbatim.
//
// Both structural checks run before any allocation, so a failure has no
// observable effect. All errors are wrapped with the caller's op tag.
// Complexity: O(r*c).
func ingest(op string, rows [][]float64) (*matrix.Dense, error) {
	// Structural validation: must be a rectangular two-dimensional array.
	if err := matrix.ValidateRows(rows); err != nil {
		return nil, opErrorf(op, ErrNotMatrix)
	}

	// Squareness: row count must equal column count (0×0 passes).
	if len(rows) > 0 && len(rows) != len(rows[0]) {
		return nil, opErrorf(op, ErrNotSquare)
	}

	// Materialize a private copy; numeric-policy errors (NaN/Inf) bubble up.
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return m, nil
}

// New builds a CacheMatrix around rows.
//
// Behavior highlights:
//   - Fail-safe construction: only structural validation runs here; the
//     inversion primitive is NEVER invoked, regardless of size or
//     singularity. Construction cost is O(r*c) (the defensive copy), not
//     O(n³).
//   - The cached inverse starts absent.
//
// Errors:
//   - ErrNotMatrix (nil or ragged row), ErrNotSquare, matrix.ErrNaNInf.
//     On error no handle is produced.
//
// Complexity: O(r*c).
func New(rows [][]float64) (*CacheMatrix, error) {
	m, err := ingest(opNew, rows)
	if err != nil {
		return nil, err
	}

	// Cache starts absent; stats start zeroed.
	return &CacheMatrix{mat: m}, nil
}

// Set replaces the stored matrix with rows and clears the cached inverse.
//
// Behavior highlights:
//   - Validate-then-install: the new Dense is fully built before the handle
//     is touched, so a failing Set leaves both the matrix and the cached
//     inverse exactly as they were (strong exception safety).
//   - Invalidation is unconditional on success, even when rows is
//     value-equal to the current matrix: the contract is "replaced ⇒
//     recompute", not "changed ⇒ recompute".
//
// Errors:
//   - ErrNotMatrix, ErrNotSquare, matrix.ErrNaNInf; prior state intact.
//
// Complexity: O(r*c).
func (c *CacheMatrix) Set(rows [][]float64) error {
	m, err := ingest(opSet, rows)
	if err != nil {
		return err // prior {mat, inv} untouched
	}

	// Install and invalidate as one step; nothing can fail past this point.
	c.mat = m
	c.inv = nil
	c.stats.Invalidations++

	return nil
}

// Get returns the presently stored matrix by reference. No copy, no
// validation; cannot fail. Mutating the returned matrix in place bypasses
// invalidation (see the package documentation).
// Complexity: O(1).
func (c *CacheMatrix) Get() matrix.Matrix {
	return c.mat
}

// GetInverse returns the inverse of the current matrix, serving it from the
// cache when present.
//
// Implementation:
//   - Hit: the cached inverse is returned unchanged; no recomputation, no
//     side effects beyond the hit counter.
//   - Miss: delegate to matrix.Inverse on the current matrix, forwarding
//     opts opaquely; store the result on success and return it.
//
// Behavior highlights:
//   - On inversion failure the error propagates verbatim (matrix.ErrSingular
//     for singular input) and the cache remains absent: no partial or
//     corrupt cache state is ever observable, and a corrected retry starts
//     clean.
//   - opts are consumed only on a miss; see the package documentation for
//     the staleness caveat.
//
// Complexity: O(1) on a hit; O(n³) on a miss (one inversion).
func (c *CacheMatrix) GetInverse(opts ...matrix.Option) (matrix.Matrix, error) {
	// Cache hit: present means "inverse of the current matrix" by invariant.
	if c.inv != nil {
		c.stats.Hits++

		return c.inv, nil
	}

	// Cache miss: consult the primitive with the caller's options.
	c.stats.Misses++
	inv, err := matrix.Inverse(c.mat, opts...)
	if err != nil {
		return nil, err // surfaced verbatim; cache stays absent
	}

	// Populate the cache only from a successful inversion of c.mat.
	c.inv = inv

	return inv, nil
}

// Stats returns a snapshot of the cache counters.
// Complexity: O(1).
func (c *CacheMatrix) Stats() Stats {
	return c.stats
}

// Cached reports whether an inverse is currently stored. Handy for callers
// that want to probe without affecting the hit/miss counters.
// Complexity: O(1).
func (c *CacheMatrix) Cached() bool {
	return c.inv != nil
}

// IsStructureError reports whether err originates from structural validation
// (ErrNotMatrix or ErrNotSquare) as opposed to the inversion primitive.
// Convenience for callers that branch on the error class.
func IsStructureError(err error) bool {
	return errors.Is(err, ErrNotMatrix) || errors.Is(err, ErrNotSquare)
}
