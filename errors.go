// SPDX-License-Identifier: MIT
// Package cachematrix: sentinel error set.
// This file defines ONLY package-level sentinel errors raised by the caching
// layer itself. Inversion failures are NOT redefined here: the matrix
// package's sentinels (matrix.ErrSingular et al.) propagate verbatim so
// callers match them with errors.Is against their origin package.

package cachematrix

import "errors"

var (
	// ErrNotMatrix is returned by structural validation when the input
	// [][]float64 is not a well-formed rectangular matrix (a nil or ragged
	// row). Raised before any state mutation.
	ErrNotMatrix = errors.New("cachematrix: not a matrix")

	// ErrNotSquare is returned by structural validation when the input is
	// rectangular but its row count differs from its column count. Raised
	// before any state mutation.
	ErrNotSquare = errors.New("cachematrix: matrix is not square")

	// ErrNotCacheMatrix is returned by CacheSolve when its argument does not
	// provide the Set/Get/GetInverse capability surface of a CacheMatrix.
	// No computation is performed in that case.
	ErrNotCacheMatrix = errors.New("cachematrix: value does not provide the cache-matrix surface")
)
