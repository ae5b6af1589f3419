// SPDX-License-Identifier: MIT

// Package matrix - deterministic linear-algebra kernels.
//
// Purpose:
//   - LU: Doolittle factorization A = L·U (unit diagonal on L, no pivoting).
//   - Inverse: A⁻¹ via LU and per-column triangular solves.
//   - Mul: plain matrix product (round-trip verification helper).
//
// Determinism:
//   - Fixed loop orders, no pivoting, no randomness: identical inputs always
//     produce identical outputs, bit for bit.
//
// Numerical stability:
//   - No partial/complete pivoting by design (determinism over stability).
//     Upstream callers should avoid ill-conditioned inputs or raise the
//     pivot tolerance (WithPivotTolerance) to reject them early.
//
// Fast paths:
//   - Every kernel detects *Dense operands and switches to flat-slice
//     indexing; a generic At/Set fallback covers foreign Matrix
//     implementations at the cost of per-element error plumbing.

package matrix

import (
	"fmt"
	"math"
)

// ---------- operation tags (error context) ----------

const (
	opInverse = "Inverse"
	opLU      = "LU"
	opMul     = "Mul"
)

// ZeroSum is the neutral accumulator reset used by the kernels.
const ZeroSum = 0.0

// matrixErrorf attaches the operation tag to an underlying error:
// "matrix.<op>: <err>". Sentinel identity is preserved via %w.
// Complexity: O(1).
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}

// pivotIsZero applies the configured singularity guard: a pivot within
// [-tol, +tol] is declared zero. With the default tol of 0 only a bit-exact
// zero matches, which keeps the guard fully deterministic.
// Complexity: O(1).
func pivotIsZero(pivot, tol float64) bool {
	return math.Abs(pivot) <= tol
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
//
// Implementation:
//   - Stage 1: validate m (not nil, square); allocate Dense L,U; diag(L)=1.
//   - Stage 2: for i=0..n-1, build row i of U and column i of L in fixed
//     order, guarding each pivot with the configured tolerance.
//
// Inputs:
//   - m: square Matrix (n×n); n==0 yields two empty factors.
//   - opts: numeric policy (WithPivotTolerance).
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (pivot within
//     tolerance of zero during factorization).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	// Resolve numeric policy once.
	o := gatherOptions(opts...)

	// Validate input non-nil and square.
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Allocate L and U; zero-sized shapes are legal for the empty input.
	n := m.Rows()
	lRaw, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	uRaw, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular).
	for i := 0; i < n; i++ {
		lRaw.data[i*n+i] = 1.0
	}

	// Detect fast-path on *Dense.
	mRaw, useFast := m.(*Dense)
	var (
		i, j, k    int // loop iterators
		sum, pivot float64
	)
	if useFast {
		// Fast-path: operate directly on flat slices.
		var baseI, baseJ int
		for i = 0; i < n; i++ {
			baseI = i * n
			// Compute U[i][j] for j >= i.
			for j = i; j < n; j++ {
				sum = ZeroSum
				for k = 0; k < i; k++ {
					sum += lRaw.data[baseI+k] * uRaw.data[k*n+j]
				}
				uRaw.data[baseI+j] = mRaw.data[baseI+j] - sum
			}

			// Pivot guard (deterministic singularity detection).
			pivot = uRaw.data[baseI+i]
			if pivotIsZero(pivot, o.pivotTol) {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}

			// Compute L[j][i] for j > i.
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				baseJ = j * n
				for k = 0; k < i; k++ {
					sum += lRaw.data[baseJ+k] * uRaw.data[k*n+i]
				}
				lRaw.data[baseJ+i] = (mRaw.data[baseJ+i] - sum) / pivot
			}
		}

		return lRaw, uRaw, nil
	}

	// Fallback: generic interface version with identical traversal.
	var a, l, u float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l = lRaw.data[i*n+k] // factors are always *Dense, index directly
				u = uRaw.data[k*n+j]
				sum += l * u
			}
			if a, err = m.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			uRaw.data[i*n+j] = a - sum
		}

		// Pivot guard mirrors the fast path exactly.
		pivot = uRaw.data[i*n+i]
		if pivotIsZero(pivot, o.pivotTol) {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lRaw.data[j*n+k] * uRaw.data[k*n+i]
			}
			if a, err = m.At(j, i); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			lRaw.data[j*n+i] = (a - sum) / pivot
		}
	}

	return lRaw, uRaw, nil
}

// Inverse computes A⁻¹ using Doolittle LU factorization without pivoting
// (deterministic). This is the inversion primitive the caching layer in the
// parent package delegates to.
//
// Implementation:
//   - Stage 1: validate m (not nil, square); factorize via LU(m, opts...).
//   - Stage 2: for each canonical basis column e_col: forward solve
//     L·y = e_col (top-down), backward solve U·x = y (bottom-up, pivots
//     guarded), write x into column col of the result.
//
// Behavior highlights:
//   - Input m is read-only; factors and result are freshly allocated.
//   - The empty 0×0 matrix is vacuously invertible: its inverse is the empty
//     matrix (the documented degenerate behavior of this primitive).
//   - Options pass through to LU; they tune the pivot tolerance only and do
//     not change the mathematical result.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//   - opts: numeric policy (WithPivotTolerance).
//
// Returns:
//   - Matrix: Dense(n×n) containing A⁻¹.
//   - error : validation/factorization/solve failures wrapped with "Inverse".
//
// Errors:
//   - ErrNilMatrix         (nil input).
//   - ErrDimensionMismatch (non-square input).
//   - ErrSingular          (zero pivot in factorization or back substitution).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// Resolve numeric policy once; LU re-resolves from the same opts.
	o := gatherOptions(opts...)

	// Validate input non-nil and square.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Degenerate case: the 0×0 matrix is its own inverse.
	n := m.Rows()
	if n == 0 {
		empty, err := newDenseZeroOK(0, 0)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}

		return empty, nil
	}

	// LU decomposition (Doolittle).
	lMat, uMat, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	// Factors are produced by this package; the concrete type is *Dense.
	lRaw := lMat.(*Dense)
	uRaw := uMat.(*Dense)

	// Prepare result container and scratch vectors.
	invRaw, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var (
		col, i, k  int // loop iterators
		sum, pivot float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution workspace
		baseI      int                  // row-major stride base
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L·y = e_col (top-down).
		for i = 0; i < n; i++ {
			sum = ZeroSum
			baseI = i * n
			for k = 0; k < i; k++ {
				sum += lRaw.data[baseI+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U·x = y (bottom-up; guard pivots).
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			baseI = i * n
			for k = i + 1; k < n; k++ {
				sum += uRaw.data[baseI+k] * x[k]
			}
			pivot = uRaw.data[baseI+i]
			if pivotIsZero(pivot, o.pivotTol) {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		// Write x into column col of the result.
		for i = 0; i < n; i++ {
			invRaw.data[i*n+col] = x[i]
		}
	}

	return invRaw, nil
}

// Mul returns the matrix product a×b.
//
// Implementation:
//   - Stage 1: validate both operands non-nil and ValidateMulCompatible.
//   - Stage 2: fast-path when both operands are *Dense (flat row-major
//     triple loop, zero-skip on the left operand); generic At/Set fallback
//     otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate operands via the canonical validators.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate the result (zero-sized shapes are legal, e.g. 0×0 round trips).
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int // loop iterators
		av, bv  float64
	)
	// Fast-path for two Dense operands: flat row-major accumulation.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface version, same fixed traversal.
	for i = 0; i < aRows; i++ {
		for k = 0; k < aCols; k++ {
			if av, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
			}
			if av == 0 {
				continue // zero row-element contributes nothing
			}
			for j = 0; j < bCols; j++ {
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				res.data[i*bCols+j] += av * bv
			}
		}
	}

	return res, nil
}
