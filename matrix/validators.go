// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/rectangularity checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateRows runs a single O(r) pass over the outer slice.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure, typically via ValidateNotNil).
//
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b can be multiplied (a.Cols == b.Rows).
// Assumes a and b are not nil (caller must ensure).
//
// Errors: ErrDimensionMismatch on incompatible inner dimensions.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRows checks that a [][]float64 is a well-formed rectangular matrix:
// no nil rows, and every row shares the length of the first one. An empty
// (or nil) outer slice is accepted as the legal 0×0 matrix.
//
// Errors: ErrNilRow for a nil inner slice, ErrRagged for length mismatch;
// both carry the offending row index in the wrapping.
// Complexity: O(r) over the outer slice; inner contents are not inspected.
func ValidateRows(rows [][]float64) error {
	// Empty input is the deterministic degenerate case: 0×0, valid.
	if len(rows) == 0 {
		return nil
	}

	// First row fixes the expected width; a nil first row is still a nil row.
	if rows[0] == nil {
		return validatorErrorf("ValidateRows: row 0", ErrNilRow)
	}
	width := len(rows[0])

	// Single pass over the remaining rows in fixed order.
	for i := 1; i < len(rows); i++ {
		if rows[i] == nil {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrNilRow)
		}
		if len(rows[i]) != width {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrRagged)
		}
	}

	return nil
}
