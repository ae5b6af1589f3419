// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Ingest and export plain [][]float64 data (FromRows / ToRows) with full
//     structural validation, including the legal 0×0 degenerate shape.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single
//     source of truth (options.go).
//
// Complexity quicksheet:
//   - NewDense/FromRows: O(r*c); At/Set: O(1); Clone/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite
// indices: "Dense.<method>(row,col): <err>". Keeps sentinel identity via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both zero only for the degenerate 0×0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c+j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default
//     from options.go).
type Dense struct {
	r, c           int       // row and column counts (>= 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements the public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer and apply the default policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - The public constructor forbids empty dimensions to avoid accidental
//     zero-sized matrices; internal callers use newDenseZeroOK where a 0×0
//     shape is legal (degenerate inversion, ingestion of empty input).
//
// Returns:
//   - *Dense: newly allocated matrix, or ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Same numeric policy as the public constructor; used by FromRows and the
// degenerate branches of the kernels. Negative dimensions are still rejected.
// Complexity: O(rows*cols).
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// Zero-length buffer is legal when rows==0 or cols==0 (len == rows*cols).
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// FromRows builds a Dense from a rectangular [][]float64.
//
// Implementation:
//   - Stage 1: ValidateRows(rows) - rejects nil rows (ErrNilRow) and
//     inconsistent row lengths (ErrRagged). An empty slice is the legal 0×0.
//   - Stage 2: allocate via newDenseZeroOK and copy row by row in fixed order.
//   - Stage 3: under the finite policy (default), reject NaN/±Inf (ErrNaNInf).
//
// Behavior highlights:
//   - The input slices are copied, never aliased: later mutation of the
//     caller's data cannot reach the Dense.
//   - nil input is treated as the empty 0×0 matrix (len(nil) == 0 in Go);
//     structural validation stays deterministic for the degenerate case.
//
// Inputs:
//   - rows: rectangular slice-of-rows data.
//   - opts: numeric policy (WithNoValidateNaNInf to allow non-finite values).
//
// Returns:
//   - *Dense or the first validation error, wrapped with the offending
//     coordinates where applicable.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	// Resolve numeric policy once.
	o := gatherOptions(opts...)

	// Structural validation first: rectangularity before any allocation.
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}

	// Derive the shape; an empty outer slice yields the legal 0×0.
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	// Allocate storage (zero-sized shapes allowed here).
	m, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	m.validateNaNInf = o.validateNaNInf

	// Copy in fixed row-major order; enforce the finite policy per cell.
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("FromRows(%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v // direct flat write, bounds proven by shape
		}
	}

	return m, nil
}

// ToRows exports any Matrix back to a freshly allocated [][]float64.
// The result shares no storage with m. A 0×0 matrix exports as an empty,
// non-nil slice so the round trip through FromRows is loss-free.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	// Guard the nil interface before touching shape.
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToRows: %w", err)
	}

	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	var (
		i, j int // loop iterators
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("ToRows: At(%d,%d): %w", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros
// elsewhere). n==0 yields the empty identity, which is its own inverse.
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix (zero-sized allowed for the empty identity).
	ident, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		ident.data[i*n+i] = 1.0 // bounds proven by the square shape
	}

	return ident, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods (At/Set) wrap it with coordinates
// and method name. Kept unexported to avoid accidental panics at the public
// surface.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with context.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// The finite-only policy is a per-instance flag preserved by Clone.
// Errors: ErrOutOfRange for bounds; ErrNaNInf for non-finite values.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Independence: mutations of the clone do not affect the original.
// The returned dynamic type is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy values

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String renders the matrix row by row for debugging: "[a, b]\n[c, d]\n".
// Not intended for machine parsing.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int // loop iterators
	for i = 0; i < m.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
