// Package matrix provides the dense numeric storage and the deterministic
// inversion primitive used by the caching layer in the parent package.
//
// 🚀 What lives here?
//
//	A row-major Dense matrix with bounds-safe accessors, plus a small set of
//	linear-algebra kernels built around Doolittle LU factorization:
//	  • FromRows / NewDense / NewIdentity - construction and ingestion
//	  • LU      - A = L·U, unit diagonal on L, no pivoting
//	  • Inverse - A⁻¹ via LU and 2n triangular solves
//	  • Mul     - plain matrix product (used to verify round-trips)
//
// ✨ Key properties:
//   - Deterministic: fixed loop orders, no pivoting, no randomness; identical
//     inputs always produce identical outputs.
//   - Safe at the public surface: At/Set return sentinel errors instead of
//     panicking; kernels validate shape before any allocation.
//   - Fast-path on *Dense (flat-slice indexing) with a generic Matrix
//     fallback for foreign implementations.
//
// ⚙️ Usage:
//
//	m, err := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
//	if err != nil { ... }
//	inv, err := matrix.Inverse(m)
//	if errors.Is(err, matrix.ErrSingular) { ... }
//
// Numeric policy is configured through functional options: see
// WithPivotTolerance for singularity detection and WithNoValidateNaNInf for
// relaxed ingestion. Options never change the mathematical result, only the
// tolerance under which a pivot is declared zero.
//
// Performance:
//
//   - LU / Inverse: O(n³) time, O(n²) space.
//   - FromRows:     O(r·c); At/Set: O(1).
//
// The package holds no global state and performs no I/O. It is not safe for
// concurrent mutation of a shared Dense; single-owner access is assumed.
package matrix
