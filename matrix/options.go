// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Options form an open passthrough bag: callers holding a Matrix behind a
//     caching layer forward them opaquely to the kernels on every cache miss.
//     They tune tolerance only and NEVER change the mathematical result, so a
//     cached result computed under one tolerance stays valid under another.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the non-negative threshold under which a pivot
	// |U[i,i]| <= tol is declared zero during LU/Inverse. With the default
	// of 0 only a bit-exact zero pivot triggers ErrSingular, which keeps the
	// guard fully deterministic.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion (FromRows) and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the threshold used by LU/Inverse to declare a pivot
// zero: |pivot| <= tol ⇒ ErrSingular.
//
// Implementation:
//   - Stage 1: validate tol is finite and >= 0; panic otherwise.
//   - Stage 2: return a setter that writes tol into Options.
//
// Inputs:
//   - tol: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Larger tol rejects near-singular inputs earlier; 0 keeps the exact-zero
//     guard. The factorization itself is unaffected, only the guard moves.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	// Assign validated tolerance.
	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation on ingestion.
// This is the default; use WithNoValidateNaNInf to relax.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on ingestion (use with
// care). The flag propagates only on creation; existing matrices keep the
// policy they were built with.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Internal resolution ----------

// gatherOptions folds the provided setters over the documented defaults.
// Deterministic: defaults first, then setters in call order (last wins).
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	// Start from the single source of truth.
	o := Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	// Apply user setters in order.
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
