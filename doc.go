// Package cachematrix memoizes matrix inversion: a CacheMatrix pairs one
// square matrix with its lazily computed, cached inverse, and invalidates the
// cache exactly when the matrix is replaced.
//
// 🚀 What is it?
//
//	Matrix inversion is O(n³); re-inverting the same matrix in a loop is
//	wasted work. CacheMatrix computes the inverse on first request, serves
//	the stored result on every later request, and drops it the moment the
//	underlying matrix changes:
//	  • New        - build a handle from [][]float64 (validated, no inversion)
//	  • Set        - replace the matrix, clearing the cached inverse
//	  • Get        - the current matrix, by reference
//	  • GetInverse - cached inverse, computing and storing it when absent
//	  • CacheSolve - validating accessor that delegates to GetInverse
//
// ✨ Key properties:
//   - Fail-safe construction: New validates structure only and never invokes
//     the inversion primitive; the O(n³) cost is paid at most once per
//     distinct matrix value, exactly when first needed.
//   - Strong exception safety: a failing Set or New leaves the prior state
//     fully intact; a failing GetInverse leaves the cache absent so a
//     corrected retry starts clean.
//   - Observable: Stats() exposes hit/miss/invalidation counters so callers
//     (and tests) can prove a value was served from cache.
//
// ⚙️ Usage:
//
//	cm, err := cachematrix.New([][]float64{{4, 7}, {2, 6}})
//	if err != nil { ... }
//	inv, err := cachematrix.CacheSolve(cm)  // computes and caches
//	inv2, _ := cachematrix.CacheSolve(cm)   // served from cache, same value
//	_ = cm.Set([][]float64{{1, 0}, {0, 1}}) // invalidates the cache
//
// Errors are sentinel values matched with errors.Is: ErrNotMatrix and
// ErrNotSquare from structural validation, ErrNotCacheMatrix from the
// CacheSolve capability check, and the matrix package's sentinels (notably
// matrix.ErrSingular) propagated verbatim from the inversion primitive.
//
// Known limitations (intentional):
//   - Inversion options are consumed only on a cache miss. A later call that
//     passes different options receives the inverse cached under the earlier
//     ones; options tune numeric tolerance, never the mathematical result,
//     so the cached value stays correct.
//   - Get and GetInverse return the stored matrices by reference, without
//     copying. Mutating them in place bypasses invalidation.
//   - A CacheMatrix is single-owner state: no internal locking, not safe for
//     concurrent use. Callers needing shared access must serialize Set and
//     GetInverse as a unit with their own mutex.
//
// The heavy lifting (dense storage, LU factorization, the inversion kernel)
// lives in the matrix subpackage.
package cachematrix
