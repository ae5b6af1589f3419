// Package cachematrix_test contains unit tests for the CacheSolve accessor:
// capability guarding and pure delegation.
package cachematrix_test

import (
	"errors"
	"testing"

	cachematrix "github.com/joffefasser/ProgrammingAssignment2"
	"github.com/joffefasser/ProgrammingAssignment2/matrix"
	"github.com/stretchr/testify/require"
)

// recordingSolver is a minimal non-CacheMatrix implementation of the Solver
// surface. It proves the accessor checks capability, not concrete identity.
type recordingSolver struct {
	calls int
	inv   matrix.Matrix
	err   error
}

func (r *recordingSolver) Set(_ [][]float64) error { return nil }

func (r *recordingSolver) Get() matrix.Matrix { return nil }

func (r *recordingSolver) GetInverse(_ ...matrix.Option) (matrix.Matrix, error) {
	r.calls++

	return r.inv, r.err
}

func TestCacheSolve_DelegatesToHandle(t *testing.T) {
	cm, err := cachematrix.New(invertible2x2())
	require.NoError(t, err)

	// First solve computes, second is served from the handle's cache.
	first, err := cachematrix.CacheSolve(cm)
	require.NoError(t, err)
	second, err := cachematrix.CacheSolve(cm)
	require.NoError(t, err)
	require.Same(t, first, second)

	st := cm.Stats()
	require.Equal(t, uint64(1), st.Misses)
	require.Equal(t, uint64(1), st.Hits)
}

func TestCacheSolve_InterfaceGuard(t *testing.T) {
	// Anything lacking the Set/Get/GetInverse surface is rejected without
	// performing any computation.
	for name, v := range map[string]any{
		"int":      42,
		"string":   "makeCacheMatrix",
		"struct":   struct{}{},
		"rows":     [][]float64{{1}},
		"raw-mat":  mustDense(t, invertible2x2()),
		"func":     func() {},
		"nil-chan": (chan int)(nil),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := cachematrix.CacheSolve(v)
			require.ErrorIs(t, err, cachematrix.ErrNotCacheMatrix)
		})
	}
}

func TestCacheSolve_NilArguments(t *testing.T) {
	// Untyped nil carries no capability.
	_, err := cachematrix.CacheSolve(nil)
	require.ErrorIs(t, err, cachematrix.ErrNotCacheMatrix)

	// A typed-nil handle satisfies the interface but cannot serve the calls.
	_, err = cachematrix.CacheSolve((*cachematrix.CacheMatrix)(nil))
	require.ErrorIs(t, err, cachematrix.ErrNotCacheMatrix)
}

func TestCacheSolve_CapabilityNotIdentity(t *testing.T) {
	ident, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	fake := &recordingSolver{inv: ident}

	// A foreign implementation of the surface passes the guard untouched.
	got, err := cachematrix.CacheSolve(fake)
	require.NoError(t, err)
	require.Same(t, ident, got)
	require.Equal(t, 1, fake.calls)
}

func TestCacheSolve_PropagatesErrorsVerbatim(t *testing.T) {
	// From a real handle: singular matrix.
	cm, err := cachematrix.New([][]float64{{0, 0}, {0, 0}})
	require.NoError(t, err)
	_, err = cachematrix.CacheSolve(cm)
	require.ErrorIs(t, err, matrix.ErrSingular)

	// From a fake: the delegate's error comes through unchanged.
	boom := errors.New("boom")
	fake := &recordingSolver{err: boom}
	_, err = cachematrix.CacheSolve(fake)
	require.ErrorIs(t, err, boom)
}

// mustDense builds a *matrix.Dense fixture or aborts the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}
