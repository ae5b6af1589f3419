// Package matrix_test contains unit tests for the canonical validators.
package matrix_test

import (
	"testing"

	"github.com/joffefasser/ProgrammingAssignment2/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	m := mustFromRows(t, [][]float64{{1}})
	require.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateSquare(t *testing.T) {
	sq := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, matrix.ValidateSquare(sq))

	rect := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)

	// The empty matrix is conventionally square (0×0).
	empty := mustFromRows(t, nil)
	require.NoError(t, matrix.ValidateSquare(empty))
}

func TestValidateMulCompatible(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}}) // 1×3
	b := mustFromRows(t, [][]float64{{1}, {2}, {3}})
	require.NoError(t, matrix.ValidateMulCompatible(a, b)) // 1×3 · 3×1
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, b), matrix.ErrDimensionMismatch)
}

func TestValidateRows(t *testing.T) {
	for name, tc := range map[string]struct {
		rows [][]float64
		want error
	}{
		"rectangular": {[][]float64{{1, 2}, {3, 4}}, nil},
		"single":      {[][]float64{{1}}, nil},
		"wide":        {[][]float64{{1, 2, 3}}, nil},
		"empty":       {[][]float64{}, nil},
		"nil":         {nil, nil},
		"zero-width":  {[][]float64{{}}, nil}, // 1×0 is rectangular (squareness is a separate check)
		"ragged":      {[][]float64{{1, 2}, {3}}, matrix.ErrRagged},
		"nil-row":     {[][]float64{{1}, nil}, matrix.ErrNilRow},
		"nil-first":   {[][]float64{nil, {1}}, matrix.ErrNilRow},
	} {
		t.Run(name, func(t *testing.T) {
			err := matrix.ValidateRows(tc.rows)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}
