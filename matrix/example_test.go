package matrix_test

import (
	"errors"
	"fmt"

	"github.com/joffefasser/ProgrammingAssignment2/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleInverse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Invert a well-conditioned 2×2 matrix and read the result back as rows.
//	  A = [[4, 7], [2, 6]], det(A) = 10, A⁻¹ = [[0.6, -0.7], [-0.2, 0.4]]
//
// Complexity: O(n³) time, O(n²) memory.
func ExampleInverse() {
	m, err := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	inv, err := matrix.Inverse(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rows, _ := matrix.ToRows(inv)
	for _, row := range rows {
		fmt.Printf("[%.2f %.2f]\n", row[0], row[1])
	}
	// Output:
	// [0.60 -0.70]
	// [-0.20 0.40]
}

// ExampleInverse_singular shows the deterministic singularity sentinel.
func ExampleInverse_singular() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {2, 4}}) // rank 1

	_, err := matrix.Inverse(m)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output:
	// true
}
