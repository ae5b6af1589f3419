package matrix_test

import (
	"testing"

	"github.com/joffefasser/ProgrammingAssignment2/matrix"
)

// benchmarkInverse inverts a fixed diagonally dominant n×n matrix per
// iteration. It resets the timer after setup and fails on unexpected errors.
func benchmarkInverse(b *testing.B, n int) {
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = float64((i*n+j)%7) / 7.0 // predictable fill
		}
		rows[i][i] += float64(n) // guarantee non-zero pivots
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		b.Fatalf("FromRows failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = matrix.Inverse(m); err != nil {
			b.Fatalf("Inverse failed: %v", err)
		}
	}
}

// BenchmarkInverse_8 measures inversion of a small 8×8 matrix.
func BenchmarkInverse_8(b *testing.B) { benchmarkInverse(b, 8) }

// BenchmarkInverse_32 measures inversion of a 32×32 matrix.
func BenchmarkInverse_32(b *testing.B) { benchmarkInverse(b, 32) }

// BenchmarkInverse_128 measures inversion of a 128×128 matrix (O(n³) wall).
func BenchmarkInverse_128(b *testing.B) { benchmarkInverse(b, 128) }

// BenchmarkMul_32 measures the product of two 32×32 matrices.
func BenchmarkMul_32(b *testing.B) {
	const n = 32
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = float64(i + j)
		}
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		b.Fatalf("FromRows failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.Mul(m, m); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}
