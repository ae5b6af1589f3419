package cachematrix_test

import (
	"testing"

	cachematrix "github.com/joffefasser/ProgrammingAssignment2"
)

// BenchmarkCacheSolve_Hit measures the steady-state cost of a cache hit:
// after the first solve, every iteration is served from the stored inverse.
func BenchmarkCacheSolve_Hit(b *testing.B) {
	cm, err := cachematrix.New(randomInvertible(64, 1))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	if _, err = cachematrix.CacheSolve(cm); err != nil {
		b.Fatalf("warm-up solve failed: %v", err)
	}

	b.ResetTimer() // ignore construction and warm-up
	for i := 0; i < b.N; i++ {
		if _, err = cachematrix.CacheSolve(cm); err != nil {
			b.Fatalf("CacheSolve failed: %v", err)
		}
	}
}

// BenchmarkCacheSolve_Miss measures the miss path: each iteration replaces
// the matrix (invalidating the cache) and forces a full inversion.
func BenchmarkCacheSolve_Miss(b *testing.B) {
	rows := randomInvertible(64, 1)
	cm, err := cachematrix.New(rows)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = cm.Set(rows); err != nil {
			b.Fatalf("Set failed: %v", err)
		}
		if _, err = cachematrix.CacheSolve(cm); err != nil {
			b.Fatalf("CacheSolve failed: %v", err)
		}
	}
}
