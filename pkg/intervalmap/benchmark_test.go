package intervalmap

import (
	"testing"
)

// Benchmark constants.
const (
	benchRunCount  = 10000
	benchSpacing   = 10
	benchWidth     = 7
	benchValueMod  = 16
	benchQuerySpan = 100000
)

// BenchmarkAssignDisjoint benchmarks assigning non-overlapping runs.
func BenchmarkAssignDisjoint(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := New[int, int](0)

		for i := 0; i < benchRunCount; i++ {
			begin := i * benchSpacing
			m.Assign(begin, begin+benchWidth, 1+i%benchValueMod)
		}
	}
}

// BenchmarkAssignOverlapping benchmarks assignments that keep superseding
// parts of earlier runs, exercising the overlap sweep.
func BenchmarkAssignOverlapping(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := New[int, int](0)

		for i := 0; i < benchRunCount; i++ {
			begin := (i * 31) % benchQuerySpan
			m.Assign(begin, begin+benchSpacing*2, 1+i%benchValueMod)
		}
	}
}

// BenchmarkGet benchmarks point lookup on a populated map.
func BenchmarkGet(b *testing.B) {
	m := New[int, int](0)

	for i := 0; i < benchRunCount; i++ {
		begin := i * benchSpacing
		m.Assign(begin, begin+benchWidth, 1+i%benchValueMod)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.Get((i * 17) % benchQuerySpan)
	}
}
