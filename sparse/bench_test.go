package sparse_test

import (
	"fmt"
	"testing"
)

var benchSizes = []int{200, 800}

func BenchmarkFixAndEliminate(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			base := randomSymmetric(b, n, 8/float64(n), 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				a := base.Clone()
				x, rhs := make([]float64, n), make([]float64, n)
				b.StartTimer()
				for k := 0; k < n/10; k++ {
					x, rhs, _ = a.FixAndEliminate(0, 1, x, rhs)
				}
			}
		})
	}
}

func BenchmarkEliminateSet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			base := randomSymmetric(b, n, 8/float64(n), 1)
			idx := make([]int, n/10)
			vals := make([]float64, n/10)
			for k := range idx {
				idx[k] = 10 * k
				vals[k] = 1
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				a := base.Clone()
				x, rhs := make([]float64, n), make([]float64, n)
				b.StartTimer()
				_, _, _ = a.EliminateSet(idx, vals, x, rhs)
			}
		})
	}
}
