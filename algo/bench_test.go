package algo_test

import (
	"testing"

	"github.com/katalvlaran/lvdsa/algo"
)

// BenchmarkFind_Absent10000 measures a full scan that ends at the sentinel.
func BenchmarkFind_Absent10000(b *testing.B) {
	s := make([]int, 10000)
	for i := range s {
		s[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = algo.Find(s, -1)
	}
}

// BenchmarkReverse10000 measures in-place reversal of 10,000 ints.
func BenchmarkReverse10000(b *testing.B) {
	s := make([]int, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		algo.Reverse(s)
	}
}
