package token_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/token"
)

// benchSequences builds two deterministic int sequences over a small
// alphabet so window overlap stays realistic.
func benchSequences(n, m int) ([]int, []int) {
	x := make([]int, n)
	y := make([]int, m)
	for i := 0; i < n; i++ {
		x[i] = i % 11
	}
	for j := 0; j < m; j++ {
		y[j] = (j + j/5) % 11
	}

	return x, y
}

// BenchmarkJaccard_Elements_1000 measures the exact-map fast path.
func BenchmarkJaccard_Elements_1000(b *testing.B) {
	x, y := benchSequences(1000, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := token.Jaccard(x, y, nil); err != nil {
			b.Fatalf("jaccard failed: %v", err)
		}
	}
}

// BenchmarkJaccard_Trigrams_1000 measures the hashed window path.
func BenchmarkJaccard_Trigrams_1000(b *testing.B) {
	x, y := benchSequences(1000, 1000)
	opts := token.DefaultOptions()
	opts.Order = 3

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := token.Jaccard(x, y, &opts); err != nil {
			b.Fatalf("jaccard failed: %v", err)
		}
	}
}

// BenchmarkSorensen_Elements_1000 measures the multiset overlap path.
func BenchmarkSorensen_Elements_1000(b *testing.B) {
	x, y := benchSequences(1000, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := token.Sorensen(x, y, nil); err != nil {
			b.Fatalf("sorensen failed: %v", err)
		}
	}
}

// BenchmarkSubseqJaccard_50x50 measures the all-widths sweep; kept small
// because cost grows with the square of the longer length.
func BenchmarkSubseqJaccard_50x50(b *testing.B) {
	x, y := benchSequences(50, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		token.SubseqJaccard(x, y)
	}
}
