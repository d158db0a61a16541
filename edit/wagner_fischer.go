// Package edit: the shared Wagner-Fischer matrix engine.
//
// Every variant in this package is the same flood fill over an
// (m+1)×(n+1) cost matrix; they differ only in the candidate costs
// produced per cell and in how the first column is seeded.
package edit

import "math"

// costFn appends the candidate costs for cell (i, j) to dst and returns the
// extended slice. Indices are 1-based over the matrix; element i of the
// first sequence is x[i-1]. Implementations must only read cells already
// filled by the row-major fill order: (i-1, …), (i, j-1).
type costFn func(dst []float64, d [][]float64, i, j int) []float64

// newMatrix allocates an (m+1)×(n+1) zero matrix with the generic seed
// d[i][0]=i, d[0][j]=j: deleting or inserting every element one at a time.
func newMatrix(m, n int) [][]float64 {
	d := newZeroMatrix(m, n)
	for i := 1; i <= m; i++ {
		d[i][0] = float64(i)
	}
	for j := 1; j <= n; j++ {
		d[0][j] = float64(j)
	}

	return d
}

// newZeroMatrix allocates an (m+1)×(n+1) matrix of zeros. Variants with a
// custom first column start from this and seed it themselves.
func newZeroMatrix(m, n int) [][]float64 {
	d := make([][]float64, m+1)
	for i := range d {
		d[i] = make([]float64, n+1)
	}

	return d
}

// wagnerFischer flood-fills the interior of d with the per-cell minimum of
// the candidate costs and returns the lower-right cell: the cheapest way of
// rewriting x (length m) into y (length n).
//
// Contracts:
//   - d is (m+1)×(n+1) with row 0 and column 0 already seeded.
//   - costs returns at least one candidate for every interior cell.
//
// Complexity: O(m·n·c) time for c candidates per cell, O(1) extra space
// beyond the caller's matrix.
func wagnerFischer(m, n int, d [][]float64, costs costFn) float64 {
	// Reused candidate buffer; variants append 3..MaxDelLen+2 entries.
	buf := make([]float64, 0, 8)

	var i, j int
	for i = 1; i <= m; i++ {
		for j = 1; j <= n; j++ {
			buf = costs(buf[:0], d, i, j)
			d[i][j] = minCost(buf)
		}
	}

	return d[m][n]
}

// minCost returns the smallest candidate. The engine never calls it with an
// empty slice.
func minCost(costs []float64) float64 {
	lowest := costs[0]
	for _, c := range costs[1:] {
		if c < lowest {
			lowest = c
		}
	}

	return lowest
}

// substitutionCost is 0 for equal elements, 1 otherwise.
func substitutionCost[T comparable](a, b T) float64 {
	if a == b {
		return 0
	}

	return 1
}

// normalizeByMaxLen maps a raw distance into [0,1] by the longer length.
// Two empty sequences normalize to 0 (identical inputs); that convention
// covers the zero divisor, so no core.ErrDomain escapes the edit family.
// A variant with a different divisor would return it here instead.
func normalizeByMaxLen(raw float64, la, lb int) float64 {
	longest := math.Max(float64(la), float64(lb))
	if longest == 0 {
		return 0
	}

	return raw / longest
}
