// Package edit: the "fragile ends" distance.
package edit

import "math"

// FragileEnds computes a Levenshtein-style distance that discounts
// deletions near the ends of x: inside the leading FragStart% and trailing
// FragEnd% of x a deletion costs 0.5 instead of 1. Manuscripts fray at the
// first and last pages, so losses there carry less signal.
//
// Contracts:
//   - NOT symmetric: the fragile regions are regions of x.
//   - Despite the historical "similarity" naming of this family, the raw
//     value is distance-like (0 means equal).
//
// With opts.Normalize the raw score is divided by
// max(raw, F(x·y, x), F(x·y, y)) where x·y is the concatenation; rewriting
// the concatenation down to either side bounds the achievable score, so the
// result lands in [0,1]. Two empty sequences normalize to 0.
//
// Errors: core.ErrConfig (wrapped) when the fragile percentages are outside
// [0,100] or overlap.
//
// Complexity: O(len(x)·len(y)) time and memory; normalization adds two
// O((len(x)+len(y))·len) fills.
func FragileEnds[T comparable](x, y []T, opts *Options) (float64, error) {
	o := resolve(opts)
	if err := validateFragile(o.FragStart, o.FragEnd); err != nil {
		return 0, err
	}

	raw := fragileEndsRaw(x, y, o.FragStart, o.FragEnd)
	if !o.Normalize {
		return raw, nil
	}

	// Stage 2 - bound by the concatenation self-comparisons.
	xy := make([]T, 0, len(x)+len(y))
	xy = append(append(xy, x...), y...)

	den := math.Max(raw, math.Max(
		fragileEndsRaw(xy, x, o.FragStart, o.FragEnd),
		fragileEndsRaw(xy, y, o.FragStart, o.FragEnd),
	))
	if den == 0 {
		return 0, nil
	}

	return raw / den, nil
}

// fragileEndsRaw runs the fill with the discounted-deletion cost rule and a
// first column accumulated under the same rule.
func fragileEndsRaw[T comparable](x, y []T, fragStart, fragEnd float64) float64 {
	return wagnerFischer(len(x), len(y), fragileEndsMatrix(len(x), len(y), fragStart, fragEnd), fragileEndsCosts(x, y, fragStart, fragEnd))
}

// fragileBand reports whether row i of an m-row matrix falls inside either
// fragile region. Boundaries use round-half-even of percent·m, which keeps
// the band edges stable for tied fractions.
func fragileBand(i, m int, fragStart, fragEnd float64) bool {
	lower := int(math.RoundToEven(fragStart / 100.0 * float64(m)))
	upper := int(math.RoundToEven((100.0 - fragEnd) / 100.0 * float64(m)))

	return i <= lower || i >= upper
}

// fragileEndsMatrix accumulates the first column at 0.5 per row inside the
// fragile band and 1 outside; the first row keeps unit insertions.
func fragileEndsMatrix(m, n int, fragStart, fragEnd float64) [][]float64 {
	d := newZeroMatrix(m, n)
	for i := 1; i <= m; i++ {
		if fragileBand(i, m, fragStart, fragEnd) {
			d[i][0] = d[i-1][0] + 0.5
		} else {
			d[i][0] = d[i-1][0] + 1
		}
	}
	for j := 1; j <= n; j++ {
		d[0][j] = float64(j)
	}

	return d
}

// fragileEndsCosts yields insert and substitute at unit cost plus a
// deletion discounted to 0.5 inside the fragile band.
func fragileEndsCosts[T comparable](x, y []T, fragStart, fragEnd float64) costFn {
	m := len(x)

	return func(dst []float64, d [][]float64, i, j int) []float64 {
		dst = append(dst,
			d[i][j-1]+1, // insert
			d[i-1][j-1]+substitutionCost(x[i-1], y[j-1]),
		)
		if fragileBand(i, m, fragStart, fragEnd) {
			dst = append(dst, d[i-1][j]+0.5)
		} else {
			dst = append(dst, d[i-1][j]+1)
		}

		return dst
	}
}
