// Package edit: Levenshtein and Damerau-Levenshtein distances.
package edit

// Levenshtein computes the classic edit distance between x and y: the
// minimum number of single-element insertions, deletions and substitutions
// rewriting x into y.
//
// Contracts:
//   - Symmetric: Levenshtein(x, y) == Levenshtein(y, x).
//   - Identity: 0 iff the sequences are equal.
//   - Empty inputs are fine: the distance to an empty sequence is the other
//     sequence's length.
//
// With opts.Normalize the raw count is divided by max(len(x), len(y));
// two empty sequences normalize to 0.
//
// Complexity: O(len(x)·len(y)) time and memory.
func Levenshtein[T comparable](x, y []T, opts *Options) (float64, error) {
	o := resolve(opts)

	raw := wagnerFischer(len(x), len(y), newMatrix(len(x), len(y)), levenshteinCosts(x, y))
	if o.Normalize {
		return normalizeByMaxLen(raw, len(x), len(y)), nil
	}

	return raw, nil
}

// Damerau computes the Damerau-Levenshtein distance: Levenshtein extended
// with a unit-cost transposition of two adjacent elements.
//
// Contracts and normalization match Levenshtein; the transposition only
// ever lowers the score, so Damerau(x, y) ≤ Levenshtein(x, y).
//
// Complexity: O(len(x)·len(y)) time and memory.
func Damerau[T comparable](x, y []T, opts *Options) (float64, error) {
	o := resolve(opts)

	raw := wagnerFischer(len(x), len(y), newMatrix(len(x), len(y)), damerauCosts(x, y))
	if o.Normalize {
		return normalizeByMaxLen(raw, len(x), len(y)), nil
	}

	return raw, nil
}

// levenshteinCosts yields the three classic candidates: delete x[i-1],
// insert y[j-1], substitute one for the other.
func levenshteinCosts[T comparable](x, y []T) costFn {
	return func(dst []float64, d [][]float64, i, j int) []float64 {
		return append(dst,
			d[i-1][j]+1, // delete
			d[i][j-1]+1, // insert
			d[i-1][j-1]+substitutionCost(x[i-1], y[j-1]),
		)
	}
}

// damerauCosts extends levenshteinCosts with the adjacent transposition
// candidate d[i-2][j-2]+1 when x[i-2..i-1] mirrors y[j-2..j-1].
func damerauCosts[T comparable](x, y []T) costFn {
	return func(dst []float64, d [][]float64, i, j int) []float64 {
		dst = append(dst,
			d[i-1][j]+1,
			d[i][j-1]+1,
			d[i-1][j-1]+substitutionCost(x[i-1], y[j-1]),
		)
		if i > 1 && j > 1 && x[i-1] == y[j-2] && x[i-2] == y[j-1] {
			dst = append(dst, d[i-2][j-2]+1) // transpose
		}

		return dst
	}
}
