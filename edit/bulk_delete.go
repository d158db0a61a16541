// Package edit: the "bulk delete" distance.
package edit

// BulkDelete computes an edit distance where deleting a contiguous block of
// up to opts.MaxDelLen elements counts as a single operation. Insertions
// and substitutions keep unit cost. The variant models a scribe dropping a
// whole quire as one event rather than many.
//
// Contracts:
//   - NOT symmetric: block deletion applies to x only.
//   - Deleting all of x into an empty y costs ⌈len(x)/MaxDelLen⌉.
//
// With opts.Normalize the raw score is divided by max(len(x), len(y)).
//
// Errors: core.ErrConfig (wrapped) when opts.MaxDelLen < 1.
//
// Complexity: O(len(x)·len(y)·MaxDelLen) time, O(len(x)·len(y)) memory.
func BulkDelete[T comparable](x, y []T, opts *Options) (float64, error) {
	o := resolve(opts)
	if err := validateMaxDelLen(o.MaxDelLen); err != nil {
		return 0, err
	}

	raw := wagnerFischer(len(x), len(y), bulkDeleteMatrix(len(x), len(y), o.MaxDelLen), bulkDeleteCosts(x, y, o.MaxDelLen))
	if o.Normalize {
		return normalizeByMaxLen(raw, len(x), len(y)), nil
	}

	return raw, nil
}

// bulkDeleteMatrix seeds the first column with the block-deletion cost of
// the leading i elements: full blocks plus one partial block if any.
func bulkDeleteMatrix(m, n, maxDelLen int) [][]float64 {
	d := newZeroMatrix(m, n)

	var i, blocks int
	for i = 1; i <= m; i++ {
		blocks = i / maxDelLen
		d[i][0] = float64(blocks)
		if i-blocks*maxDelLen != 0 {
			d[i][0]++ // partial trailing block
		}
	}
	for j := 1; j <= n; j++ {
		d[0][j] = float64(j)
	}

	return d
}

// bulkDeleteCosts yields insert, substitute, and one candidate per deletion
// block length n = 1..min(maxDelLen+1, i)-1, each costing a single unit.
func bulkDeleteCosts[T comparable](x, y []T, maxDelLen int) costFn {
	return func(dst []float64, d [][]float64, i, j int) []float64 {
		dst = append(dst,
			d[i][j-1]+1, // insert
			d[i-1][j-1]+substitutionCost(x[i-1], y[j-1]),
		)

		reach := maxDelLen + 1
		if i < reach {
			reach = i
		}
		for n := 1; n < reach; n++ {
			dst = append(dst, d[i-n][j]+1) // delete block of n
		}

		return dst
	}
}
