// Package edit: the "stemmatological" distance.
package edit

import "math"

// Stemmatological combines BulkDelete and FragileEnds: a deletion block of
// up to opts.MaxDelLen elements is one operation, discounted to 0.5 when it
// ends inside a fragile region of x. The fragile regions cover the leading
// opts.FragStart% and trailing opts.FragEnd% of x.
//
// Contracts:
//   - NOT symmetric: block deletion and fragility both apply to x only.
//   - Reduces to plain Levenshtein on pairs with no shared structure.
//
// With opts.Normalize the raw score is divided by max(len(x), len(y)); two
// empty sequences normalize to 0.
//
// Errors: core.ErrConfig (wrapped) on MaxDelLen < 1 or fragile percentages
// outside [0,100] or overlapping.
//
// Complexity: O(len(x)·len(y)·MaxDelLen) time, O(len(x)·len(y)) memory.
func Stemmatological[T comparable](x, y []T, opts *Options) (float64, error) {
	o := resolve(opts)
	if err := validateMaxDelLen(o.MaxDelLen); err != nil {
		return 0, err
	}
	if err := validateFragile(o.FragStart, o.FragEnd); err != nil {
		return 0, err
	}

	raw := wagnerFischer(
		len(x), len(y),
		stemmatologicalMatrix(len(x), len(y), o.MaxDelLen, o.FragStart, o.FragEnd),
		stemmatologicalCosts(x, y, o.MaxDelLen, o.FragStart, o.FragEnd),
	)
	if o.Normalize {
		return normalizeByMaxLen(raw, len(x), len(y)), nil
	}

	return raw, nil
}

// stemmatologicalBand reports whether row i of an m-row matrix falls inside
// either fragile region. The boundary expression multiplies before
// dividing, so exact .5 ties can round differently from fragileBand; both
// shapes are part of the scoring contract.
func stemmatologicalBand(i, m int, fragStart, fragEnd float64) bool {
	lower := int(math.RoundToEven(float64(m) * fragStart / 100.0))
	upper := int(math.RoundToEven(float64(m) * (100.0 - fragEnd) / 100.0))

	return i <= lower || i >= upper
}

// stemmatologicalMatrix seeds the first column with discounted bulk
// deletions: each row extends the cost at the start of its deletion block
// (up to maxDelLen back) by 0.5 inside the band, 1 outside.
func stemmatologicalMatrix(m, n, maxDelLen int, fragStart, fragEnd float64) [][]float64 {
	d := newZeroMatrix(m, n)

	var i, back int
	for i = 1; i <= m; i++ {
		back = maxDelLen
		if i < back {
			back = i
		}
		if stemmatologicalBand(i, m, fragStart, fragEnd) {
			d[i][0] = d[i-back][0] + 0.5
		} else {
			d[i][0] = d[i-back][0] + 1.0
		}
	}
	for j := 1; j <= n; j++ {
		d[0][j] = float64(j)
	}

	return d
}

// stemmatologicalCosts yields insert and substitute at unit cost plus one
// candidate per deletion block length n = 1..min(maxDelLen, i)-1,
// discounted to 0.5 inside the fragile band. The interior block reach stops
// one short of MaxDelLen; the first column alone uses the full reach.
func stemmatologicalCosts[T comparable](x, y []T, maxDelLen int, fragStart, fragEnd float64) costFn {
	m := len(x)

	return func(dst []float64, d [][]float64, i, j int) []float64 {
		dst = append(dst,
			d[i][j-1]+1, // insert
			d[i-1][j-1]+substitutionCost(x[i-1], y[j-1]),
		)

		var (
			reach  = maxDelLen
			inBand = stemmatologicalBand(i, m, fragStart, fragEnd)
		)
		if i < reach {
			reach = i
		}
		for n := 1; n < reach; n++ {
			if inBand {
				dst = append(dst, d[i-n][j]+0.5)
			} else {
				dst = append(dst, d[i-n][j]+1)
			}
		}

		return dst
	}
}
