// Package token: the Sørensen-Dice coefficient over sequence windows.
package token

import "github.com/katalvlaran/lvlseq/core"

// Sorensen computes the Sørensen-Dice similarity of x and y.
//
// Windows are compared as multisets: with cntx, cnty the per-window counts
// and wx, wy the window totals, the score is
//
//	2 · Σ_w min(cntx(w), cnty(w)) / (wx + wy)
//
// Contracts:
//   - Result in [0,1]; symmetric in x and y; equal sequences score 1.
//   - No windows on either side → 0 (the 0/0 := 0 convention).
//
// Errors:
//   - core.ErrConfig if Order < 1.
//
// Complexity: O((len(x)+len(y))·Order) time, O(len(x)+len(y)) memory.
func Sorensen[T comparable](x, y []T, opts *Options) (float64, error) {
	o := resolve(opts)
	if err := validateOrder(o.Order); err != nil {
		return 0, err
	}

	if o.Order == 1 {
		return elementSorensen(x, y), nil
	}

	return windowSorensen(x, y, o.Order)
}

// SorensenDist returns 1 - Sorensen(x, y, opts).
func SorensenDist[T comparable](x, y []T, opts *Options) (float64, error) {
	sim, err := Sorensen(x, y, opts)
	if err != nil {
		return 0, err
	}

	return 1 - sim, nil
}

// elementSorensen is the Order == 1 fast path on exact element identity.
func elementSorensen[T comparable](x, y []T) float64 {
	den := len(x) + len(y)
	if den == 0 {
		return 0
	}

	var (
		cx      = core.Counts(x)
		cy      = core.Counts(y)
		overlap int
	)
	for e, n := range cx {
		if m, ok := cy[e]; ok {
			overlap += minInt(n, m)
		}
	}

	return 2 * float64(overlap) / float64(den)
}

// windowSorensen runs the same ratio over hashed order-n windows.
func windowSorensen[T comparable](x, y []T, order int) (float64, error) {
	cx, err := core.WindowCounts(x, order)
	if err != nil {
		return 0, err
	}

	cy, err := core.WindowCounts(y, order)
	if err != nil {
		return 0, err
	}

	den := windowTotal(len(x), order) + windowTotal(len(y), order)
	if den == 0 {
		return 0, nil
	}

	var overlap int
	for key, n := range cx {
		if m, ok := cy[key]; ok {
			overlap += minInt(n, m)
		}
	}

	return 2 * float64(overlap) / float64(den), nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
