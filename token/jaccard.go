// Package token: the Jaccard index over sequence windows.
package token

import "github.com/katalvlaran/lvlseq/core"

// Jaccard computes the window-set similarity of x and y.
//
// With wx, wy the window totals (multiplicity included) and shared the
// number of distinct windows occurring in both sequences, the score is
// shared / (wx + wy - shared). At Order 1 this is the classical element
// form with the sequence lengths as the union bound.
//
// Contracts:
//   - Result in [0,1]; symmetric in x and y.
//   - Repeated windows widen the union, so only duplicate-free equal
//     sequences reach exactly 1.
//   - No windows on either side → 0 (the 0/0 := 0 convention).
//
// Errors:
//   - core.ErrConfig if Order < 1.
//
// Complexity: O((len(x)+len(y))·Order) time, O(len(x)+len(y)) memory.
func Jaccard[T comparable](x, y []T, opts *Options) (float64, error) {
	o := resolve(opts)
	if err := validateOrder(o.Order); err != nil {
		return 0, err
	}

	if o.Order == 1 {
		return elementJaccard(x, y), nil
	}

	return windowJaccard(x, y, o.Order)
}

// JaccardDist returns 1 - Jaccard(x, y, opts).
func JaccardDist[T comparable](x, y []T, opts *Options) (float64, error) {
	sim, err := Jaccard(x, y, opts)
	if err != nil {
		return 0, err
	}

	return 1 - sim, nil
}

// elementJaccard is the Order == 1 fast path on exact element identity.
func elementJaccard[T comparable](x, y []T) float64 {
	if len(x) == 0 && len(y) == 0 {
		return 0
	}

	seen := make(map[T]struct{}, len(x))
	for _, e := range x {
		seen[e] = struct{}{}
	}

	// Delete on first hit so duplicates in y count the element once.
	var shared int
	for _, e := range y {
		if _, ok := seen[e]; ok {
			shared++
			delete(seen, e)
		}
	}

	return float64(shared) / float64(len(x)+len(y)-shared)
}

// windowJaccard runs the same ratio over hashed order-n windows.
func windowJaccard[T comparable](x, y []T, order int) (float64, error) {
	cx, err := core.WindowCounts(x, order)
	if err != nil {
		return 0, err
	}

	cy, err := core.WindowCounts(y, order)
	if err != nil {
		return 0, err
	}

	var (
		wx = windowTotal(len(x), order)
		wy = windowTotal(len(y), order)
	)
	if wx+wy == 0 {
		return 0, nil
	}

	var shared int
	for key := range cx {
		if _, ok := cy[key]; ok {
			shared++
		}
	}

	return float64(shared) / float64(wx+wy-shared), nil
}
