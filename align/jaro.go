// Package align: Jaro and Jaro-Winkler similarities.
package align

// Jaro computes the Jaro similarity: a weighted blend of how many elements
// match within a sliding window and how many matched pairs arrive out of
// order (transpositions).
//
// Contracts:
//   - Symmetric; result in [0,1]; Jaro(a, a) == 1 for every a, the empty
//     sequence included.
//   - One empty sequence yields 0; no matches yields 0.
//
// Complexity: O(len(x)·w) time for window w = max(len)/2-1, O(len(x)+len(y))
// memory for the match flags.
func Jaro[T comparable](x, y []T) float64 {
	var (
		la = len(x)
		lb = len(y)
	)
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}

	// Stage 1 - greedy matching within the search window.
	window := la
	if lb > window {
		window = lb
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}

	var (
		xFlags  = make([]bool, la)
		yFlags  = make([]bool, lb)
		matched int
	)
	for i := 0; i < la; i++ {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > lb {
			hi = lb
		}
		for j := lo; j < hi; j++ {
			if !yFlags[j] && y[j] == x[i] {
				xFlags[i], yFlags[j] = true, true
				matched++

				break
			}
		}
	}
	if matched == 0 {
		return 0
	}

	// Stage 2 - transpositions: walk both matched streams in order and
	// count value mismatches; each swap shows up twice, so halve (integer
	// division, matching the record-linkage literature).
	var mismatches, k int
	for i := 0; i < la; i++ {
		if !xFlags[i] {
			continue
		}
		for !yFlags[k] {
			k++
		}
		if x[i] != y[k] {
			mismatches++
		}
		k++
	}

	var (
		m = float64(matched)
		t = float64(mismatches / 2)
	)

	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}

// JaroDist returns 1 - Jaro(x, y).
func JaroDist[T comparable](x, y []T) float64 {
	return 1 - Jaro(x, y)
}

// JaroWinkler computes the Jaro similarity boosted toward 1 for pairs that
// already score above opts.BoostThreshold and share a leading prefix:
// score += l·PrefixWeight·(1-score) for l shared leading elements, capped
// at opts.MaxPrefix.
//
// Contracts:
//   - Symmetric; result in [0,1] under the validated option ranges.
//   - The boost never fires on scores ≤ BoostThreshold (strict comparison).
//
// Errors: core.ErrConfig (wrapped) on option values outside their ranges.
//
// Complexity: as Jaro plus O(MaxPrefix).
func JaroWinkler[T comparable](x, y []T, opts *Options) (float64, error) {
	o := resolve(opts)
	if err := validate(o); err != nil {
		return 0, err
	}

	score := Jaro(x, y)
	if score <= o.BoostThreshold {
		return score, nil
	}

	limit := o.MaxPrefix
	if len(x) < limit {
		limit = len(x)
	}
	if len(y) < limit {
		limit = len(y)
	}

	prefix := 0
	for prefix < limit && x[prefix] == y[prefix] {
		prefix++
	}
	if prefix > 0 {
		score += float64(prefix) * o.PrefixWeight * (1 - score)
	}

	return score, nil
}

// JaroWinklerDist returns 1 - JaroWinkler(x, y, opts).
func JaroWinklerDist[T comparable](x, y []T, opts *Options) (float64, error) {
	sim, err := JaroWinkler(x, y, opts)
	if err != nil {
		return 0, err
	}

	return 1 - sim, nil
}
