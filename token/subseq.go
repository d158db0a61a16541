// Package token: the length-weighted subsequence variant of Jaccard.
package token

import (
	"math"

	"github.com/katalvlaran/lvlseq/core"
)

// SubseqJaccard computes a similarity that credits every shared contiguous
// window of every width, longer windows weighted higher. It takes no
// Options: the sweep over all widths is the whole point, so there is
// nothing to configure.
//
// For each width ℓ from L = max(len(x), len(y)) down to 1, a per-width
// Jaccard ratio (distinct shared ℓ-windows over the multiplicity union) is
// scaled by ℓ and accumulated. With den = L·(L+1)/2 the distance is
//
//	D = (1 - Σ scores / den)^L
//
// and the similarity is 1 - D. Raising to the L-th power sharpens the
// score: long sequences must share long runs to stay close.
//
// Contracts:
//   - Result in [0,1]; symmetric in x and y.
//   - Repeated windows widen the per-width unions, so only duplicate-free
//     equal sequences reach exactly 1.
//   - Both empty → 1; exactly one empty → 0.
//
// Complexity: O((len(x)+len(y))·L²) time, O(max(len(x),len(y))) memory
// per width.
func SubseqJaccard[T comparable](x, y []T) float64 {
	return 1 - SubseqJaccardDist(x, y)
}

// SubseqJaccardDist returns the distance form D described at SubseqJaccard.
func SubseqJaccardDist[T comparable](x, y []T) float64 {
	var (
		la = len(x)
		lb = len(y)
	)
	if la == 0 && lb == 0 {
		return 0
	}
	if la == 0 || lb == 0 {
		return 1
	}

	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}

	// Longest width first, matching the accumulation order the summed
	// floating-point scores were pinned under.
	var sum float64
	for length := maxLen; length >= 1; length-- {
		var (
			wx     = windowTotal(la, length)
			wy     = windowTotal(lb, length)
			shared = sharedWindows(x, y, length)
		)

		sum += float64(shared) / float64(wx+wy-shared) * float64(length)
	}

	den := float64(maxLen*(maxLen+1)) / 2.0

	return math.Pow(1-sum/den, float64(maxLen))
}

// sharedWindows counts distinct windows of one width occurring in both
// sequences, by hashed identity.
func sharedWindows[T comparable](x, y []T, length int) int {
	if length > len(x) || length > len(y) {
		return 0
	}

	seen := make(map[uint64]struct{}, len(x)-length+1)
	for i := 0; i+length <= len(x); i++ {
		seen[core.WindowKey(x[i:i+length])] = struct{}{}
	}

	var shared int
	for j := 0; j+length <= len(y); j++ {
		key := core.WindowKey(y[j : j+length])
		if _, ok := seen[key]; ok {
			shared++
			delete(seen, key)
		}
	}

	return shared
}
