// Package stemma: the weighted blend of normalized component distances.
package stemma

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/align"
	"github.com/katalvlaran/lvlseq/core"
	"github.com/katalvlaran/lvlseq/edit"
	"github.com/katalvlaran/lvlseq/token"
)

// Composite computes the weighted mean of normalized component distances.
// Each opts.Weights entry selects one Component (see types.go) and its
// share of the mean; nil Weights selects DefaultWeights(): stemmatological,
// Jaro-Winkler and Jaccard at one third each. Components run with their own
// package defaults.
//
// Contracts:
//   - Result in [0,1], stabilized at the ninth decimal via round1e9.
//   - Identical sequences (two empty ones included) short-circuit to 0;
//     without the short-circuit the multiset Jaccard union would hold
//     duplicate-bearing identical pairs above 0.
//   - Symmetric exactly when every weighted component is.
//
// Errors: core.ErrConfig (wrapped) on an empty vector, unknown or repeated
// components, negative weights, or weights not summing to 1 within 1e-9.
//
// Complexity: the sum of the weighted components' costs; the default
// subset is dominated by the O(len(x)·len(y)·5) stemmatological fill.
func Composite[T comparable](x, y []T, opts *Options) (float64, error) {
	o := resolve(opts)

	weights := o.Weights
	if weights == nil {
		weights = DefaultWeights()
	}
	if err := validateWeights(weights); err != nil {
		return 0, err
	}

	if sequencesEqual(x, y) {
		return 0, nil
	}

	var blended float64
	for _, w := range weights {
		d, err := componentDist(x, y, w.Component)
		if err != nil {
			return 0, err
		}
		blended += w.Value * d
	}

	return round1e9(blended), nil
}

// componentDist evaluates one component as a normalized distance under its
// package defaults. validateWeights has already rejected unknown values,
// so the default branch is a guard, not a user-facing path.
func componentDist[T comparable](x, y []T, c Component) (float64, error) {
	switch c {
	case ComponentStemmatological:
		return StemmatologicalNorm(x, y)
	case ComponentJaroWinkler:
		return align.JaroWinklerDist(x, y, nil)
	case ComponentJaccard:
		return token.JaccardDist(x, y, nil)
	case ComponentLevenshtein:
		opts := edit.DefaultOptions()
		opts.Normalize = true

		return edit.Levenshtein(x, y, &opts)
	case ComponentDamerau:
		opts := edit.DefaultOptions()
		opts.Normalize = true

		return edit.Damerau(x, y, &opts)
	default:
		return 0, fmt.Errorf("stemma: component %s has no distance: %w", c, core.ErrConfig)
	}
}
