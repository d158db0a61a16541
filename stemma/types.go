// Package stemma: component enumeration, weights and validation for Composite.
package stemma

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlseq/core"
)

// Component identifies one normalized distance Composite can blend.
// The set is closed: blending an unknown component is a configuration
// error, not a lookup miss.
type Component int

const (
	// ComponentStemmatological is the edit distance tuned for scribal
	// transmission (block deletions, fragile ends), normalized by the
	// longer length.
	ComponentStemmatological Component = iota

	// ComponentJaroWinkler is the prefix-boosted Jaro distance with the
	// canonical Winkler parameters.
	ComponentJaroWinkler

	// ComponentJaccard is the element-level Jaccard distance (window
	// order 1).
	ComponentJaccard

	// ComponentLevenshtein is the classic edit distance normalized by the
	// longer length.
	ComponentLevenshtein

	// ComponentDamerau is the transposition-aware edit distance normalized
	// by the longer length.
	ComponentDamerau
)

// componentNames doubles as the known-component bound check.
var componentNames = map[Component]string{
	ComponentStemmatological: "stemmatological",
	ComponentJaroWinkler:     "jaro_winkler",
	ComponentJaccard:         "jaccard",
	ComponentLevenshtein:     "levenshtein",
	ComponentDamerau:         "damerau",
}

// String returns the component's canonical snake_case name.
func (c Component) String() string {
	if name, ok := componentNames[c]; ok {
		return name
	}

	return fmt.Sprintf("component(%d)", int(c))
}

// Weight assigns a share of the Composite mean to one component.
type Weight struct {
	Component Component
	Value     float64
}

// Options tunes the composite family.
//
// Fields:
//   - Normalize — for Birnbaum and FastBirnbaum, divide the raw count by
//     the larger self-similarity so the score lands in [0,1]. The distance
//     forms and Composite are already bounded; the flag is redundant there.
//   - Weights — Composite's component weights; nil means DefaultWeights().
type Options struct {
	Normalize bool
	Weights   []Weight
}

// DefaultOptions returns the documented defaults: raw Birnbaum counts and
// the default Composite weight vector.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Normalize: false,
		Weights:   nil,
	}
}

// resolve dereferences opts, substituting defaults for nil.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// weightTol is the tolerance for the sum-to-one check; weights are usually
// written as decimal fractions that cannot sum to exactly 1 in binary.
const weightTol = 1e-9

// roundScale stabilizes blended outputs at the ninth decimal so equal
// configurations compare equal across platforms.
const roundScale = 1e9

// round1e9 snaps x to the closest multiple of 1e-9.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// DefaultWeights returns the default component subset: stemmatological,
// Jaro-Winkler and Jaccard, equally weighted. The slice is fresh per call;
// callers may edit it.
//
// Complexity: O(1).
func DefaultWeights() []Weight {
	third := 1.0 / 3.0

	return []Weight{
		{Component: ComponentStemmatological, Value: third},
		{Component: ComponentJaroWinkler, Value: third},
		{Component: ComponentJaccard, Value: third},
	}
}

// validateWeights enforces the Composite contract: at least one entry,
// known and distinct components, non-negative values summing to 1 within
// weightTol.
func validateWeights(weights []Weight) error {
	if len(weights) == 0 {
		return fmt.Errorf("stemma: empty weight vector: %w", core.ErrConfig)
	}

	var (
		sum  float64
		seen = make(map[Component]struct{}, len(weights))
	)
	for _, w := range weights {
		if _, ok := componentNames[w.Component]; !ok {
			return fmt.Errorf("stemma: unknown component %d: %w", int(w.Component), core.ErrConfig)
		}
		if _, dup := seen[w.Component]; dup {
			return fmt.Errorf("stemma: component %s weighted twice: %w", w.Component, core.ErrConfig)
		}
		seen[w.Component] = struct{}{}

		if w.Value < 0 {
			return fmt.Errorf("stemma: negative weight %.6f for %s: %w", w.Value, w.Component, core.ErrConfig)
		}
		sum += w.Value
	}

	if math.Abs(sum-1) > weightTol {
		return fmt.Errorf("stemma: weights sum to %.12f, want 1: %w", sum, core.ErrConfig)
	}

	return nil
}
