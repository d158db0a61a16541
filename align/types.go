// Package align: options, defaults and the matching block type.
package align

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/core"
)

// Documented defaults for the Winkler prefix boost (mirrored by DefaultOptions).
const (
	// DefaultPrefixWeight scales the prefix boost per shared leading element.
	DefaultPrefixWeight = 0.1

	// DefaultBoostThreshold is the Jaro score a pair must exceed (strictly)
	// before the prefix boost applies.
	DefaultBoostThreshold = 0.7

	// DefaultMaxPrefix caps how many leading elements count toward the boost.
	DefaultMaxPrefix = 4
)

// Options tunes the Jaro-Winkler prefix boost. Jaro itself and the other
// metrics in this package take no parameters.
//
// Fields:
//   - PrefixWeight   — boost per shared leading element; ≥ 0, and
//     PrefixWeight·MaxPrefix must stay ≤ 1 so scores remain in [0,1].
//   - BoostThreshold — minimum Jaro score (exclusive) for boosting; in [0,1].
//   - MaxPrefix      — prefix length cap; ≥ 0.
type Options struct {
	PrefixWeight   float64
	BoostThreshold float64
	MaxPrefix      int
}

// DefaultOptions returns the canonical Winkler parameters: weight 0.1,
// threshold 0.7, prefix cap 4.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		PrefixWeight:   DefaultPrefixWeight,
		BoostThreshold: DefaultBoostThreshold,
		MaxPrefix:      DefaultMaxPrefix,
	}
}

// resolve dereferences opts, substituting defaults for nil.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// validate enforces the documented option ranges.
func validate(o Options) error {
	if o.PrefixWeight < 0 {
		return fmt.Errorf("align: prefix weight %.4f must be ≥ 0: %w", o.PrefixWeight, core.ErrConfig)
	}
	if o.MaxPrefix < 0 {
		return fmt.Errorf("align: max prefix %d must be ≥ 0: %w", o.MaxPrefix, core.ErrConfig)
	}
	if o.PrefixWeight*float64(o.MaxPrefix) > 1 {
		return fmt.Errorf("align: prefix weight %.4f × max prefix %d exceeds 1, scores would leave [0,1]: %w",
			o.PrefixWeight, o.MaxPrefix, core.ErrConfig)
	}
	if o.BoostThreshold < 0 || o.BoostThreshold > 1 {
		return fmt.Errorf("align: boost threshold %.4f outside [0,1]: %w", o.BoostThreshold, core.ErrConfig)
	}

	return nil
}

// Block is one maximal run of equal elements shared by two sequences:
// x[A:A+Size] == y[B:B+Size]. Produced by MatchingBlocks.
type Block struct {
	A    int // start in the first sequence
	B    int // start in the second sequence
	Size int // run length, always ≥ 1 in MatchingBlocks output
}
