// Package edit: options, defaults and validation for the edit distance family.
package edit

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/core"
)

// Documented defaults (single source of truth, mirrored by DefaultOptions).
const (
	// DefaultMaxDelLen is the longest deletion block that still costs one
	// operation in BulkDelete and Stemmatological.
	DefaultMaxDelLen = 5

	// DefaultFragStart is the size of the leading fragile region, in percent
	// of the first sequence's length.
	DefaultFragStart = 10.0

	// DefaultFragEnd is the size of the trailing fragile region, in percent
	// of the first sequence's length.
	DefaultFragEnd = 10.0
)

// Options tunes the edit distance variants. The zero value is NOT the
// default configuration; use DefaultOptions and adjust fields.
//
// Fields:
//   - Normalize — divide the raw distance into [0,1]: by max(len(x), len(y))
//     for Levenshtein, Damerau, BulkDelete and Stemmatological, and by the
//     concatenation bound for FragileEnds (see FragileEnds docs).
//   - MaxDelLen — block deletion reach for BulkDelete and Stemmatological;
//     must be ≥ 1.
//   - FragStart, FragEnd — fragile region sizes in percent of len(x), used
//     by FragileEnds and Stemmatological; each in [0,100], sum ≤ 100.
type Options struct {
	Normalize bool
	MaxDelLen int
	FragStart float64
	FragEnd   float64
}

// DefaultOptions returns the documented defaults: raw (non-normalized)
// distances, MaxDelLen=5, FragStart=FragEnd=10%.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Normalize: false,
		MaxDelLen: DefaultMaxDelLen,
		FragStart: DefaultFragStart,
		FragEnd:   DefaultFragEnd,
	}
}

// resolve dereferences opts, substituting defaults for nil.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// validateMaxDelLen rejects non-positive block deletion reach.
func validateMaxDelLen(n int) error {
	if n < 1 {
		return fmt.Errorf("edit: max deletion length %d must be ≥ 1: %w", n, core.ErrConfig)
	}

	return nil
}

// validateFragile rejects fragile regions outside [0,100] percent or
// overlapping ones (start + end > 100).
func validateFragile(start, end float64) error {
	if start < 0 || start > 100 {
		return fmt.Errorf("edit: fragile start %.2f%% outside [0,100]: %w", start, core.ErrConfig)
	}
	if end < 0 || end > 100 {
		return fmt.Errorf("edit: fragile end %.2f%% outside [0,100]: %w", end, core.ErrConfig)
	}
	if start+end > 100 {
		return fmt.Errorf("edit: fragile regions overlap (%.2f%% + %.2f%% > 100%%): %w", start, end, core.ErrConfig)
	}

	return nil
}
