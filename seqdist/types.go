// Package seqdist: the closed method enumeration, its names and the
// unified option bag.
package seqdist

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/align"
	"github.com/katalvlaran/lvlseq/core"
	"github.com/katalvlaran/lvlseq/edit"
	"github.com/katalvlaran/lvlseq/ncd"
	"github.com/katalvlaran/lvlseq/stemma"
	"github.com/katalvlaran/lvlseq/token"
)

// Method selects one of the shipped metrics. The set is closed: Distance
// routes over this enum at compile time, and an out-of-range value is a
// configuration error, not a lookup miss.
type Method int

const (
	// Levenshtein is the classic unit-cost edit distance (edit.Levenshtein).
	Levenshtein Method = iota
	// Damerau adds adjacent transpositions (edit.Damerau).
	Damerau
	// BulkDelete charges one operation per deletion block (edit.BulkDelete).
	BulkDelete
	// FragileEnds discounts deletions near the ends (edit.FragileEnds).
	FragileEnds
	// Stemmatological combines BulkDelete and FragileEnds (edit.Stemmatological).
	Stemmatological
	// Jaro is the windowed matching distance 1−align.Jaro.
	Jaro
	// JaroWinkler is the prefix-boosted form, 1−align.JaroWinkler.
	JaroWinkler
	// RatcliffObershelp is 1−align.RatcliffObershelp.
	RatcliffObershelp
	// ContractingWindow is 1−align.ContractingWindow.
	ContractingWindow
	// Jaccard is the window-set distance token.JaccardDist.
	Jaccard
	// Sorensen is the multiset dice distance token.SorensenDist.
	Sorensen
	// SubseqJaccard is the length-weighted window distance token.SubseqJaccardDist.
	SubseqJaccard
	// NCD is the codec-backed compression distance ncd.NCD.
	NCD
	// ArithNCD replaces the codec with an exact arithmetic coder (ncd.ArithNCD).
	ArithNCD
	// EntropyNCD replaces the codec with a Shannon-entropy size (ncd.EntropyNCD).
	EntropyNCD
	// Birnbaum is the exhaustive window-count distance stemma.BirnbaumDist.
	Birnbaum
	// FastBirnbaum is the matching-block form stemma.FastBirnbaumDist.
	FastBirnbaum
	// Composite is the weighted blend stemma.Composite.
	Composite
)

// methodNames maps each method to its canonical snake_case name; the map
// doubles as the known-method bound check.
var methodNames = map[Method]string{
	Levenshtein:       "levenshtein",
	Damerau:           "damerau",
	BulkDelete:        "bulk_delete",
	FragileEnds:       "fragile_ends",
	Stemmatological:   "stemmatological",
	Jaro:              "jaro",
	JaroWinkler:       "jaro_winkler",
	RatcliffObershelp: "ratcliff_obershelp",
	ContractingWindow: "contracting_window",
	Jaccard:           "jaccard",
	Sorensen:          "sorensen",
	SubseqJaccard:     "subseq_jaccard",
	NCD:               "ncd",
	ArithNCD:          "arith_ncd",
	EntropyNCD:        "entropy_ncd",
	Birnbaum:          "birnbaum",
	FastBirnbaum:      "fast_birnbaum",
	Composite:         "composite",
}

// methodsByName resolves canonical names plus the historical aliases
// "damerau_levenshtein" and "entropy".
var methodsByName = func() map[string]Method {
	byName := make(map[string]Method, len(methodNames)+2)
	for m, name := range methodNames {
		byName[name] = m
	}
	byName["damerau_levenshtein"] = Damerau
	byName["entropy"] = EntropyNCD

	return byName
}()

// String returns the method's canonical snake_case name.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod resolves a canonical name or alias to its Method.
//
// Errors: core.ErrConfig (wrapped) on an unknown name; the message carries
// the offending string.
//
// Complexity: O(1) (one map probe).
func ParseMethod(name string) (Method, error) {
	if m, ok := methodsByName[name]; ok {
		return m, nil
	}

	return 0, fmt.Errorf("seqdist: unknown method %q: %w", name, core.ErrConfig)
}

// Methods returns every Method in enum order. Callers sweeping the whole
// family (benchmarks, similarity matrices) iterate this instead of
// hard-coding the set.
//
// Complexity: O(n) over the 18 methods; the slice is fresh per call.
func Methods() []Method {
	out := make([]Method, 0, len(methodNames))
	for m := Levenshtein; m <= Composite; m++ {
		out = append(out, m)
	}

	return out
}

// Options aggregates every forwarded knob. The zero value is NOT the
// default configuration; use DefaultOptions and adjust fields. A nil
// *Options anywhere in the package means DefaultOptions().
//
// Fields (forwarded to the owning package, documented there):
//   - Normalize — edit family only; the remaining methods are already
//     bounded in [0,1] and ignore it.
//   - MaxDelLen, FragStart, FragEnd — edit.Options.
//   - PrefixWeight, BoostThreshold, MaxPrefix — align.Options (JaroWinkler).
//   - Order — token.Options window width.
//   - Compressor — ncd codec; nil selects Flate at the default level.
//   - Weights — stemma.Composite component weights; nil selects the
//     default subset.
type Options struct {
	Normalize      bool
	MaxDelLen      int
	FragStart      float64
	FragEnd        float64
	PrefixWeight   float64
	BoostThreshold float64
	MaxPrefix      int
	Order          int
	Compressor     ncd.Compressor
	Weights        []stemma.Weight
}

// DefaultOptions mirrors every package's own defaults.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Normalize:      false,
		MaxDelLen:      edit.DefaultMaxDelLen,
		FragStart:      edit.DefaultFragStart,
		FragEnd:        edit.DefaultFragEnd,
		PrefixWeight:   align.DefaultPrefixWeight,
		BoostThreshold: align.DefaultBoostThreshold,
		MaxPrefix:      align.DefaultMaxPrefix,
		Order:          token.DefaultOrder,
		Compressor:     nil,
		Weights:        nil,
	}
}

// resolve dereferences opts, substituting defaults for nil.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// editOptions projects the bag onto edit.Options.
func (o Options) editOptions() edit.Options {
	return edit.Options{
		Normalize: o.Normalize,
		MaxDelLen: o.MaxDelLen,
		FragStart: o.FragStart,
		FragEnd:   o.FragEnd,
	}
}

// alignOptions projects the bag onto align.Options.
func (o Options) alignOptions() align.Options {
	return align.Options{
		PrefixWeight:   o.PrefixWeight,
		BoostThreshold: o.BoostThreshold,
		MaxPrefix:      o.MaxPrefix,
	}
}

// tokenOptions projects the bag onto token.Options.
func (o Options) tokenOptions() token.Options {
	return token.Options{Order: o.Order}
}

// stemmaOptions projects the bag onto stemma.Options.
func (o Options) stemmaOptions() stemma.Options {
	return stemma.Options{
		Normalize: o.Normalize,
		Weights:   o.Weights,
	}
}
