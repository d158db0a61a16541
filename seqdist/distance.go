// Package seqdist - unified dispatch over the metric packages.
package seqdist

import (
	"fmt"

	"github.com/klauspost/compress/flate"

	"github.com/katalvlaran/lvlseq/align"
	"github.com/katalvlaran/lvlseq/core"
	"github.com/katalvlaran/lvlseq/edit"
	"github.com/katalvlaran/lvlseq/ncd"
	"github.com/katalvlaran/lvlseq/stemma"
	"github.com/katalvlaran/lvlseq/token"
)

// Distance computes the distance of one sequence pair under the chosen
// method, forwarding the relevant Options fields to the owning package.
// Similarity-native metrics (Jaro family, Ratcliff-Obershelp,
// ContractingWindow, Jaccard, Sørensen) cross the dispatcher as
// 1−similarity, so every method shares one orientation: 0 means equal,
// larger means further apart.
//
// Contracts:
//   - Results of the bounded methods land in [0,1]; the edit family stays
//     raw unless opts.Normalize is set.
//   - Per-method conventions (empty inputs, symmetry) are documented on
//     the underlying functions and pass through unchanged.
//
// Errors: core.ErrConfig (wrapped) on an out-of-range Method; everything
// the underlying metric returns is forwarded as-is.
//
// Complexity: the chosen metric's own cost plus one switch.
func Distance[T comparable](x, y []T, m Method, opts *Options) (float64, error) {
	o := resolve(opts)

	switch m {
	case Levenshtein:
		eo := o.editOptions()

		return edit.Levenshtein(x, y, &eo)
	case Damerau:
		eo := o.editOptions()

		return edit.Damerau(x, y, &eo)
	case BulkDelete:
		eo := o.editOptions()

		return edit.BulkDelete(x, y, &eo)
	case FragileEnds:
		eo := o.editOptions()

		return edit.FragileEnds(x, y, &eo)
	case Stemmatological:
		eo := o.editOptions()

		return edit.Stemmatological(x, y, &eo)
	case Jaro:
		return align.JaroDist(x, y), nil
	case JaroWinkler:
		ao := o.alignOptions()

		return align.JaroWinklerDist(x, y, &ao)
	case RatcliffObershelp:
		return align.RatcliffObershelpDist(x, y), nil
	case ContractingWindow:
		return align.ContractingWindowDist(x, y), nil
	case Jaccard:
		to := o.tokenOptions()

		return token.JaccardDist(x, y, &to)
	case Sorensen:
		to := o.tokenOptions()

		return token.SorensenDist(x, y, &to)
	case SubseqJaccard:
		return token.SubseqJaccardDist(x, y), nil
	case NCD:
		return ncd.NCD(x, y, o.compressor())
	case ArithNCD:
		return ncd.ArithNCD(x, y), nil
	case EntropyNCD:
		return ncd.EntropyNCD(x, y), nil
	case Birnbaum:
		return stemma.BirnbaumDist(x, y)
	case FastBirnbaum:
		return stemma.FastBirnbaumDist(x, y)
	case Composite:
		so := o.stemmaOptions()

		return stemma.Composite(x, y, &so)
	default:
		return 0, fmt.Errorf("seqdist: unknown method %s: %w", m, core.ErrConfig)
	}
}

// compressor returns the configured codec, or the default Flate one.
func (o Options) compressor() ncd.Compressor {
	if o.Compressor != nil {
		return o.Compressor
	}

	return ncd.Flate(flate.DefaultCompression)
}

// Mean computes the arithmetic mean of Distance over every unordered pair
// of seqs. Two sequences reduce to a single Distance call; n sequences
// average n·(n-1)/2 pairs, so asymmetric metrics contribute each pair once
// in slice order.
//
// Errors:
//   - core.ErrEmptyInput (wrapped) when fewer than two sequences arrive;
//     there is no pair to measure.
//   - The first failing pairwise call aborts the mean and is forwarded.
//
// Complexity: n·(n-1)/2 metric calls.
func Mean[T comparable](seqs [][]T, m Method, opts *Options) (float64, error) {
	if len(seqs) < 2 {
		return 0, fmt.Errorf("seqdist: mean needs at least 2 sequences, got %d: %w", len(seqs), core.ErrEmptyInput)
	}

	var (
		sum   float64
		pairs int
	)
	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			d, err := Distance(seqs[i], seqs[j], m, opts)
			if err != nil {
				return 0, fmt.Errorf("seqdist: pair (%d,%d): %w", i, j, err)
			}
			sum += d
			pairs++
		}
	}

	return sum / float64(pairs), nil
}
