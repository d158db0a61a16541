// Package stemma: the Birnbaum similarity family.
package stemma

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/align"
	"github.com/katalvlaran/lvlseq/core"
)

// Birnbaum computes the exhaustive Birnbaum similarity: with S the shorter
// and G the longer sequence, every (contiguous window of S, occurrence
// position in G) pair counts one point. Repeated windows of S and repeated
// occurrences in G all count, so a sequence compared with itself scores
// at least len·(len+1)/2 and more when it repeats content.
//
// Contracts:
//   - Symmetric up to the shorter/longer canonicalization; equal lengths
//     keep x as the pattern side.
//   - Disjoint alphabets score 0.
//
// With opts.Normalize the raw count is divided by
// max(Birnbaum(x,x), Birnbaum(y,y)), landing in [0,1].
//
// Errors: core.ErrEmptyInput (wrapped) when either sequence is empty; an
// empty pattern side would make every score vacuously 0.
//
// Complexity: O(s²) windows × O(s·g) counting each, s = len(S), g = len(G).
func Birnbaum[T comparable](x, y []T, opts *Options) (float64, error) {
	o := resolve(opts)
	if len(x) == 0 || len(y) == 0 {
		return 0, fmt.Errorf("stemma: birnbaum needs two non-empty sequences: %w", core.ErrEmptyInput)
	}

	raw := float64(birnbaumRaw(x, y))
	if !o.Normalize {
		return raw, nil
	}

	den := float64(maxInt(birnbaumRaw(x, x), birnbaumRaw(y, y)))

	return raw / den, nil
}

// BirnbaumDist returns the Birnbaum distance
// 1 - Birnbaum(x,y)/Birnbaum(S,S) for S the shorter sequence, clamped at 0.
// A pair can outscore the shorter self-comparison when the longer sequence
// repeats the shared content; the clamp keeps such pairs at distance 0.
//
// Errors: core.ErrEmptyInput (wrapped) when either sequence is empty.
//
// Complexity: as Birnbaum.
func BirnbaumDist[T comparable](x, y []T) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, fmt.Errorf("stemma: birnbaum needs two non-empty sequences: %w", core.ErrEmptyInput)
	}

	shorter := x
	if len(y) < len(x) {
		shorter = y
	}

	d := 1 - float64(birnbaumRaw(x, y))/float64(birnbaumRaw(shorter, shorter))
	if d < 0 {
		d = 0
	}

	return d, nil
}

// birnbaumRaw counts every occurrence in the longer sequence of every
// positional window of the shorter one. Ties on length keep x as the
// pattern side.
func birnbaumRaw[T comparable](x, y []T) int {
	pattern, text := x, y
	if len(y) < len(x) {
		pattern, text = y, x
	}

	total := 0
	for _, window := range core.Subseqs(pattern) {
		// Overlapping occurrences all count: advance one past each hit.
		for from := 0; ; {
			idx := core.FindFrom(text, window, from)
			if idx < 0 {
				break
			}
			total++
			from = idx + 1
		}
	}

	return total
}

// FastBirnbaum approximates Birnbaum from the Ratcliff-Obershelp matching
// blocks of the pair: each block of length b contributes its own window
// count b·(b+1)/2. Shared content split across blocks scores less than in
// the exhaustive form, because windows spanning a block boundary are lost.
//
// Contracts:
//   - FastBirnbaum(x, y) ≤ Birnbaum(x, y); equality on identical inputs.
//   - Symmetric up to the shorter/longer canonicalization.
//
// With opts.Normalize the raw count is divided by
// max(FastBirnbaum(x,x), FastBirnbaum(y,y)).
//
// Errors: core.ErrEmptyInput (wrapped) when either sequence is empty.
//
// Complexity: O(s·g) for the block decomposition.
func FastBirnbaum[T comparable](x, y []T, opts *Options) (float64, error) {
	o := resolve(opts)
	if len(x) == 0 || len(y) == 0 {
		return 0, fmt.Errorf("stemma: birnbaum needs two non-empty sequences: %w", core.ErrEmptyInput)
	}

	raw := float64(fastBirnbaumRaw(x, y))
	if !o.Normalize {
		return raw, nil
	}

	den := float64(maxInt(selfScore(len(x)), selfScore(len(y))))

	return raw / den, nil
}

// FastBirnbaumDist returns 1 - FastBirnbaum(x,y)/(s·(s+1)/2) for s the
// shorter length, clamped at 0. The denominator is the block score of a
// perfect single-block match of the whole shorter sequence.
//
// Errors: core.ErrEmptyInput (wrapped) when either sequence is empty.
//
// Complexity: as FastBirnbaum.
func FastBirnbaumDist[T comparable](x, y []T) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, fmt.Errorf("stemma: birnbaum needs two non-empty sequences: %w", core.ErrEmptyInput)
	}

	shortest := len(x)
	if len(y) < shortest {
		shortest = len(y)
	}

	d := 1 - float64(fastBirnbaumRaw(x, y))/float64(selfScore(shortest))
	if d < 0 {
		d = 0
	}

	return d, nil
}

// fastBirnbaumRaw sums b·(b+1)/2 over the matching-block lengths of the
// pair, shorter sequence as the pattern side. Identical inputs skip the
// decomposition: one block covers everything.
func fastBirnbaumRaw[T comparable](x, y []T) int {
	pattern, text := x, y
	if len(y) < len(x) {
		pattern, text = y, x
	}

	if sequencesEqual(pattern, text) {
		return selfScore(len(pattern))
	}

	total := 0
	for _, b := range align.MatchingBlocks(pattern, text) {
		total += selfScore(b.Size)
	}

	return total
}

// selfScore is the window count of a duplicate-free sequence of length n:
// n·(n+1)/2.
func selfScore(n int) int {
	return n * (n + 1) / 2
}

// sequencesEqual reports element-wise equality.
func sequencesEqual[T comparable](x, y []T) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
