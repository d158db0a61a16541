// Package core: n-gram extraction and 64-bit window keys.
//
// Multi-element windows cannot serve as Go map keys, so set/multiset logic
// over n-grams uses WindowKey: an xxhash64 over a length-prefixed rendering
// of the window's elements. Two distinct windows colliding on a key is a
// documented approximation (probability ≈ 2⁻⁶⁴ per pair), not an error.
package core

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// NGrams returns all contiguous windows of exactly order elements, left to
// right. Windows alias seq's backing array. A sequence shorter than order
// yields an empty (non-nil) result.
//
// Errors: ErrConfig (wrapped) when order < 1.
//
// Complexity: O(n) windows, O(1) extra memory per window.
func NGrams[T comparable](seq []T, order int) ([][]T, error) {
	if order < 1 {
		return nil, fmt.Errorf("core: n-gram order %d must be ≥ 1: %w", order, ErrConfig)
	}

	if order > len(seq) {
		return [][]T{}, nil
	}
	out := make([][]T, 0, len(seq)-order+1)
	for start := 0; start+order <= len(seq); start++ {
		out = append(out, seq[start:start+order])
	}

	return out, nil
}

// PaddedNGrams returns the windows of order elements over seq with order-1
// copies of pad prepended and appended, so every original element appears in
// exactly order windows. The padded buffer is freshly allocated; returned
// windows alias it, not seq.
//
// Errors: ErrConfig (wrapped) when order < 1.
func PaddedNGrams[T comparable](seq []T, order int, pad T) ([][]T, error) {
	if order < 1 {
		return nil, fmt.Errorf("core: n-gram order %d must be ≥ 1: %w", order, ErrConfig)
	}

	padded := make([]T, 0, len(seq)+2*(order-1))
	for i := 0; i < order-1; i++ {
		padded = append(padded, pad)
	}
	padded = append(padded, seq...)
	for i := 0; i < order-1; i++ {
		padded = append(padded, pad)
	}

	return NGrams(padded, order)
}

// WindowKey hashes a window of elements into a stable 64-bit key.
// Each element is rendered with %v and framed by a uvarint length prefix, so
// ("ab","c") and ("a","bc") key differently. The key is deterministic within
// a process and across processes for types whose %v form is stable.
//
// Complexity: O(total rendered bytes).
func WindowKey[T comparable](win []T) uint64 {
	var (
		digest  = xxhash.New()
		scratch [binary.MaxVarintLen64]byte
	)
	for _, e := range win {
		rendered := fmt.Sprintf("%v", e)
		n := binary.PutUvarint(scratch[:], uint64(len(rendered)))
		_, _ = digest.Write(scratch[:n])
		_, _ = digest.WriteString(rendered)
	}

	return digest.Sum64()
}

// WindowCounts builds the multiset of order-length windows of seq, keyed by
// WindowKey. Use Counts for order 1 when exact (collision-free) keys matter.
//
// Errors: ErrConfig (wrapped) when order < 1.
//
// Complexity: O(n·order) hashing time, O(k) space for k distinct windows.
func WindowCounts[T comparable](seq []T, order int) (map[uint64]int, error) {
	wins, err := NGrams(seq, order)
	if err != nil {
		return nil, err
	}

	counts := make(map[uint64]int, len(wins))
	for _, w := range wins {
		counts[WindowKey(w)]++
	}

	return counts, nil
}
