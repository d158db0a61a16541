// Package ncd: the codec-backed distance and the shared serialization.
package ncd

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlseq/core"
)

// NCD computes the normalized compression distance of x and y under the
// injected codec.
//
// Elements are serialized as uvarint ranks over the joint alphabet of the
// pair (see doc.go), then x, y and both concatenation orders go through
// c.CompressedSize. The distance is
//
//	(min(C(x·y), C(y·x)) - min(C(x), C(y))) / max(C(x), C(y))
//
// Contracts:
//   - Symmetric in x and y; equal sequences return exactly 0.
//   - Usually in [0,1]; small inputs can exceed 1 (codec overhead).
//   - max C = 0 → 0.
//
// Errors:
//   - core.ErrConfig if c is nil.
//   - Codec errors pass through unwrapped.
//
// Complexity: four codec runs over O(len(x)+len(y)) bytes.
func NCD[T comparable](x, y []T, c Compressor) (float64, error) {
	if c == nil {
		return 0, fmt.Errorf("ncd: nil compressor: %w", core.ErrConfig)
	}
	if sequencesEqual(x, y) {
		return 0, nil
	}

	ranks := jointRanks(x, y)

	cx, err := c.CompressedSize(serialize(ranks, x))
	if err != nil {
		return 0, err
	}

	cy, err := c.CompressedSize(serialize(ranks, y))
	if err != nil {
		return 0, err
	}

	cxy, err := c.CompressedSize(serialize(ranks, x, y))
	if err != nil {
		return 0, err
	}

	cyx, err := c.CompressedSize(serialize(ranks, y, x))
	if err != nil {
		return 0, err
	}

	var (
		concat  = minInt(cxy, cyx)
		smaller = minInt(cx, cy)
		larger  = maxInt(cx, cy)
	)
	if larger == 0 {
		return 0, nil
	}

	return float64(concat-smaller) / float64(larger), nil
}

// jointRanks assigns every distinct element of the pair a rank, ordered by
// the element's %v rendering. The ordering is canonical per pair, so both
// argument orders serialize identically. Renders are assumed distinct per
// element; colliding renders share nothing but their neighborhood in the
// rank order.
func jointRanks[T comparable](x, y []T) map[T]uint64 {
	type rendered struct {
		elem T
		form string
	}

	var (
		items []rendered
		seen  = make(map[T]struct{}, len(x)+len(y))
	)
	for _, seq := range [][]T{x, y} {
		for _, e := range seq {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			items = append(items, rendered{elem: e, form: fmt.Sprintf("%v", e)})
		}
	}

	// Stable keeps first-appearance order between colliding renders.
	sort.SliceStable(items, func(i, j int) bool { return items[i].form < items[j].form })

	ranks := make(map[T]uint64, len(items))
	for i, it := range items {
		ranks[it.elem] = uint64(i)
	}

	return ranks
}

// serialize emits the uvarint rank of every element of every sequence, in
// order, as one byte stream.
func serialize[T comparable](ranks map[T]uint64, seqs ...[]T) []byte {
	total := 0
	for _, seq := range seqs {
		total += len(seq)
	}

	var (
		out = make([]byte, 0, total)
		buf [binary.MaxVarintLen64]byte
	)
	for _, seq := range seqs {
		for _, e := range seq {
			n := binary.PutUvarint(buf[:], ranks[e])
			out = append(out, buf[:n]...)
		}
	}

	return out
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

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
