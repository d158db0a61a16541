// Package align: Ratcliff-Obershelp similarity and matching blocks.
package align

import "sort"

// MatchingBlocks decomposes the shared content of x and y into maximal runs
// of equal elements, the Ratcliff-Obershelp way: find the longest common
// contiguous run (ties resolved leftmost in x, then leftmost in y), then
// repeat on the unmatched stretches to its left and right. The recursion is
// driven by an explicit work list, so deeply fragmented pairs cannot
// overflow the stack.
//
// Contracts:
//   - Blocks are returned sorted by Block.A, non-overlapping in both
//     sequences, with adjacent runs coalesced; every Size ≥ 1.
//   - Deterministic for a given input pair.
//
// Complexity: O(len(x)·len(y)) time worst case, O(len(y)) index memory.
func MatchingBlocks[T comparable](x, y []T) []Block {
	// Index each element's positions in y, ascending.
	positions := make(map[T][]int, len(y))
	for j, e := range y {
		positions[e] = append(positions[e], j)
	}

	type span struct {
		alo, ahi int
		blo, bhi int
	}

	var (
		work   = []span{{0, len(x), 0, len(y)}}
		blocks []Block
		s      span
		best   Block
	)
	for len(work) > 0 {
		s, work = work[len(work)-1], work[:len(work)-1]

		best = longestMatch(x, positions, s.alo, s.ahi, s.blo, s.bhi)
		if best.Size == 0 {
			continue
		}
		blocks = append(blocks, best)

		// Unmatched stretches on both sides still may share runs.
		work = append(work,
			span{s.alo, best.A, s.blo, best.B},
			span{best.A + best.Size, s.ahi, best.B + best.Size, s.bhi},
		)
	}

	sort.Slice(blocks, func(i, j int) bool { return blocks[i].A < blocks[j].A })

	return coalesce(blocks)
}

// longestMatch finds the longest run of equal elements inside the given
// rectangle. Runs are discovered in ascending x-position then ascending
// y-position order and only a strictly longer run replaces the incumbent,
// which yields the leftmost-in-x, then leftmost-in-y tie-break.
func longestMatch[T comparable](x []T, positions map[T][]int, alo, ahi, blo, bhi int) Block {
	var (
		best  = Block{A: alo, B: blo}
		runs  = map[int]int{} // y-end -> run length, previous row
		fresh map[int]int
		k     int
	)
	for i := alo; i < ahi; i++ {
		fresh = map[int]int{}
		for _, j := range positions[x[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k = runs[j-1] + 1
			fresh[j] = k
			if k > best.Size {
				best = Block{A: i - k + 1, B: j - k + 1, Size: k}
			}
		}
		runs = fresh
	}

	return best
}

// coalesce merges blocks that touch in both sequences into single runs.
func coalesce(blocks []Block) []Block {
	if len(blocks) == 0 {
		return blocks
	}

	merged := blocks[:1]
	for _, b := range blocks[1:] {
		last := &merged[len(merged)-1]
		if last.A+last.Size == b.A && last.B+last.Size == b.B {
			last.Size += b.Size
		} else {
			merged = append(merged, b)
		}
	}

	return merged
}

// RatcliffObershelp computes the Ratcliff-Obershelp similarity
// 2·M/(len(x)+len(y)), where M is the total length of the matching blocks.
//
// Contracts:
//   - Result in [0,1]; equal sequences score 1. Not guaranteed symmetric:
//     the leftmost tie-break follows x, so swapping arguments can change
//     how ambiguous overlaps split.
//   - Two empty sequences score 1 by convention; one empty scores 0.
//
// Complexity: as MatchingBlocks.
func RatcliffObershelp[T comparable](x, y []T) float64 {
	total := len(x) + len(y)
	if total == 0 {
		return 1
	}

	matched := 0
	for _, b := range MatchingBlocks(x, y) {
		matched += b.Size
	}

	return 2 * float64(matched) / float64(total)
}

// RatcliffObershelpDist returns 1 - RatcliffObershelp(x, y).
func RatcliffObershelpDist[T comparable](x, y []T) float64 {
	return 1 - RatcliffObershelp(x, y)
}
