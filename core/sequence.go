// Package core: generic sequence scanning helpers shared by the metric packages.
package core

// Find returns the index of the leftmost occurrence of sub inside seq,
// or -1 when sub never occurs. An empty sub matches at index 0.
//
// Complexity: O(len(seq)·len(sub)) worst case; the expected cost on natural
// data is far lower because mismatches are detected on the first element.
func Find[T comparable](seq, sub []T) int {
	// A window longer than the sequence cannot match anywhere.
	if len(sub) > len(seq) {
		return -1
	}

	var (
		last = len(seq) - len(sub) // final candidate start index
		i    int                   // candidate start index
		j    int                   // offset inside sub
	)
	for i = 0; i <= last; i++ {
		for j = 0; j < len(sub); j++ {
			if seq[i+j] != sub[j] {
				break
			}
		}
		if j == len(sub) {
			return i
		}
	}

	return -1
}

// FindFrom behaves like Find but starts scanning at index from (clamped to 0).
// It exists so callers can enumerate successive occurrences without reslicing.
func FindFrom[T comparable](seq, sub []T, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(seq) {
		return -1
	}
	idx := Find(seq[from:], sub)
	if idx < 0 {
		return -1
	}

	return from + idx
}

// Subseqs enumerates every contiguous non-empty window of seq exactly once,
// ordered by window length ascending and start position ascending within a
// length. Windows alias the backing array of seq; callers must not mutate.
//
// Contracts:
//   - len(result) == n·(n+1)/2 for n = len(seq).
//   - Duplicate contents are kept (windows are positional, not distinct).
//
// Complexity: O(n²) windows, O(1) extra memory per window (aliasing slices).
func Subseqs[T comparable](seq []T) [][]T {
	var (
		n   = len(seq)
		out = make([][]T, 0, n*(n+1)/2)
	)
	for length := 1; length <= n; length++ {
		for start := 0; start+length <= n; start++ {
			out = append(out, seq[start:start+length])
		}
	}

	return out
}

// Counts builds the element multiset of seq as a map from element to its
// number of occurrences. Exact (no hashing) because single elements are
// directly usable as map keys.
//
// Complexity: O(n) time, O(k) space for k distinct elements.
func Counts[T comparable](seq []T) map[T]int {
	counts := make(map[T]int, len(seq))
	for _, e := range seq {
		counts[e]++
	}

	return counts
}
