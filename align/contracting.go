// Package align: the moving contracting window pattern similarity.
package align

import (
	"math"

	"github.com/katalvlaran/lvlseq/core"
)

// ContractingWindow computes a similarity by repeatedly carving the longest
// window of the first sequence that still occurs somewhere in the second.
//
// Both sequences start as a single field. Each round slides windows of
// decreasing length over the first remaining field of x; the first window
// found in any field of y (fields in order, leftmost occurrence) is removed
// from both sides, splitting the fields it came from, and contributes
// (2·length)² to a running sum. A round in which the first field yields no
// match ends the procedure. The similarity is √sum/(len(x)+len(y)).
//
// Contracts:
//   - Result in [0,1]; equal sequences score 1; disjoint alphabets score 0.
//   - Two empty sequences score 1 by convention; one empty scores 0.
//   - Not symmetric: windows are always drawn from x.
//
// Complexity: O(len(x)³·len(y)) worst case; matched content shrinks the
// fields quickly on natural data.
func ContractingWindow[T comparable](x, y []T) float64 {
	var (
		la = len(x)
		lb = len(y)
	)
	if la == 0 && lb == 0 {
		return 1
	}

	var (
		fx   = [][]T{x}
		fy   = [][]T{y}
		ssnc float64
	)
	for len(fx) > 0 && len(fy) > 0 {
		fx, fy, ssnc = contractRound(fx, fy, ssnc)
	}

	return math.Sqrt(ssnc) / float64(la+lb)
}

// ContractingWindowDist returns 1 - ContractingWindow(x, y).
func ContractingWindowDist[T comparable](x, y []T) float64 {
	return 1 - ContractingWindow(x, y)
}

// contractRound processes the first field of fx: windows by length
// descending, start ascending, matched against fy fields in order with
// leftmost occurrence. On a match both fields are split around the window
// and the squared score grows; with no match it returns empty field lists,
// which terminates the caller's loop.
func contractRound[T comparable](fx, fy [][]T, ssnc float64) ([][]T, [][]T, float64) {
	field := fx[0]

	var (
		window []T
		j      int
		side   float64
	)
	for length := len(field); length >= 1; length-- {
		for i := 0; i+length <= len(field); i++ {
			window = field[i : i+length]
			for idx, candidate := range fy {
				j = core.Find(candidate, window)
				if j < 0 {
					continue
				}

				side = float64(2 * length)

				return splitField(fx, 0, field[:i], field[i+length:]),
					splitField(fy, idx, candidate[:j], candidate[j+length:]),
					ssnc + side*side
			}
		}
	}

	return nil, nil, ssnc
}

// splitField replaces fields[idx] with the non-empty left/right remainders
// of a window removal, preserving field order.
func splitField[T comparable](fields [][]T, idx int, left, right []T) [][]T {
	out := make([][]T, 0, len(fields)+1)
	out = append(out, fields[:idx]...)
	if len(left) > 0 {
		out = append(out, left)
	}
	if len(right) > 0 {
		out = append(out, right)
	}
	out = append(out, fields[idx+1:]...)

	return out
}
