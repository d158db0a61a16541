package ncd_test

import (
	"errors"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/core"
	"github.com/katalvlaran/lvlseq/ncd"
)

// failingCompressor exercises the error pass-through.
type failingCompressor struct{ err error }

func (f failingCompressor) CompressedSize([]byte) (int, error) { return 0, f.err }

// repeatPattern builds a sequence by cycling a small motif, the kind of
// input a dictionary codec bites into.
func repeatPattern(motif []int, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = motif[i%len(motif)]
	}

	return out
}

// TestNCD_EqualShortCircuits verifies equal inputs return exactly 0, codec
// overhead notwithstanding.
func TestNCD_EqualShortCircuits(t *testing.T) {
	x := repeatPattern([]int{1, 2, 3}, 30)

	for name, c := range map[string]ncd.Compressor{
		"flate":  ncd.Flate(flate.DefaultCompression),
		"snappy": ncd.Snappy(),
	} {
		dist, err := ncd.NCD(x, x, c)
		require.NoError(t, err, "%s must not fail", name)
		assert.Equal(t, 0.0, dist, "%s: equal sequences are at distance 0", name)
	}

	dist, err := ncd.NCD([]int{}, []int{}, ncd.Snappy())
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "two empties are equal")
}

// TestNCD_Discriminates checks that a mutated copy stays closer than an
// unrelated sequence under Flate.
func TestNCD_Discriminates(t *testing.T) {
	var (
		c        = ncd.Flate(flate.BestCompression)
		original = repeatPattern([]int{1, 2, 3, 4, 5, 6, 7}, 210)
		mutated  = repeatPattern([]int{1, 2, 3, 4, 5, 6, 7}, 210)
	)
	for i := 20; i < len(mutated); i += 40 {
		mutated[i] = 99
	}
	unrelated := make([]int, 210)
	for i := range unrelated {
		unrelated[i] = (i*i + 31) % 97
	}

	near, err := ncd.NCD(original, mutated, c)
	require.NoError(t, err)

	far, err := ncd.NCD(original, unrelated, c)
	require.NoError(t, err)

	assert.Less(t, near, far, "a lightly mutated copy must be closer than unrelated data")
	assert.GreaterOrEqual(t, near, 0.0, "distances never go negative")
}

// TestNCD_Symmetric verifies the canonical serialization keeps both
// argument orders identical.
func TestNCD_Symmetric(t *testing.T) {
	var (
		c = ncd.Flate(flate.DefaultCompression)
		x = repeatPattern([]int{3, 1, 4, 1, 5}, 100)
		y = repeatPattern([]int{2, 7, 1, 8}, 120)
	)

	xy, err := ncd.NCD(x, y, c)
	require.NoError(t, err)
	yx, err := ncd.NCD(y, x, c)
	require.NoError(t, err)

	assert.Equal(t, xy, yx, "NCD must not depend on argument order")
}

// TestNCD_ConfigAndErrors covers the nil codec and the pass-through.
func TestNCD_ConfigAndErrors(t *testing.T) {
	_, err := ncd.NCD([]int{1}, []int{2}, nil)
	assert.ErrorIs(t, err, core.ErrConfig, "nil compressor must error")

	sentinel := errors.New("backend gone")
	_, err = ncd.NCD([]int{1}, []int{2}, failingCompressor{err: sentinel})
	assert.ErrorIs(t, err, sentinel, "codec failures pass through")
}

// TestArithNCD_Canonical pins the exact coded sizes of the reference pair:
// C("abc")=3, C("bcde")=6, concat orders 16 and 11 bits. Runes lay out by
// their decimal %v rendering, so 'd' ("100") ties ahead of 'a' ("97").
func TestArithNCD_Canonical(t *testing.T) {
	got := ncd.ArithNCD([]rune("abc"), []rune("bcde"))
	assert.InDelta(t, 4.0/3.0, got, 1e-12, "(11-3)/6 under the joint model")
}

// TestArithNCD_Degenerates covers equality, symmetry and empty inputs.
func TestArithNCD_Degenerates(t *testing.T) {
	assert.Equal(t, 0.0, ncd.ArithNCD([]rune("abab"), []rune("abab")), "equal sequences are at distance 0")
	assert.Equal(t, 0.0, ncd.ArithNCD([]int{}, []int{}), "two empties are equal")

	assert.Equal(t,
		ncd.ArithNCD([]rune("abc"), []rune("bcde")),
		ncd.ArithNCD([]rune("bcde"), []rune("abc")),
		"the canonical model layout keeps both orders identical")

	// With x empty, C(x)=0 and both concats code y alone: (C(y)-0)/C(y).
	assert.Equal(t, 1.0, ncd.ArithNCD([]rune(""), []rune("ab")), "one empty side maximizes the ratio")
}

// TestEntropyNCD_Canonical pins the reference value for "abc" vs "bcde".
func TestEntropyNCD_Canonical(t *testing.T) {
	got := ncd.EntropyNCD([]rune("abc"), []rune("bcde"))
	assert.InDelta(t, 0.21698794996929216, got, 1e-9,
		"H(abc)=log2 3, H(bcde)=2, pooled H=2.23593")
}

// TestEntropyNCD_RangeAndDegenerates covers the closed upper end and the
// empty conventions.
func TestEntropyNCD_RangeAndDegenerates(t *testing.T) {
	assert.Equal(t, 0.0, ncd.EntropyNCD([]rune("abc"), []rune("abc")), "equal sequences are at distance 0")

	got := ncd.EntropyNCD([]rune("aaaa"), []rune("bbbb"))
	assert.InDelta(t, 1.0, got, 1e-12, "two constant runs of equal length land on the top")

	got = ncd.EntropyNCD([]rune(""), []rune("bcde"))
	assert.InDelta(t, 2.0/3.0, got, 1e-12, "H(y)/(1+H(y)) with H=2")

	assert.Equal(t,
		ncd.EntropyNCD([]rune("abc"), []rune("bcde")),
		ncd.EntropyNCD([]rune("bcde"), []rune("abc")),
		"entropy pooling is order-blind")
}

// TestNCDFamily_GenericElements runs the family over a struct element type.
func TestNCDFamily_GenericElements(t *testing.T) {
	type reading struct {
		Witness string
		Verse   int
	}

	x := []reading{{"A", 1}, {"A", 2}, {"A", 1}, {"A", 2}}
	y := []reading{{"B", 9}, {"B", 8}, {"B", 7}, {"B", 6}}

	assert.Equal(t, 0.0, ncd.EntropyNCD(x, x), "equal struct sequences are at distance 0")
	assert.Greater(t, ncd.EntropyNCD(x, y), 0.0, "disjoint struct sequences are apart")

	dist, err := ncd.NCD(x, y, ncd.Snappy())
	require.NoError(t, err)
	assert.Greater(t, dist, 0.0, "snappy sees two alphabets")
}
