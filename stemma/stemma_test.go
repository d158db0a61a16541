package stemma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/core"
	"github.com/katalvlaran/lvlseq/stemma"
)

// The four canonical witness pairs used across the library's tests.
var (
	pairKitten  = [2][]rune{[]rune("kitten"), []rune("sitting")}
	pairEqual   = [2][]int{{1, 2, 3}, {1, 2, 3}}
	pairShuffle = [2][]int{{1, 2, 3, 4, 5}, {1, 2, 4, 3, 6, 7}}
	pairDisjoint = [2][]string{
		{"1", "2", "3"},
		{"a", "b", "c", "d"},
	}
)

// TestBirnbaum_Canonical pins the exhaustive counts on the canonical pairs.
func TestBirnbaum_Canonical(t *testing.T) {
	got, err := stemma.Birnbaum(pairKitten[0], pairKitten[1], nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got, "7 shared 1-grams + 2 shared 2-grams + itt")

	got, err = stemma.Birnbaum(pairEqual[0], pairEqual[1], nil)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got, "3·4/2 windows of an identical triple")

	got, err = stemma.Birnbaum(pairShuffle[0], pairShuffle[1], nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	got, err = stemma.Birnbaum(pairDisjoint[0], pairDisjoint[1], nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "disjoint alphabets share no windows")
}

// TestBirnbaum_Normalized verifies division by the larger self-similarity.
func TestBirnbaum_Normalized(t *testing.T) {
	opts := stemma.DefaultOptions()
	opts.Normalize = true

	got, err := stemma.Birnbaum(pairKitten[0], pairKitten[1], &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.3125, got, 1e-9, "10 / self(sitting) = 10/32")

	got, err = stemma.Birnbaum(pairEqual[0], pairEqual[1], &opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = stemma.Birnbaum(pairShuffle[0], pairShuffle[1], &opts)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/21.0, got, 1e-9, "self of the longer, duplicate-free side")

	got, err = stemma.Birnbaum(pairDisjoint[0], pairDisjoint[1], &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestBirnbaumDist_Canonical pins the distance form against the shorter
// sequence's self-similarity.
func TestBirnbaumDist_Canonical(t *testing.T) {
	got, err := stemma.BirnbaumDist(pairKitten[0], pairKitten[1])
	require.NoError(t, err)
	assert.InDelta(t, 13.0/23.0, got, 1e-9, "1 - 10/self(kitten)")

	got, err = stemma.BirnbaumDist(pairEqual[0], pairEqual[1])
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = stemma.BirnbaumDist(pairShuffle[0], pairShuffle[1])
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, got, 1e-9, "1 - 5/15")

	got, err = stemma.BirnbaumDist(pairDisjoint[0], pairDisjoint[1])
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

// TestBirnbaumDist_Clamped exercises the ≥ 0 clamp: the longer side
// repeats the shared content, outscoring the shorter self-comparison.
func TestBirnbaumDist_Clamped(t *testing.T) {
	got, err := stemma.BirnbaumDist([]rune("ab"), []rune("ababab"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "repetition-heavy pairs clamp to 0")
}

// TestFastBirnbaum_Canonical pins the matching-block approximation.
func TestFastBirnbaum_Canonical(t *testing.T) {
	got, err := stemma.FastBirnbaum(pairKitten[0], pairKitten[1], nil)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got, "blocks itt (6) + n (1)")

	got, err = stemma.FastBirnbaum(pairEqual[0], pairEqual[1], nil)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	got, err = stemma.FastBirnbaum(pairShuffle[0], pairShuffle[1], nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got, "blocks 1,2 (3) + 3 (1)")

	got, err = stemma.FastBirnbaum(pairDisjoint[0], pairDisjoint[1], nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

// TestFastBirnbaum_Normalized verifies the n·(n+1)/2 self-score divisor.
func TestFastBirnbaum_Normalized(t *testing.T) {
	opts := stemma.DefaultOptions()
	opts.Normalize = true

	got, err := stemma.FastBirnbaum(pairKitten[0], pairKitten[1], &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got, 1e-9, "7 / (7·8/2)")

	got, err = stemma.FastBirnbaum(pairShuffle[0], pairShuffle[1], &opts)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/21.0, got, 1e-9)
}

// TestFastBirnbaumDist_Canonical pins the fast distance form.
func TestFastBirnbaumDist_Canonical(t *testing.T) {
	got, err := stemma.FastBirnbaumDist(pairKitten[0], pairKitten[1])
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, got, 1e-9, "1 - 7/21")

	got, err = stemma.FastBirnbaumDist(pairEqual[0], pairEqual[1])
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = stemma.FastBirnbaumDist(pairShuffle[0], pairShuffle[1])
	require.NoError(t, err)
	assert.InDelta(t, 11.0/15.0, got, 1e-9, "1 - 4/15")

	got, err = stemma.FastBirnbaumDist(pairDisjoint[0], pairDisjoint[1])
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

// TestBirnbaum_FastNeverExceedsExhaustive checks the documented ordering
// on a batch of mixed pairs.
func TestBirnbaum_FastNeverExceedsExhaustive(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"gumbo", "gambol"},
		{"abcabc", "abc"},
		{"stemma", "stemmatics"},
	}
	for _, p := range pairs {
		exact, err := stemma.Birnbaum([]rune(p[0]), []rune(p[1]), nil)
		require.NoError(t, err)

		fast, err := stemma.FastBirnbaum([]rune(p[0]), []rune(p[1]), nil)
		require.NoError(t, err)
		assert.LessOrEqual(t, fast, exact, "fast must lower-bound exhaustive on %q vs %q", p[0], p[1])
	}
}

// TestBirnbaum_EmptyInput verifies the family rejects empty sequences.
func TestBirnbaum_EmptyInput(t *testing.T) {
	_, err := stemma.Birnbaum([]rune(""), []rune("abc"), nil)
	assert.ErrorIs(t, err, core.ErrEmptyInput)

	_, err = stemma.BirnbaumDist([]rune("abc"), []rune(""))
	assert.ErrorIs(t, err, core.ErrEmptyInput)

	_, err = stemma.FastBirnbaum([]rune(""), []rune(""), nil)
	assert.ErrorIs(t, err, core.ErrEmptyInput)

	_, err = stemma.FastBirnbaumDist([]rune(""), []rune("abc"))
	assert.ErrorIs(t, err, core.ErrEmptyInput)
}

// TestStemmatological_Profiles pins the three wrapper profiles on the
// canonical pairs.
func TestStemmatological_Profiles(t *testing.T) {
	raw, err := stemma.Stemmatological(pairKitten[0], pairKitten[1])
	require.NoError(t, err)
	assert.Equal(t, 3.0, raw)

	norm, err := stemma.StemmatologicalNorm(pairKitten[0], pairKitten[1])
	require.NoError(t, err)
	assert.InDelta(t, 3.0/7.0, norm, 1e-9)

	norm, err = stemma.StemmatologicalNorm(pairEqual[0], pairEqual[1])
	require.NoError(t, err)
	assert.Equal(t, 0.0, norm)

	norm, err = stemma.StemmatologicalNorm(pairShuffle[0], pairShuffle[1])
	require.NoError(t, err)
	assert.InDelta(t, 0.5, norm, 1e-9)

	wide, err := stemma.Stemmatological2030(pairKitten[0], pairKitten[1])
	require.NoError(t, err)
	assert.InDelta(t, 3.0/7.0, wide, 1e-9, "wider fragile regions leave this pair unchanged")

	wide, err = stemma.Stemmatological2030(pairDisjoint[0], pairDisjoint[1])
	require.NoError(t, err)
	assert.Equal(t, 1.0, wide)
}

// TestComponent_Names pins the enum's canonical names and the default
// weight vector next to the wrapper functions that share the domain
// vocabulary, so the two namespaces stay distinct.
func TestComponent_Names(t *testing.T) {
	assert.Equal(t, "stemmatological", stemma.ComponentStemmatological.String())
	assert.Equal(t, "jaro_winkler", stemma.ComponentJaroWinkler.String())
	assert.Equal(t, "jaccard", stemma.ComponentJaccard.String())
	assert.Equal(t, "levenshtein", stemma.ComponentLevenshtein.String())
	assert.Equal(t, "damerau", stemma.ComponentDamerau.String())
	assert.Equal(t, "component(99)", stemma.Component(99).String())

	weights := stemma.DefaultWeights()
	require.Len(t, weights, 3)
	assert.Equal(t, stemma.ComponentStemmatological, weights[0].Component)
	assert.Equal(t, stemma.ComponentJaroWinkler, weights[1].Component)
	assert.Equal(t, stemma.ComponentJaccard, weights[2].Component)

	// The constant and the function of the same concern must resolve
	// independently: one names a blend component, one computes.
	raw, err := stemma.Stemmatological(pairKitten[0], pairKitten[1])
	require.NoError(t, err)
	assert.Equal(t, 3.0, raw)
}

// TestComposite_DefaultWeights pins the equal-weight default blend.
func TestComposite_DefaultWeights(t *testing.T) {
	got, err := stemma.Composite(pairKitten[0], pairKitten[1], nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.46084656084656084, got, 1e-9,
		"(3/7 + jaroWinklerDist + 0.7)/3")

	got, err = stemma.Composite(pairEqual[0], pairEqual[1], nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "identical sequences blend to 0")

	got, err = stemma.Composite([]int{1, 1, 2}, []int{1, 1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "duplicates must not push identical pairs above 0")

	got, err = stemma.Composite(pairDisjoint[0], pairDisjoint[1], nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "disjoint alphabets max out every component")

	got, err = stemma.Composite([]rune(""), []rune(""), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "both-empty follows the components' conventions")
}

// TestComposite_CustomWeights blends two explicit components.
func TestComposite_CustomWeights(t *testing.T) {
	opts := stemma.DefaultOptions()
	opts.Weights = []stemma.Weight{
		{Component: stemma.ComponentLevenshtein, Value: 0.5},
		{Component: stemma.ComponentDamerau, Value: 0.5},
	}

	// ab→ba: Levenshtein 2/2, Damerau 1/2.
	got, err := stemma.Composite([]rune("ab"), []rune("ba"), &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, got, 1e-9, "0.5·1 + 0.5·0.5")
}

// TestComposite_WeightValidation walks the rejection paths.
func TestComposite_WeightValidation(t *testing.T) {
	cases := []struct {
		name    string
		weights []stemma.Weight
	}{
		{"empty vector", []stemma.Weight{}},
		{"unknown component", []stemma.Weight{{Component: stemma.Component(99), Value: 1}}},
		{"repeated component", []stemma.Weight{
			{Component: stemma.ComponentJaccard, Value: 0.5},
			{Component: stemma.ComponentJaccard, Value: 0.5},
		}},
		{"negative weight", []stemma.Weight{
			{Component: stemma.ComponentJaccard, Value: -0.5},
			{Component: stemma.ComponentJaroWinkler, Value: 1.5},
		}},
		{"sum below one", []stemma.Weight{{Component: stemma.ComponentJaccard, Value: 0.9}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := stemma.DefaultOptions()
			opts.Weights = tc.weights

			_, err := stemma.Composite([]rune("ab"), []rune("ba"), &opts)
			assert.ErrorIs(t, err, core.ErrConfig)
		})
	}
}

// TestComposite_Deterministic confirms the 1e-9 rounding makes repeated
// runs bit-identical.
func TestComposite_Deterministic(t *testing.T) {
	first, err := stemma.Composite(pairKitten[0], pairKitten[1], nil)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := stemma.Composite(pairKitten[0], pairKitten[1], nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
