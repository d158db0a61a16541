// Package stemma provides the composite scores used in stemmatics: the
// Birnbaum similarity family, the stemmatological distance wrappers and a
// configurable weighted blend of the library's normalized distances.
//
// 🚀 What is a composite score?
//
//	Single metrics see one kind of difference: edit distances count
//	operations, coefficients count shared content, alignment scores look
//	at positions. Relating manuscript witnesses needs several views at
//	once, so this package layers them:
//	  • Birnbaum / FastBirnbaum — how much of the shorter witness's
//	    contiguous content recurs in the longer one
//	  • Stemmatological wrappers — the edit-distance variant tuned for
//	    scribal damage, with ready-made normalized and 20/30 profiles
//	  • Composite — a weighted mean over normalized component distances
//
// ✨ Key features:
//   - exhaustive and matching-block ("fast") Birnbaum variants with
//     matching distance forms
//   - fixed, documented default component subset for Composite
//     (stemmatological + Jaro-Winkler + Jaccard, equally weighted)
//   - caller-supplied weight vectors, validated up front
//   - generic element type: works on []rune, []string, []int, any
//     comparable T
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlseq/stemma"
//
//	dist, err := stemma.BirnbaumDist([]rune("kitten"), []rune("sitting"))
//	// dist == 13/23, err == nil
//
//	blend, err := stemma.Composite([]rune("kitten"), []rune("sitting"), nil)
//	// equal-weight mean of the default component distances
//
// Performance:
//
//   - Birnbaum: O(s²·s·g) worst case for s = shorter, g = longer length
//   - FastBirnbaum: one matching-block decomposition, O(s·g)
//   - Composite: the sum of its components' costs
//
// See example_test.go for worked runs.
package stemma
