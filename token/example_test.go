package token_test

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/token"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleJaccard
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Compare "kitten" and "sitting" first element by element, then over
//	bigram windows. The bigram view is stricter: shared letters only
//	count when their neighborhood survives too.
//
// Options:
//   - Order = 1 (default), then Order = 2
//
// Use case:
//
//	Order tuning when single shared elements are too forgiving, e.g.
//	comparing tokenized readings that reuse a small alphabet.
//
// Complexity: O((len(x)+len(y))·Order) time
func ExampleJaccard() {
	x, y := []rune("kitten"), []rune("sitting")

	elems, err := token.Jaccard(x, y, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := token.DefaultOptions()
	opts.Order = 2
	bigrams, err := token.Jaccard(x, y, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("elements=%.4f\nbigrams=%.4f\n", elems, bigrams)
	// Output:
	// elements=0.3000
	// bigrams=0.2222
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSubseqJaccard
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same pair under the all-widths sweep: the shared "itt" run pulls
//	the score up, while widths 4 and above share nothing and drag it
//	down through the final power.
//
// Use case:
//
//	A single number that rewards preserved runs of any length without
//	fixing a window order in advance.
//
// Complexity: O((len(x)+len(y))·L²) time, L = max length
func ExampleSubseqJaccard() {
	sim := token.SubseqJaccard([]rune("kitten"), []rune("sitting"))

	fmt.Printf("similarity=%.4f\n", sim)
	// Output:
	// similarity=0.2484
}
