// Package edit computes edit distances between generic sequences with the
// Wagner-Fischer dynamic program, parameterized by per-variant cost rules.
//
// 🚀 What is an edit distance?
//
//	The minimum total cost of insertions, deletions and substitutions
//	(plus variant-specific operations) turning one sequence into another.
//	The variants here were developed for stemmatics, where sequences are
//	content tables of manuscripts and damage concentrates at the ends:
//	  • Levenshtein      — unit-cost insert/delete/substitute
//	  • Damerau          — Levenshtein plus adjacent transposition
//	  • BulkDelete       — a block of up to MaxDelLen deletions costs 1
//	  • FragileEnds      — deletions near either end cost 0.5
//	  • Stemmatological  — BulkDelete and FragileEnds combined, with
//	    configurable fragile regions
//
// ✨ Key features:
//   - one shared O(len(x)·len(y)) matrix engine, variant-specific cost
//     rules and first-column seeding
//   - generic element type: works on []rune, []string, []int, any
//     comparable T
//   - optional normalization to [0,1] via Options.Normalize
//   - all tunables (MaxDelLen, FragStart, FragEnd) validated up front
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlseq/edit"
//
//	opts := edit.DefaultOptions()
//	opts.Normalize = true
//
//	dist, err := edit.Levenshtein([]rune("kitten"), []rune("sitting"), &opts)
//	// dist == 3/7, err == nil
//
// Performance:
//
//   - Time:   O(len(x)·len(y)·c), c = candidate operations per cell
//   - Memory: O(len(x)·len(y)) (full matrix; variants seed the first column)
//
// See example_test.go for worked runs of every variant.
package edit
