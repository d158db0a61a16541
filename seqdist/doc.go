// Package seqdist is the convenience dispatcher over the lvlseq metric
// packages: one closed Method enumeration, one Options bag, one Distance
// call routing to the right package with the right configuration.
//
// 🚀 What is seqdist?
//
//	The metric packages (edit, align, token, ncd, stemma) each expose
//	their own typed API; seqdist flattens them into a uniform surface for
//	callers that pick metrics at run time - a CLI flag, a config file, a
//	benchmark sweep:
//	  • Method      — closed enum of the 18 shipped metrics
//	  • ParseMethod — canonical snake_case names and their aliases
//	  • Distance    — one pair, one method, one distance in one call
//	  • Mean        — the average pairwise distance of n ≥ 2 sequences
//
// ✨ Key features:
//   - everything crosses the dispatcher as a DISTANCE: similarity metrics
//     are forwarded as 1−similarity, so aggregation never mixes
//     orientations
//   - compile-time routing: the switch is over the enum, not a string map
//   - one Options struct mirroring every package's knobs, nil for
//     all-defaults
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlseq/seqdist"
//
//	m, err := seqdist.ParseMethod("jaro_winkler")
//	// m == seqdist.JaroWinkler
//
//	d, err := seqdist.Distance([]rune("kitten"), []rune("sitting"), m, nil)
//	// d == 1 - the Jaro-Winkler similarity
//
// Performance: a thin forwarding layer; each call costs its target metric
// plus one switch.
//
// See example_test.go for a method sweep over one pair.
package seqdist
