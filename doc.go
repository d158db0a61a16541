// Package lvlseq is your toolbox for measuring how far apart two
// sequences are — from classic edit distances to compression-based and
// stemmatological scores, over any comparable element type.
//
// 🚀 What is lvlseq?
//
//	A pure, generic library that brings together ~18 distance and
//	similarity metrics for ordered sequences:
//		• Edit distances: Levenshtein, Damerau, bulk-delete, fragile-ends,
//		  stemmatological
//		• Heuristic alignment: Jaro, Jaro-Winkler, Ratcliff-Obershelp,
//		  contracting window
//		• Set coefficients: Jaccard, Sørensen, subsequence Jaccard over
//		  configurable n-gram windows
//		• Compression distances: codec-backed NCD, arithmetic-coding NCD,
//		  entropy NCD
//		• Composite scores: Birnbaum family, weighted blends
//
// ✨ Why choose lvlseq?
//
//   - Generic – every metric runs on []T for any comparable T: runes,
//     strings, ints, your own token types
//   - Pure – no I/O, no global state, every call safe to run concurrently
//   - Consistent – one Options + DefaultOptions pattern, three sentinel
//     error kinds, distances normalizable into [0,1]
//   - Honest – per-metric conventions for empty input, symmetry and
//     bounds spelled out on every function
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/    — sequence primitives: find, windows, n-grams, hashed keys
//	edit/    — Wagner-Fischer engine + the five edit distance variants
//	align/   — Jaro family, matching blocks, contracting window
//	token/   — Jaccard, Sørensen, subsequence Jaccard
//	ncd/     — compressor capability + the NCD family
//	stemma/  — Birnbaum family, stemmatological profiles, composite blend
//	seqdist/ — closed method enum, name parser, unified dispatch, mean
//
// Quick example:
//
//	dist, err := edit.Levenshtein([]rune("kitten"), []rune("sitting"), nil)
//	// dist == 3
//
// Dive into each package's doc.go and example_test.go for worked runs,
// contracts and complexity notes.
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
