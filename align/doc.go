// Package align provides heuristic alignment similarities between generic
// sequences: Jaro and Jaro-Winkler, Ratcliff-Obershelp with its matching
// block decomposition, and a moving contracting window pattern score.
//
// All scores are similarities in [0,1] (1 means equal); every metric has a
// distance twin (JaroDist, RatcliffObershelpDist, ...) returning the
// complement. Unlike the edit package these methods do not build a full
// cost matrix; they match greedily or by longest common runs, trading
// metric guarantees for speed and intuitive scores.
//
// Conventions for degenerate inputs: two empty sequences are equal
// (similarity 1); one empty sequence shares nothing (similarity 0).
package align
