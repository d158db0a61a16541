// Package token implements set and multiset overlap coefficients over
// sequence windows: the Jaccard index, the Sørensen-Dice coefficient and a
// length-weighted subsequence variant of Jaccard.
//
// All three compare the contiguous windows of two sequences rather than
// their raw elements. The window width is Options.Order (default 1, plain
// element comparison); SubseqJaccard sweeps every width at once. Windows of
// width above 1 are identified by 64-bit hashes (see core.WindowKey), so
// results carry the hash layer's ≈2⁻⁶⁴ collision approximation.
//
// Similarities live in [0,1] with matching *Dist forms equal to one minus
// the similarity. When neither sequence contributes a window the
// similarity is 0 by the 0/0 := 0 convention.
package token
