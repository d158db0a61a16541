// Package stemma: ready-made profiles of the stemmatological edit distance.
package stemma

import "github.com/katalvlaran/lvlseq/edit"

// Stemmatological returns the raw stemmatological distance of x and y
// under the default tuning: deletion blocks up to 5 elements, fragile
// regions covering the leading and trailing 10% of x. A thin domain-facing
// alias for edit.Stemmatological with defaults; reach for the edit package
// to tune the knobs individually.
//
// Complexity: O(len(x)·len(y)·5).
func Stemmatological[T comparable](x, y []T) (float64, error) {
	return edit.Stemmatological(x, y, nil)
}

// StemmatologicalNorm is Stemmatological normalized by the longer length,
// landing in [0,1]; two empty sequences score 0.
func StemmatologicalNorm[T comparable](x, y []T) (float64, error) {
	opts := edit.DefaultOptions()
	opts.Normalize = true

	return edit.Stemmatological(x, y, &opts)
}

// Stemmatological2030 is the normalized profile with wider fragile regions:
// the leading 20% and trailing 30% of x discount deletions. Tuned for
// traditions whose witnesses lose whole gatherings at the back.
func Stemmatological2030[T comparable](x, y []T) (float64, error) {
	opts := edit.DefaultOptions()
	opts.Normalize = true
	opts.FragStart = 20.0
	opts.FragEnd = 30.0

	return edit.Stemmatological(x, y, &opts)
}
