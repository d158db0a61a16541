// Package core provides the generic sequence primitives every lvlseq metric
// builds on: leftmost subsequence search, contiguous-window enumeration,
// element multisets, n-gram extraction and stable 64-bit window keys.
//
// All functions are pure over []T with T comparable: no shared state, no
// locks, no goroutines, safe for unlimited concurrent use. Elements are
// compared with ==; windows of more than one element are keyed through
// WindowKey (xxhash64 over a length-prefixed %v rendering), which trades a
// ≈ 2⁻⁶⁴ per-pair collision probability for map-key usability.
//
// The package also owns the three sentinel error kinds shared by the metric
// packages:
//
//   - ErrEmptyInput — a sequence that must be non-empty is empty.
//   - ErrDomain     — a computed value left the metric's documented domain.
//   - ErrConfig     — an option value violates its documented range.
//
// Metric packages wrap these with fmt.Errorf("pkg: detail: %w", ...); match
// with errors.Is.
package core
