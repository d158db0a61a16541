// Package core: sentinel error set shared by every metric package.
// Metrics return these three kinds so callers can branch with errors.Is
// without importing each metric package's internals.
package core

import "errors"

// Sentinel errors for sequence metric operations. Metric packages wrap these
// with fmt.Errorf("pkg: detail: %w", Err...) so callers match via errors.Is.
var (
	// ErrEmptyInput indicates that an operation required a non-empty sequence.
	// Metrics with a documented empty-input convention do not return it.
	ErrEmptyInput = errors.New("core: empty input sequence")

	// ErrDomain indicates a computed score left the metric's documented domain,
	// e.g. a normalization divisor of zero with no defined convention.
	ErrDomain = errors.New("core: value outside metric domain")

	// ErrConfig indicates an option value outside its documented range,
	// e.g. a non-positive n-gram order or weights that do not sum to one.
	ErrConfig = errors.New("core: invalid configuration")
)
