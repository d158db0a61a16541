// Package token: window order configuration shared by the coefficient family.
package token

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/core"
)

// DefaultOrder is the window width used when Options are omitted; width 1
// compares plain elements.
const DefaultOrder = 1

// Options configures the coefficient family.
type Options struct {
	// Order is the width of the contiguous windows the coefficients run
	// over: 1 compares elements directly, higher orders compare n-grams.
	// Must be ≥ 1.
	Order int
}

// DefaultOptions returns the canonical configuration (Order = 1).
func DefaultOptions() Options {
	return Options{Order: DefaultOrder}
}

// resolve maps a possibly-nil caller pointer onto a concrete Options value.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// validateOrder rejects window widths below 1.
func validateOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("token: window order %d below 1: %w", order, core.ErrConfig)
	}

	return nil
}

// windowTotal counts the contiguous windows of the given order in a
// sequence of length n, multiplicity included.
func windowTotal(n, order int) int {
	if n < order {
		return 0
	}

	return n - order + 1
}
