// Package apperr defines the sentinel error taxonomy shared by every
// package above intset. Callers match errors with errors.Is against
// the sentinels below; context is added with Wrap, which never loses
// the sentinel identity.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a malformed argument: bad cycle syntax, a
	// missing random source, and similar caller mistakes. Not
	// recoverable by retry.
	ErrInvalidInput = errors.New("apperr: invalid input")

	// ErrOutOfBounds marks a point or index outside the valid domain,
	// e.g. an orbit query for a point >= degree.
	ErrOutOfBounds = errors.New("apperr: out of bounds")

	// ErrNotSubgroup marks a precondition failure where a set was
	// required to be verified as a group (or subgroup of another) and
	// was not.
	ErrNotSubgroup = errors.New("apperr: not a subgroup")

	// ErrNotDivisor marks a quotient precondition failure: |N| does not
	// divide |G|.
	ErrNotDivisor = errors.New("apperr: order does not divide")

	// ErrOverflow marks an explicit resource-limit failure: coset
	// enumeration, Sylow search or a safety-depth bound was exceeded.
	// Randomised algorithms raise this on restart-budget exhaustion.
	ErrOverflow = errors.New("apperr: safety bound exceeded")
)

// Wrap annotates err with a package tag and message while preserving
// errors.Is compatibility with the wrapped sentinel.
func Wrap(pkg, msg string, err error) error {
	return fmt.Errorf("%s: %s: %w", pkg, msg, err)
}
