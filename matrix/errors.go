// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All public entry points validate
// before allocating and return these sentinels; tests match them via
// errors.Is. No routine panics on user-triggered conditions.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (n <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between a
	// matrix and supplied data (e.g., a flat slice of the wrong length).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadCSR indicates malformed compressed-sparse-row structure:
	// non-monotone row pointers, column indices out of range or not
	// ascending within a row, or entries below the diagonal.
	ErrBadCSR = errors.New("matrix: malformed CSR structure")

	// ErrNilMatrix indicates a nil receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
