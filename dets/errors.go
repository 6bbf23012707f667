// Package dets: sentinel error set.
// All public entry points validate their inputs up front and return these
// sentinels; tests match them via errors.Is. No routine panics on
// user-triggered conditions.
package dets

import "errors"

var (
	// ErrBadOrbCount indicates a non-positive molecular-orbital count.
	ErrBadOrbCount = errors.New("dets: orbital count must be > 0")

	// ErrOrbOutOfRange indicates an orbital index outside [0, N_mos).
	ErrOrbOutOfRange = errors.New("dets: orbital index out of range")

	// ErrSizeMismatch indicates two spin channels (or determinants) with
	// differing orbital counts were combined.
	ErrSizeMismatch = errors.New("dets: orbital count mismatch between channels")

	// ErrHoleUnoccupied indicates an excitation tried to vacate an orbital
	// that holds no electron in the relevant channel.
	ErrHoleUnoccupied = errors.New("dets: hole orbital is not occupied")

	// ErrParticleOccupied indicates an excitation tried to fill an orbital
	// that already holds an electron in the relevant channel.
	ErrParticleOccupied = errors.New("dets: particle orbital is already occupied")

	// ErrDuplicateOrb indicates a same-channel double excitation naming the
	// same orbital twice as hole or twice as particle: the repeated operator
	// annihilates the string, it does not produce a determinant or a sign.
	ErrDuplicateOrb = errors.New("dets: duplicate hole or particle orbital in double excitation")

	// ErrIndexOutOfRange indicates a determinant-array index outside [0, N).
	ErrIndexOutOfRange = errors.New("dets: determinant index out of range")

	// ErrBadDetCount indicates a negative determinant-array size.
	ErrBadDetCount = errors.New("dets: determinant count must be >= 0")

	// ErrNilDet indicates a nil determinant or spin channel argument.
	ErrNilDet = errors.New("dets: nil determinant or channel")

	// ErrBadSpin indicates a Spin value other than Alpha or Beta.
	ErrBadSpin = errors.New("dets: invalid spin channel")

	// ErrBadRange indicates an orbital range with lo > hi or bounds outside
	// [0, N_mos].
	ErrBadRange = errors.New("dets: invalid orbital range")
)
