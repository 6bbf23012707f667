// Package dets: domain types shared across the excitation engine.
package dets

// Spin selects one of the two independent electron populations of a
// determinant. Every orbital may be occupied independently in each channel.
type Spin int

const (
	// Alpha is the first spin channel.
	Alpha Spin = iota
	// Beta is the second spin channel.
	Beta
)

// String implements fmt.Stringer for diagnostics.
func (s Spin) String() string {
	switch s {
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	default:
		return "spin(?)"
	}
}

// valid reports whether s names a real channel.
func (s Spin) valid() bool { return s == Alpha || s == Beta }

// Constraint restricts where an excitation may create holes and particles.
// Holes lists orbitals an electron may be removed from; Parts lists
// orbitals an electron may be promoted into. A Constraint is a pure filter:
// it is intersected with the actual occupied/unoccupied orbitals of a
// channel by the selector, never mutated.
//
// Orbital indices must lie in [0, N_mos) of the determinant the constraint
// is applied to; the selector validates on use.
type Constraint struct {
	Holes []int // orbitals where a hole may be created
	Parts []int // orbitals where a particle may be created
}

// FullConstraint returns the permissive constraint over nMos orbitals:
// every orbital may serve as a hole and as a particle. Constrained
// generation under FullConstraint with bound nMos reproduces the
// unconstrained generation exactly.
// Complexity: O(N_mos).
func FullConstraint(nMos int) Constraint {
	all := make([]int, nMos)
	for i := range all {
		all[i] = i
	}

	return Constraint{Holes: all, Parts: all}
}
