// Package dets is the determinant excitation engine for configuration-
// interaction (CI) quantum chemistry: bit-level electronic configurations,
// fermionic phases, and exhaustive single/double excitation generation.
//
// 🚀 What is a determinant?
//
//	One electronic configuration — which molecular orbitals hold an
//	electron, independently for the two spin channels (alpha, beta).
//	CI methods expand a wavefunction over many such determinants; the
//	engine below enumerates the ones "connected" to a source by moving
//	one or two electrons.
//
// ✨ Key features:
//   - SpinDet / Det: word-packed occupation bit vectors with O(1) orbital
//     get/set, popcount, and channel-wise NOT/AND/XOR
//   - PhaseSingle / PhaseDoubleSameSpin / PhaseDoubleCross: the ±1 sign
//     from anticommuting second-quantized operators past occupied orbitals
//   - ApplySingle / ApplyDouble: value-returning excitation application
//     with validated occupancy preconditions (sentinel errors, no panics)
//   - Singles / SameSpinDoubles / OppSpinDoubles / Connected: exhaustive,
//     deterministic-order generation, with *Constrained variants narrowing
//     holes and particles through an active-space Constraint
//   - DetArray: the fixed-size contiguous output container downstream
//     Hamiltonian builders index into
//   - ConnectedAll: errgroup fan-out of generation across many sources
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cidets/dets"
//
//	// ground state: 4 orbitals, 2 electrons per channel
//	d, _ := dets.NewDetFill(4, 2, 2)
//
//	conn, _ := dets.Connected(d)   // singles ++ same-spin ++ opp-spin
//	ph, _ := dets.PhaseSingle(&d.Alpha, 0, 2)
//
// All generation entry points are pure: no shared state, deterministic
// output order, every produced determinant an independent value.
//
// See example_test.go for worked scenarios.
package dets
