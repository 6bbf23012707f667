// Package cidets is an in-memory engine for configuration-interaction (CI)
// quantum chemistry determinants: bit-level electronic configurations,
// fermionic excitation phases, and exhaustive generation of the singly- and
// doubly-excited space around a source configuration.
//
// 🚀 What is cidets?
//
//	A pure-Go combinatorial core for CI methods:
//		• SpinDet & Det: word-packed occupation bit vectors per spin channel
//		• Phase calculus: the ±1 sign of single and double excitations
//		• Excitation appliers: value-returning, precondition-validated
//		• Generators: all singles, same-spin doubles, opposite-spin doubles,
//		  and their active-space-constrained variants
//		• DetArray: the contiguous output container matrix builders index by
//		• matrix: Dense & symmetric-CSR Hamiltonian containers + gonum bridge
//
// ✨ Why choose cidets?
//
//   - Deterministic – every generator has a documented, exact output order
//   - Rock-solid guarantees – validated preconditions, sentinel errors,
//     no panics on user input
//   - Parallel-ready – fan out generation across source determinants with
//     ConnectedAll; every call is a pure function over immutable inputs
//
// Everything is organized under two subpackages:
//
//	dets/   — determinant model, phases, excitation appliers & generators
//	matrix/ — dense & compressed-sparse symmetric value containers
//
// Quick ASCII example (4 orbitals, 2 electrons per channel):
//
//	alpha: 1100      holes {0,1} × particles {2,3} → 4 alpha singles
//	beta:  1100      same for beta, then doubles on top
//
// Dive into dets/example_test.go for worked scenarios.
//
//	go get github.com/katalvlaran/cidets/dets
package cidets
