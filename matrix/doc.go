// Package matrix provides the dense and compressed-sparse symmetric
// containers that downstream CI code fills with Hamiltonian and overlap
// values over a determinant index space.
//
// ✨ Key features:
//   - Dense: row-major float64 matrix, flat backing slice, bounds-checked
//     At/Set, zero / fill / copy constructors
//   - SymCSR: symmetric sparse matrix storing only the upper triangle in
//     CSR form, with symmetric At lookup and Dense round trips
//   - gonum bridge: ToGonum / ToGonumSym / FromGonum adapters into
//     gonum.org/v1/gonum/mat for eigensolvers and further linear algebra
//
// The determinant engine (package dets) has no dependency on this package;
// the dependency points the other way: matrix consumers index rows and
// columns by positions in a dets.DetArray.
//
// All entry points validate shape and bounds up front and return the
// package sentinels (ErrBadShape, ErrOutOfRange, ErrBadCSR, ...) matched
// via errors.Is; nothing panics on user input.
package matrix
