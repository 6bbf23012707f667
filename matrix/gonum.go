// SPDX-License-Identifier: MIT

// Package matrix: two-way adapters to gonum/mat, so Hamiltonian and
// overlap containers built here feed directly into gonum eigensolvers and
// linear algebra.
package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum exports a Dense matrix as a gonum *mat.Dense. The backing data
// is copied; the two matrices stay independent.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// ToGonumSym exports a SymCSR matrix as a gonum *mat.SymDense, expanding
// the stored upper triangle.
// Complexity: O(n^2).
func (m *SymCSR) ToGonumSym() *mat.SymDense {
	out := mat.NewSymDense(m.n, nil)
	for i := 0; i < m.n; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			out.SetSym(i, m.cols[k], m.vals[k])
		}
	}

	return out
}

// FromGonum imports any gonum mat.Matrix into a Dense matrix, copying
// every element.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}
