// SPDX-License-Identifier: MIT

// Package matrix: SymCSR is a symmetric matrix in compressed-sparse-row
// form storing only the upper triangle (diagonal included). CI Hamiltonians
// over a determinant basis are symmetric and overwhelmingly sparse — only
// determinant pairs connected by at most a double excitation couple — so
// the upper-triangle CSR form is the natural storage for them.
package matrix

import "sort"

// SymCSR is an n×n symmetric sparse matrix. rowPtr has n+1 entries;
// cols[rowPtr[i]:rowPtr[i+1]] are the stored column indices of row i,
// ascending, all >= i (upper triangle); vals is index-aligned with cols.
type SymCSR struct {
	n      int
	rowPtr []int
	cols   []int
	vals   []float64
}

// NewSymCSR builds a SymCSR from raw CSR arrays, validating structure:
// rowPtr monotone with rowPtr[0]==0 and rowPtr[n]==len(cols)==len(vals);
// within each row i, column indices ascending and in [i, n).
// The input slices are copied, not aliased.
// Complexity: O(n + nnz).
func NewSymCSR(n int, rowPtr, cols []int, vals []float64) (*SymCSR, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	if len(rowPtr) != n+1 || rowPtr[0] != 0 || rowPtr[n] != len(cols) || len(cols) != len(vals) {
		return nil, ErrBadCSR
	}
	for i := 0; i < n; i++ {
		if rowPtr[i] > rowPtr[i+1] {
			return nil, ErrBadCSR
		}
		for k := rowPtr[i]; k < rowPtr[i+1]; k++ {
			if cols[k] < i || cols[k] >= n {
				return nil, ErrBadCSR
			}
			if k > rowPtr[i] && cols[k] <= cols[k-1] {
				return nil, ErrBadCSR
			}
		}
	}

	m := &SymCSR{
		n:      n,
		rowPtr: make([]int, n+1),
		cols:   make([]int, len(cols)),
		vals:   make([]float64, len(vals)),
	}
	copy(m.rowPtr, rowPtr)
	copy(m.cols, cols)
	copy(m.vals, vals)

	return m, nil
}

// NewSymCSRFromDense compresses the upper triangle of a square Dense
// matrix, keeping entries with |v| > tol. The input is read through its
// upper triangle only; symmetry of the source is the caller's assertion.
// Complexity: O(n^2).
func NewSymCSRFromDense(d *Dense, tol float64) (*SymCSR, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	if d.r != d.c {
		return nil, ErrDimensionMismatch
	}
	n := d.r
	rowPtr := make([]int, n+1)
	var cols []int
	var vals []float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if v := d.data[i*n+j]; v > tol || v < -tol {
				cols = append(cols, j)
				vals = append(vals, v)
			}
		}
		rowPtr[i+1] = len(cols)
	}

	return &SymCSR{n: n, rowPtr: rowPtr, cols: cols, vals: vals}, nil
}

// Rows returns the matrix order. Complexity: O(1).
func (m *SymCSR) Rows() int { return m.n }

// Cols returns the matrix order. Complexity: O(1).
func (m *SymCSR) Cols() int { return m.n }

// NNZ returns the number of stored upper-triangle entries.
func (m *SymCSR) NNZ() int { return len(m.vals) }

// At retrieves the element at (row, col), resolving the lower triangle
// through symmetry. Absent entries read as zero.
// Complexity: O(log nnz(row)) via binary search within the row.
func (m *SymCSR) At(row, col int) (float64, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}
	if col < row {
		row, col = col, row
	}
	lo, hi := m.rowPtr[row], m.rowPtr[row+1]
	k := lo + sort.SearchInts(m.cols[lo:hi], col)
	if k < hi && m.cols[k] == col {
		return m.vals[k], nil
	}

	return 0, nil
}

// ToDense expands the symmetric matrix into a full Dense matrix.
// Complexity: O(n^2).
func (m *SymCSR) ToDense() (*Dense, error) {
	d, err := NewDense(m.n, m.n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.n; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			j := m.cols[k]
			d.data[i*m.n+j] = m.vals[k]
			d.data[j*m.n+i] = m.vals[k]
		}
	}

	return d, nil
}
