package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cidets/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upperTriangle3 is the 3×3 symmetric matrix
//
//	[2 1 0]
//	[1 3 5]
//	[0 5 4]
//
// stored as upper-triangle CSR.
func upperTriangle3(t *testing.T) *matrix.SymCSR {
	t.Helper()
	m, err := matrix.NewSymCSR(3,
		[]int{0, 2, 4, 5},
		[]int{0, 1, 1, 2, 2},
		[]float64{2, 1, 3, 5, 4},
	)
	require.NoError(t, err)

	return m
}

// TestNewSymCSR_Validation verifies malformed CSR structures are rejected.
func TestNewSymCSR_Validation(t *testing.T) {
	_, err := matrix.NewSymCSR(0, []int{0}, nil, nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	// rowPtr length wrong.
	_, err = matrix.NewSymCSR(2, []int{0, 1}, []int{0}, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrBadCSR)

	// Entry below the diagonal.
	_, err = matrix.NewSymCSR(2, []int{0, 1, 2}, []int{0, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrBadCSR)

	// Columns not ascending within a row.
	_, err = matrix.NewSymCSR(3, []int{0, 2, 2, 2}, []int{2, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrBadCSR)
}

// TestSymCSR_AtSymmetric verifies At resolves the lower triangle through
// symmetry and absent entries read as zero.
func TestSymCSR_AtSymmetric(t *testing.T) {
	m := upperTriangle3(t)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 5, m.NNZ())

	cases := []struct {
		i, j int
		want float64
	}{
		{0, 0, 2}, {0, 1, 1}, {1, 0, 1}, {1, 2, 5}, {2, 1, 5}, {0, 2, 0}, {2, 0, 0}, {2, 2, 4},
	}
	for _, tc := range cases {
		v, err := m.At(tc.i, tc.j)
		require.NoError(t, err)
		assert.Equal(t, tc.want, v, "At(%d,%d)", tc.i, tc.j)
	}

	_, err := m.At(3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSymCSR_DenseRoundTrip verifies Dense -> SymCSR -> Dense preserves
// the symmetric content.
func TestSymCSR_DenseRoundTrip(t *testing.T) {
	d, err := matrix.NewDenseFrom(3, 3, []float64{
		2, 1, 0,
		1, 3, 5,
		0, 5, 4,
	})
	require.NoError(t, err)

	sp, err := matrix.NewSymCSRFromDense(d, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, sp.NNZ())

	back, err := sp.ToDense()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, err := d.At(i, j)
			require.NoError(t, err)
			got, err := back.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want, got, "(%d,%d)", i, j)
		}
	}
}

// TestNewSymCSRFromDense_Tol verifies the magnitude threshold drops small
// entries.
func TestNewSymCSRFromDense_Tol(t *testing.T) {
	d, err := matrix.NewDenseFrom(2, 2, []float64{
		1, 1e-12,
		1e-12, 2,
	})
	require.NoError(t, err)

	sp, err := matrix.NewSymCSRFromDense(d, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, 2, sp.NNZ(), "near-zero couplings must be dropped")

	_, err = matrix.NewSymCSRFromDense(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
