package dets_test

import (
	"testing"

	"github.com/katalvlaran/cidets/dets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSpinDet_BadOrbCount verifies that non-positive orbital counts
// are rejected with ErrBadOrbCount.
func TestNewSpinDet_BadOrbCount(t *testing.T) {
	_, err := dets.NewSpinDet(0)
	assert.ErrorIs(t, err, dets.ErrBadOrbCount, "zero orbitals must error")

	_, err = dets.NewSpinDet(-3)
	assert.ErrorIs(t, err, dets.ErrBadOrbCount, "negative orbitals must error")
}

// TestNewSpinDet_Empty verifies a fresh channel has no occupied orbitals.
func TestNewSpinDet_Empty(t *testing.T) {
	s, err := dets.NewSpinDet(70) // spans two storage words
	require.NoError(t, err)

	assert.Equal(t, 70, s.NMos())
	assert.Equal(t, 0, s.Count(), "fresh channel must be empty")
	for _, orb := range []int{0, 63, 64, 69} {
		occ, getErr := s.Get(orb)
		require.NoError(t, getErr)
		assert.False(t, occ, "orbital %d must start unoccupied", orb)
	}
}

// TestNewSpinDetFill verifies ground-state filling of the lowest orbitals.
func TestNewSpinDetFill(t *testing.T) {
	s, err := dets.NewSpinDetFill(6, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []int{0, 1, 2}, s.Occupied())
	assert.Equal(t, "111000", s.String())
}

// TestNewSpinDetFill_BadBound verifies fill bounds outside [0, N_mos]
// report ErrBadRange.
func TestNewSpinDetFill_BadBound(t *testing.T) {
	_, err := dets.NewSpinDetFill(4, 5)
	assert.ErrorIs(t, err, dets.ErrBadRange)

	_, err = dets.NewSpinDetFill(4, -1)
	assert.ErrorIs(t, err, dets.ErrBadRange)
}

// TestNewSpinDetFromOrbs verifies explicit orbital-list construction and
// its range validation.
func TestNewSpinDetFromOrbs(t *testing.T) {
	s, err := dets.NewSpinDetFromOrbs(8, []int{1, 4, 6})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 6}, s.Occupied())

	_, err = dets.NewSpinDetFromOrbs(8, []int{1, 8})
	assert.ErrorIs(t, err, dets.ErrOrbOutOfRange, "orbital == N_mos must error")
}

// TestSpinDet_SetGet verifies single-orbital writes, reads, and their
// bounds checks.
func TestSpinDet_SetGet(t *testing.T) {
	s, err := dets.NewSpinDet(5)
	require.NoError(t, err)

	require.NoError(t, s.Set(3, true))
	occ, err := s.Get(3)
	require.NoError(t, err)
	assert.True(t, occ)

	require.NoError(t, s.Set(3, false))
	occ, err = s.Get(3)
	require.NoError(t, err)
	assert.False(t, occ)

	assert.ErrorIs(t, s.Set(5, true), dets.ErrOrbOutOfRange)
	_, err = s.Get(-1)
	assert.ErrorIs(t, err, dets.ErrOrbOutOfRange)
}

// TestSpinDet_SetRange verifies half-open range writes and ErrBadRange on
// inverted or out-of-bound ranges.
func TestSpinDet_SetRange(t *testing.T) {
	s, err := dets.NewSpinDet(8)
	require.NoError(t, err)

	require.NoError(t, s.SetRange(2, 5, true))
	assert.Equal(t, []int{2, 3, 4}, s.Occupied(), "range [2,5) must set orbitals 2..4")

	require.NoError(t, s.SetRange(3, 3, true)) // empty range, no-op
	assert.Equal(t, 3, s.Count())

	assert.ErrorIs(t, s.SetRange(5, 2, true), dets.ErrBadRange)
	assert.ErrorIs(t, s.SetRange(0, 9, true), dets.ErrBadRange)
}

// TestSpinDet_SetRange_CrossWord verifies masked range writes across a
// storage-word boundary: set, then partially clear.
func TestSpinDet_SetRange_CrossWord(t *testing.T) {
	s, err := dets.NewSpinDet(130)
	require.NoError(t, err)

	require.NoError(t, s.SetRange(60, 70, true))
	assert.Equal(t, []int{60, 61, 62, 63, 64, 65, 66, 67, 68, 69}, s.Occupied())

	require.NoError(t, s.SetRange(62, 68, false))
	assert.Equal(t, []int{60, 61, 68, 69}, s.Occupied())

	// Full-span write touches every word, including the partial tail.
	require.NoError(t, s.SetRange(0, 130, true))
	assert.Equal(t, 130, s.Count())
}

// TestSpinDet_Count verifies popcounts across word boundaries.
func TestSpinDet_Count(t *testing.T) {
	s, err := dets.NewSpinDetFromOrbs(130, []int{0, 63, 64, 127, 129})
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count())
}

// TestSpinDet_Not verifies complement over exactly N_mos orbitals:
// Count(s) + Count(~s) == N_mos, with no phantom tail bits.
func TestSpinDet_Not(t *testing.T) {
	s, err := dets.NewSpinDetFromOrbs(70, []int{0, 2, 65})
	require.NoError(t, err)

	inv := s.Not()
	assert.Equal(t, 70-3, inv.Count(), "complement count must be N_mos - k")
	occ, err := inv.Get(0)
	require.NoError(t, err)
	assert.False(t, occ)
	occ, err = inv.Get(1)
	require.NoError(t, err)
	assert.True(t, occ)
}

// TestSpinDet_AndXor verifies bitwise intersection and symmetric
// difference plus their size-mismatch validation.
func TestSpinDet_AndXor(t *testing.T) {
	a, err := dets.NewSpinDetFromOrbs(6, []int{0, 1, 3})
	require.NoError(t, err)
	b, err := dets.NewSpinDetFromOrbs(6, []int{1, 3, 5})
	require.NoError(t, err)

	and, err := a.And(b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, and.Occupied())

	xor, err := a.Xor(b)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5}, xor.Occupied())

	short, err := dets.NewSpinDet(5)
	require.NoError(t, err)
	_, err = a.And(short)
	assert.ErrorIs(t, err, dets.ErrSizeMismatch)
	_, err = a.Xor(short)
	assert.ErrorIs(t, err, dets.ErrSizeMismatch)

	_, err = a.And(nil)
	assert.ErrorIs(t, err, dets.ErrNilDet)
	_, err = a.Xor(nil)
	assert.ErrorIs(t, err, dets.ErrNilDet)
}

// TestSpinDet_OccupiedUnoccupied verifies both listings are ascending and
// partition the orbital set.
func TestSpinDet_OccupiedUnoccupied(t *testing.T) {
	s, err := dets.NewSpinDetFromOrbs(7, []int{6, 0, 4}) // unsorted input
	require.NoError(t, err)

	assert.Equal(t, []int{0, 4, 6}, s.Occupied(), "occupied list must be ascending")
	assert.Equal(t, []int{1, 2, 3, 5}, s.Unoccupied(), "unoccupied list must be ascending")
}

// TestSpinDet_CloneIndependence verifies a clone shares no storage with
// its source.
func TestSpinDet_CloneIndependence(t *testing.T) {
	s, err := dets.NewSpinDetFromOrbs(4, []int{0, 1})
	require.NoError(t, err)

	cp := s.Clone()
	require.NoError(t, cp.Set(3, true))

	assert.True(t, s.Equal(s.Clone()))
	assert.False(t, s.Equal(cp), "mutating the clone must not touch the source")
	assert.Equal(t, 2, s.Count())
}

// TestSpinDet_String verifies the debug rendering: orbital 0 leftmost.
func TestSpinDet_String(t *testing.T) {
	s, err := dets.NewSpinDetFromOrbs(4, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, "1100", s.String())
}
