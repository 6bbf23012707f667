package dets

import (
	"math/bits"
	"strings"
)

// wordBits is the width of one storage word of a SpinDet.
const wordBits = 64

// SpinDet is the occupation bit vector of one spin channel over a fixed set
// of molecular orbitals. Bit i set means orbital i holds an electron of this
// channel. Storage is word-packed: orbital i lives in word i/64, bit i%64.
//
// The orbital count is fixed at construction; all operations validate
// indices against it and report sentinel errors instead of panicking.
// SpinDet is not safe for concurrent mutation; the generation paths never
// mutate a shared SpinDet (they copy, then flip bits on the copy).
type SpinDet struct {
	nMos  int      // number of molecular orbitals, immutable
	words []uint64 // packed occupation bits, len == ceil(nMos/64)
}

// NewSpinDet returns an all-unoccupied channel over nMos orbitals.
// Complexity: O(N_mos/64).
func NewSpinDet(nMos int) (*SpinDet, error) {
	if nMos <= 0 {
		return nil, ErrBadOrbCount
	}

	return &SpinDet{
		nMos:  nMos,
		words: make([]uint64, (nMos+wordBits-1)/wordBits),
	}, nil
}

// NewSpinDetFill returns a channel over nMos orbitals with orbitals
// 0..maxOrb-1 occupied — the ground-state filling of maxOrb electrons.
// Complexity: O(N_mos/64).
func NewSpinDetFill(nMos, maxOrb int) (*SpinDet, error) {
	s, err := NewSpinDet(nMos)
	if err != nil {
		return nil, err
	}
	if err = s.SetRange(0, maxOrb, true); err != nil {
		return nil, err
	}

	return s, nil
}

// NewSpinDetFromOrbs returns a channel over nMos orbitals with exactly the
// listed orbitals occupied. Each index must lie in [0, nMos).
// Complexity: O(N_mos/64 + len(orbs)).
func NewSpinDetFromOrbs(nMos int, orbs []int) (*SpinDet, error) {
	s, err := NewSpinDet(nMos)
	if err != nil {
		return nil, err
	}
	for _, orb := range orbs {
		if err = s.Set(orb, true); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// NMos returns the fixed orbital count of the channel.
func (s *SpinDet) NMos() int { return s.nMos }

// Get reports whether orbital orb is occupied.
// Complexity: O(1).
func (s *SpinDet) Get(orb int) (bool, error) {
	if orb < 0 || orb >= s.nMos {
		return false, ErrOrbOutOfRange
	}

	return s.words[orb/wordBits]&(1<<uint(orb%wordBits)) != 0, nil
}

// Set writes occupancy v at orbital orb.
// Complexity: O(1).
func (s *SpinDet) Set(orb int, v bool) error {
	if orb < 0 || orb >= s.nMos {
		return ErrOrbOutOfRange
	}
	s.put(orb, v)

	return nil
}

// put flips a single bit without bounds checks. Internal fast path for
// callers that already validated orb.
func (s *SpinDet) put(orb int, v bool) {
	if v {
		s.words[orb/wordBits] |= 1 << uint(orb%wordBits)
	} else {
		s.words[orb/wordBits] &^= 1 << uint(orb%wordBits)
	}
}

// SetRange writes occupancy v for every orbital in the half-open range
// [lo, hi), one masked word at a time. An empty range (lo == hi) is a
// no-op.
// Complexity: O((hi-lo)/64).
func (s *SpinDet) SetRange(lo, hi int, v bool) error {
	if lo < 0 || hi > s.nMos || lo > hi {
		return ErrBadRange
	}
	for lo < hi {
		w, bit := lo/wordBits, lo%wordBits
		span := wordBits - bit
		if span > hi-lo {
			span = hi - lo
		}
		mask := (^uint64(0) >> uint(wordBits-span)) << uint(bit)
		if v {
			s.words[w] |= mask
		} else {
			s.words[w] &^= mask
		}
		lo += span
	}

	return nil
}

// Count returns the number of occupied orbitals (electrons) in the channel.
// Complexity: O(N_mos/64).
func (s *SpinDet) Count() int {
	var n int
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// countRange returns the number of occupied orbitals in the half-open range
// [lo, hi), one masked popcount per word. Bounds are assumed valid. This is
// the popcount behind the phase computation: the mask spanning
// strictly-between orbitals of an excitation.
// Complexity: O((hi-lo)/64).
func (s *SpinDet) countRange(lo, hi int) int {
	var n int
	for lo < hi {
		w, bit := lo/wordBits, lo%wordBits
		span := wordBits - bit
		if span > hi-lo {
			span = hi - lo
		}
		mask := (^uint64(0) >> uint(wordBits-span)) << uint(bit)
		n += bits.OnesCount64(s.words[w] & mask)
		lo += span
	}

	return n
}

// Not returns the bitwise complement of the channel over its N_mos orbitals.
// Orbitals beyond N_mos in the final word stay clear.
// Complexity: O(N_mos/64).
func (s *SpinDet) Not() *SpinDet {
	out := s.Clone()
	for i := range out.words {
		out.words[i] = ^s.words[i]
	}
	out.maskTail()

	return out
}

// And returns the bitwise intersection of two same-length channels.
// Complexity: O(N_mos/64).
func (s *SpinDet) And(other *SpinDet) (*SpinDet, error) {
	if other == nil {
		return nil, ErrNilDet
	}
	if other.nMos != s.nMos {
		return nil, ErrSizeMismatch
	}
	out := s.Clone()
	for i := range out.words {
		out.words[i] &= other.words[i]
	}

	return out, nil
}

// Xor returns the bitwise symmetric difference of two same-length channels.
// Complexity: O(N_mos/64).
func (s *SpinDet) Xor(other *SpinDet) (*SpinDet, error) {
	if other == nil {
		return nil, ErrNilDet
	}
	if other.nMos != s.nMos {
		return nil, ErrSizeMismatch
	}
	out := s.Clone()
	for i := range out.words {
		out.words[i] ^= other.words[i]
	}

	return out, nil
}

// maskTail clears the bits of the final word beyond N_mos so that Count and
// word-wise comparisons never see phantom orbitals.
func (s *SpinDet) maskTail() {
	if rem := s.nMos % wordBits; rem != 0 {
		s.words[len(s.words)-1] &= (1 << uint(rem)) - 1
	}
}

// Occupied returns the occupied orbital indices in ascending order.
// The ascending order is load-bearing: the doubles generator enumerates
// combinations positionally over these lists.
// Complexity: O(N_mos).
func (s *SpinDet) Occupied() []int {
	orbs := make([]int, 0, s.Count())
	for wi, w := range s.words {
		for w != 0 {
			orbs = append(orbs, wi*wordBits+bits.TrailingZeros64(w))
			w &= w - 1 // clear lowest set bit
		}
	}

	return orbs
}

// Unoccupied returns the unoccupied orbital indices in ascending order.
// Complexity: O(N_mos).
func (s *SpinDet) Unoccupied() []int {
	return s.Not().Occupied()
}

// Equal reports whether two channels have identical orbital count and
// occupation pattern.
func (s *SpinDet) Equal(other *SpinDet) bool {
	if other == nil || other.nMos != s.nMos {
		return false
	}
	for i := range s.words {
		if s.words[i] != other.words[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy of the channel.
// Complexity: O(N_mos/64).
func (s *SpinDet) Clone() *SpinDet {
	cp := &SpinDet{nMos: s.nMos, words: make([]uint64, len(s.words))}
	copy(cp.words, s.words)

	return cp
}

// String renders the channel as N_mos characters with orbital 0 leftmost,
// '1' for occupied and '0' for unoccupied. Debug aid only.
func (s *SpinDet) String() string {
	var b strings.Builder
	b.Grow(s.nMos)
	for orb := 0; orb < s.nMos; orb++ {
		if s.words[orb/wordBits]&(1<<uint(orb%wordBits)) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}
