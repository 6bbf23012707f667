package dets

// Constrained orbital selection. The selector is a pure derivation over
// three masks per channel:
//
//	allowed holes     = occupied   ∩ hole-permitted ∩ [0, maxOrb)
//	allowed particles = unoccupied ∩ part-permitted ∩ [0, maxOrb)
//
// Occupied and unoccupied partition every orbital, so the two lists are
// disjoint by construction. maxOrb is an exclusive active-space bound:
// maxOrb == N_mos leaves the channel unrestricted.

// masks converts a Constraint into hole/particle permission bit vectors
// over nMos orbitals, validating every listed index.
func (c Constraint) masks(nMos int) (hole, part *SpinDet, err error) {
	if hole, err = NewSpinDetFromOrbs(nMos, c.Holes); err != nil {
		return nil, nil, err
	}
	if part, err = NewSpinDetFromOrbs(nMos, c.Parts); err != nil {
		return nil, nil, err
	}

	return hole, part, nil
}

// allowedExcitations narrows one channel through a constraint and an
// exclusive active-space bound, returning the allowed hole and particle
// orbital lists in ascending order (the order the generators rely on).
// Complexity: O(N_mos).
func allowedExcitations(s *SpinDet, holeMask, partMask *SpinDet, maxOrb int) (holes, parts []int, err error) {
	if maxOrb < 0 || maxOrb > s.nMos {
		return nil, nil, ErrBadRange
	}
	bound, err := NewSpinDetFill(s.nMos, maxOrb)
	if err != nil {
		return nil, nil, err
	}

	h, err := s.And(holeMask)
	if err != nil {
		return nil, nil, err
	}
	if h, err = h.And(bound); err != nil {
		return nil, nil, err
	}

	p, err := s.Not().And(partMask)
	if err != nil {
		return nil, nil, err
	}
	if p, err = p.And(bound); err != nil {
		return nil, nil, err
	}

	return h.Occupied(), p.Occupied(), nil
}

// AllowedExcitations returns the allowed hole and particle orbitals of the
// channel selected by spin, after narrowing through constraint c and the
// exclusive bound maxOrb. The two returned lists are always disjoint and
// ascending.
// Complexity: O(N_mos).
func AllowedExcitations(d *Det, spin Spin, c Constraint, maxOrb int) (holes, parts []int, err error) {
	if d == nil {
		return nil, nil, ErrNilDet
	}
	ch, err := d.Channel(spin)
	if err != nil {
		return nil, nil, err
	}
	holeMask, partMask, err := c.masks(d.NMos())
	if err != nil {
		return nil, nil, err
	}

	return allowedExcitations(ch, holeMask, partMask, maxOrb)
}
