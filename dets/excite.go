package dets

// Excitation application. Every applier copies its input and flips bits on
// the copy: the source channel/determinant is never mutated, and the result
// shares no storage with it. Occupancy preconditions (hole occupied,
// particle unoccupied) are validated on the public surface; the generators
// use the unchecked internal paths because they derive holes and particles
// from the occupation masks directly.

// ApplySingle returns a copy of the channel with orbital h vacated and
// orbital p filled.
// Complexity: O(N_mos/64) for the copy.
func (s *SpinDet) ApplySingle(h, p int) (*SpinDet, error) {
	if err := checkSingle(s, h, p); err != nil {
		return nil, err
	}

	return s.applySingle(h, p), nil
}

// applySingle is the unchecked single-excitation path.
func (s *SpinDet) applySingle(h, p int) *SpinDet {
	out := s.Clone()
	out.put(h, false)
	out.put(p, true)

	return out
}

// ApplyDouble returns a copy of the channel with orbitals h1, h2 vacated
// and orbitals p1, p2 filled. The holes must be distinct, as must the
// particles; a repeated index reports ErrDuplicateOrb.
// Complexity: O(N_mos/64) for the copy.
func (s *SpinDet) ApplyDouble(h1, h2, p1, p2 int) (*SpinDet, error) {
	if err := checkDouble(s, h1, h2, p1, p2); err != nil {
		return nil, err
	}

	return s.applyDouble(h1, h2, p1, p2), nil
}

// applyDouble is the unchecked double-excitation path.
func (s *SpinDet) applyDouble(h1, h2, p1, p2 int) *SpinDet {
	out := s.Clone()
	out.put(h1, false)
	out.put(h2, false)
	out.put(p1, true)
	out.put(p2, true)

	return out
}

// ApplySingle returns a copy of the determinant with the single excitation
// (h → p) applied on the channel selected by spin.
// Complexity: O(N_mos/64).
func (d *Det) ApplySingle(spin Spin, h, p int) (*Det, error) {
	if !spin.valid() {
		return nil, ErrBadSpin
	}
	ch, _ := d.Channel(spin)
	if err := checkSingle(ch, h, p); err != nil {
		return nil, err
	}
	out := d.Clone()
	target, _ := out.Channel(spin)
	target.put(h, false)
	target.put(p, true)

	return out, nil
}

// ApplyDouble returns a copy of the determinant with the double excitation
// (h1 → p1) on channel spin1 and (h2 → p2) on channel spin2 applied. The
// two spins may name the same channel (same-spin double) or differ
// (cross-channel double). A same-channel double requires distinct holes
// and distinct particles; a repeated index reports ErrDuplicateOrb.
// Complexity: O(N_mos/64).
func (d *Det) ApplyDouble(spin1, spin2 Spin, h1, h2, p1, p2 int) (*Det, error) {
	if !spin1.valid() || !spin2.valid() {
		return nil, ErrBadSpin
	}
	ch1, _ := d.Channel(spin1)
	ch2, _ := d.Channel(spin2)
	if spin1 == spin2 {
		if err := checkDouble(ch1, h1, h2, p1, p2); err != nil {
			return nil, err
		}
	} else {
		if err := checkSingle(ch1, h1, p1); err != nil {
			return nil, err
		}
		if err := checkSingle(ch2, h2, p2); err != nil {
			return nil, err
		}
	}
	out := d.Clone()
	t1, _ := out.Channel(spin1)
	t2, _ := out.Channel(spin2)
	t1.put(h1, false)
	t2.put(h2, false)
	t1.put(p1, true)
	t2.put(p2, true)

	return out, nil
}
