package dets

// Excitation generation. Every entry point is a pure function of its
// inputs: it proposes only excitations whose hole is occupied and particle
// unoccupied (so the phase preconditions hold for every produced
// determinant), materializes each result as an independent value, and
// returns the collection as a DetArray.
//
// Ordering is deterministic. Singles iterate holes (outer) × particles
// (inner) per channel, alpha results before beta. Same-spin doubles
// enumerate positional combinations h1<h2 and p1<p2 over the ascending
// orbital lists, guaranteeing each unordered pair exactly once. Opposite-
// spin doubles iterate alpha singles (outer) × beta singles (inner).

// excSpace holds the hole/particle orbital lists of both channels,
// ascending, as fed to the enumeration loops.
type excSpace struct {
	aHoles, aParts []int
	bHoles, bParts []int
}

// fullSpace derives the unconstrained excitation space of d: every
// occupied orbital is a hole candidate, every unoccupied one a particle
// candidate, per channel.
func fullSpace(d *Det) excSpace {
	return excSpace{
		aHoles: d.Alpha.Occupied(),
		aParts: d.Alpha.Unoccupied(),
		bHoles: d.Beta.Occupied(),
		bParts: d.Beta.Unoccupied(),
	}
}

// constrainedSpace derives the excitation space of d narrowed through
// constraint c and the exclusive active-space bound maxOrb.
func constrainedSpace(d *Det, c Constraint, maxOrb int) (excSpace, error) {
	holeMask, partMask, err := c.masks(d.NMos())
	if err != nil {
		return excSpace{}, err
	}
	var sp excSpace
	if sp.aHoles, sp.aParts, err = allowedExcitations(&d.Alpha, holeMask, partMask, maxOrb); err != nil {
		return excSpace{}, err
	}
	if sp.bHoles, sp.bParts, err = allowedExcitations(&d.Beta, holeMask, partMask, maxOrb); err != nil {
		return excSpace{}, err
	}

	return sp, nil
}

// singlesByMask applies every (hole, particle) pair of one channel to d,
// holes outer, particles inner.
func singlesByMask(d *Det, spin Spin, holes, parts []int) []Det {
	res := make([]Det, 0, len(holes)*len(parts))
	for _, h := range holes {
		for _, p := range parts {
			out := d.Clone()
			target, _ := out.Channel(spin)
			target.put(h, false)
			target.put(p, true)
			res = append(res, *out)
		}
	}

	return res
}

// spinSinglesByMask applies every (hole, particle) pair to a lone channel,
// returning excited channel values rather than full determinants. Feeds the
// opposite-spin doubles product.
func spinSinglesByMask(s *SpinDet, holes, parts []int) []SpinDet {
	res := make([]SpinDet, 0, len(holes)*len(parts))
	for _, h := range holes {
		for _, p := range parts {
			res = append(res, *s.applySingle(h, p))
		}
	}

	return res
}

// ssDoublesByMask applies every combination of two distinct holes and two
// distinct particles within one channel. holes and parts must be ascending;
// the positional loops (h1 before h2, p1 before p2) then yield each
// unordered pair exactly once.
func ssDoublesByMask(d *Det, spin Spin, holes, parts []int) []Det {
	var res []Det
	for i1 := 0; i1 < len(holes)-1; i1++ {
		for i2 := i1 + 1; i2 < len(holes); i2++ {
			for j1 := 0; j1 < len(parts)-1; j1++ {
				for j2 := j1 + 1; j2 < len(parts); j2++ {
					out := d.Clone()
					target, _ := out.Channel(spin)
					target.put(holes[i1], false)
					target.put(holes[i2], false)
					target.put(parts[j1], true)
					target.put(parts[j2], true)
					res = append(res, *out)
				}
			}
		}
	}

	return res
}

// singles produces the full singles list for an excitation space.
func singles(d *Det, sp excSpace) []Det {
	alpha := singlesByMask(d, Alpha, sp.aHoles, sp.aParts)
	beta := singlesByMask(d, Beta, sp.bHoles, sp.bParts)

	return append(alpha, beta...)
}

// ssDoubles produces the full same-spin doubles list for a space.
func ssDoubles(d *Det, sp excSpace) []Det {
	alpha := ssDoublesByMask(d, Alpha, sp.aHoles, sp.aParts)
	beta := ssDoublesByMask(d, Beta, sp.bHoles, sp.bParts)

	return append(alpha, beta...)
}

// osDoubles produces the full opposite-spin doubles list for a space:
// the cartesian product of alpha-channel singles and beta-channel singles,
// each pair recombined into a full determinant.
func osDoubles(d *Det, sp excSpace) []Det {
	alphaSingles := spinSinglesByMask(&d.Alpha, sp.aHoles, sp.aParts)
	betaSingles := spinSinglesByMask(&d.Beta, sp.bHoles, sp.bParts)

	res := make([]Det, 0, len(alphaSingles)*len(betaSingles))
	for ai := range alphaSingles {
		for bi := range betaSingles {
			res = append(res, Det{
				Alpha: *alphaSingles[ai].Clone(),
				Beta:  *betaSingles[bi].Clone(),
			})
		}
	}

	return res
}

// Singles returns every singly-excited determinant reachable from d:
// per channel, the cartesian product of occupied (holes) and unoccupied
// (particles) orbitals, alpha results before beta.
// Count: k_a(N-k_a) + k_b(N-k_b).
// Complexity: O(count · N_mos/64).
func Singles(d *Det) (*DetArray, error) {
	if d == nil {
		return nil, ErrNilDet
	}

	return newDetArray(d.NMos(), singles(d, fullSpace(d))), nil
}

// SinglesConstrained is Singles with holes and particles first narrowed
// through constraint c and the exclusive bound maxOrb.
func SinglesConstrained(d *Det, c Constraint, maxOrb int) (*DetArray, error) {
	if d == nil {
		return nil, ErrNilDet
	}
	sp, err := constrainedSpace(d, c, maxOrb)
	if err != nil {
		return nil, err
	}

	return newDetArray(d.NMos(), singles(d, sp)), nil
}

// SameSpinDoubles returns every doubly-excited determinant with both
// hole/particle pairs in one channel, alpha results before beta.
// Count per channel: C(k,2)·C(N-k,2).
// Complexity: O(count · N_mos/64).
func SameSpinDoubles(d *Det) (*DetArray, error) {
	if d == nil {
		return nil, ErrNilDet
	}

	return newDetArray(d.NMos(), ssDoubles(d, fullSpace(d))), nil
}

// SameSpinDoublesConstrained is SameSpinDoubles over the constrained space.
func SameSpinDoublesConstrained(d *Det, c Constraint, maxOrb int) (*DetArray, error) {
	if d == nil {
		return nil, ErrNilDet
	}
	sp, err := constrainedSpace(d, c, maxOrb)
	if err != nil {
		return nil, err
	}

	return newDetArray(d.NMos(), ssDoubles(d, sp)), nil
}

// OppSpinDoubles returns every doubly-excited determinant with one
// hole/particle pair per channel: the cartesian product of alpha singles
// and beta singles.
// Count: k_a(N-k_a) · k_b(N-k_b).
// Complexity: O(count · N_mos/64).
func OppSpinDoubles(d *Det) (*DetArray, error) {
	if d == nil {
		return nil, ErrNilDet
	}

	return newDetArray(d.NMos(), osDoubles(d, fullSpace(d))), nil
}

// OppSpinDoublesConstrained is OppSpinDoubles over the constrained space.
func OppSpinDoublesConstrained(d *Det, c Constraint, maxOrb int) (*DetArray, error) {
	if d == nil {
		return nil, ErrNilDet
	}
	sp, err := constrainedSpace(d, c, maxOrb)
	if err != nil {
		return nil, err
	}

	return newDetArray(d.NMos(), osDoubles(d, sp)), nil
}

// Connected returns the union (concatenated, not deduplicated) of Singles,
// SameSpinDoubles and OppSpinDoubles for d, in that order.
func Connected(d *Det) (*DetArray, error) {
	if d == nil {
		return nil, ErrNilDet
	}
	sp := fullSpace(d)
	all := singles(d, sp)
	all = append(all, ssDoubles(d, sp)...)
	all = append(all, osDoubles(d, sp)...)

	return newDetArray(d.NMos(), all), nil
}

// ConnectedConstrained is Connected over the constrained space.
func ConnectedConstrained(d *Det, c Constraint, maxOrb int) (*DetArray, error) {
	if d == nil {
		return nil, ErrNilDet
	}
	sp, err := constrainedSpace(d, c, maxOrb)
	if err != nil {
		return nil, err
	}
	all := singles(d, sp)
	all = append(all, ssDoubles(d, sp)...)
	all = append(all, osDoubles(d, sp)...)

	return newDetArray(d.NMos(), all), nil
}
