package dets

// DetArray is a fixed-size, contiguously-stored collection of determinants
// sharing one orbital count. It is the output container of the generators
// and the index space downstream matrix builders key their rows and columns
// by. The array owns its element storage: At hands out aliases into it, Set
// deep-copies the incoming determinant so no caller retains a handle into
// the array's backing memory.
type DetArray struct {
	nMos int
	dets []Det
}

// NewDetArray returns an array of n empty determinants over nMos orbitals.
// Complexity: O(n · N_mos/64).
func NewDetArray(n, nMos int) (*DetArray, error) {
	if n < 0 {
		return nil, ErrBadDetCount
	}
	proto, err := NewDet(nMos)
	if err != nil {
		return nil, err
	}
	dets := make([]Det, n)
	for i := range dets {
		dets[i] = *proto.Clone()
	}

	return &DetArray{nMos: nMos, dets: dets}, nil
}

// NewDetArrayFrom returns an array adopting the given determinants, which
// must all share the orbital count nMos. The slice header is copied but the
// determinant values are adopted as-is; callers hand over ownership (the
// generators construct fresh values for exactly this purpose).
// Complexity: O(n).
func NewDetArrayFrom(nMos int, dets []Det) (*DetArray, error) {
	if nMos <= 0 {
		return nil, ErrBadOrbCount
	}
	for i := range dets {
		if dets[i].NMos() != nMos {
			return nil, ErrSizeMismatch
		}
	}

	return newDetArray(nMos, dets), nil
}

// newDetArray adopts pre-validated determinants. Internal generator path.
func newDetArray(nMos int, dets []Det) *DetArray {
	return &DetArray{nMos: nMos, dets: dets}
}

// Len returns the number of determinants in the array.
func (a *DetArray) Len() int { return len(a.dets) }

// NMos returns the orbital count shared by every element.
func (a *DetArray) NMos() int { return a.nMos }

// At returns the determinant at index i, aliased into the array's storage.
// Returns ErrIndexOutOfRange outside [0, Len).
// Complexity: O(1).
func (a *DetArray) At(i int) (*Det, error) {
	if i < 0 || i >= len(a.dets) {
		return nil, ErrIndexOutOfRange
	}

	return &a.dets[i], nil
}

// Set overwrites slot i with a deep copy of d. Returns ErrIndexOutOfRange
// outside [0, Len), ErrNilDet on a nil determinant, and ErrSizeMismatch if
// d's orbital count differs from the array's.
// Complexity: O(N_mos/64).
func (a *DetArray) Set(i int, d *Det) error {
	if i < 0 || i >= len(a.dets) {
		return ErrIndexOutOfRange
	}
	if d == nil {
		return ErrNilDet
	}
	if d.NMos() != a.nMos {
		return ErrSizeMismatch
	}
	a.dets[i] = *d.Clone()

	return nil
}

// Dets returns the backing slice, aliased. Read-side convenience for
// range loops in downstream matrix builders; mutate via Set.
func (a *DetArray) Dets() []Det { return a.dets }
