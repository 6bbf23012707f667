package dets

// Det is one full electronic configuration: a pair of same-length spin
// channels, conventionally alpha and beta. Both channels always share the
// same orbital count; the constructors enforce it.
type Det struct {
	Alpha SpinDet
	Beta  SpinDet
}

// NewDet returns a determinant over nMos orbitals with both channels empty.
// Complexity: O(N_mos/64).
func NewDet(nMos int) (*Det, error) {
	a, err := NewSpinDet(nMos)
	if err != nil {
		return nil, err
	}
	b, _ := NewSpinDet(nMos) // same nMos already validated

	return &Det{Alpha: *a, Beta: *b}, nil
}

// NewDetFromChannels returns a determinant combining two existing channels.
// Each channel's value is copied, not aliased; the inputs stay untouched.
// Returns ErrNilDet on a nil channel and ErrSizeMismatch unless both
// channels share one orbital count.
// Complexity: O(N_mos/64).
func NewDetFromChannels(alpha, beta *SpinDet) (*Det, error) {
	if alpha == nil || beta == nil {
		return nil, ErrNilDet
	}
	if alpha.nMos != beta.nMos {
		return nil, ErrSizeMismatch
	}

	return &Det{Alpha: *alpha.Clone(), Beta: *beta.Clone()}, nil
}

// NewDetFill returns the ground-state determinant over nMos orbitals with
// the lowest nAlpha and nBeta orbitals occupied in the respective channels.
// Complexity: O(N_mos/64).
func NewDetFill(nMos, nAlpha, nBeta int) (*Det, error) {
	a, err := NewSpinDetFill(nMos, nAlpha)
	if err != nil {
		return nil, err
	}
	b, err := NewSpinDetFill(nMos, nBeta)
	if err != nil {
		return nil, err
	}

	return &Det{Alpha: *a, Beta: *b}, nil
}

// NMos returns the shared orbital count of both channels.
func (d *Det) NMos() int { return d.Alpha.nMos }

// Channel returns the channel selected by spin, aliased for in-place reads
// and writes on this determinant.
func (d *Det) Channel(spin Spin) (*SpinDet, error) {
	switch spin {
	case Alpha:
		return &d.Alpha, nil
	case Beta:
		return &d.Beta, nil
	default:
		return nil, ErrBadSpin
	}
}

// ExcDet returns the excitation determinant of a and b: the channel-wise
// symmetric difference, whose set bits mark every orbital in which the two
// configurations differ. Popcount of each channel divided by two is the
// excitation degree of that channel.
// Complexity: O(N_mos/64).
func ExcDet(a, b *Det) (*Det, error) {
	if a == nil || b == nil {
		return nil, ErrNilDet
	}
	if a.NMos() != b.NMos() {
		return nil, ErrSizeMismatch
	}
	da, err := a.Alpha.Xor(&b.Alpha)
	if err != nil {
		return nil, err
	}
	db, err := a.Beta.Xor(&b.Beta)
	if err != nil {
		return nil, err
	}

	return &Det{Alpha: *da, Beta: *db}, nil
}

// Equal reports whether both channels match.
func (d *Det) Equal(other *Det) bool {
	if other == nil {
		return false
	}

	return d.Alpha.Equal(&other.Alpha) && d.Beta.Equal(&other.Beta)
}

// Clone returns an independent deep copy of the determinant.
// Complexity: O(N_mos/64).
func (d *Det) Clone() *Det {
	return &Det{Alpha: *d.Alpha.Clone(), Beta: *d.Beta.Clone()}
}

// String renders the determinant as "alpha|beta" occupation strings with
// orbital 0 leftmost in each channel. Debug aid only.
func (d *Det) String() string {
	return d.Alpha.String() + "|" + d.Beta.String()
}
