package moebius

import "math"

// Kind classifies a determinant-one Möbius transformation by its trace:
// |tr| < 2 rotates about a fixed point (elliptic), |tr| = 2 fixes a single
// ideal boundary point (parabolic, e.g. z ↦ z+1), and |tr| > 2 translates
// along a geodesic axis (hyperbolic, e.g. z ↦ 4z).
type Kind int

const (
	// Elliptic transformations fix one interior point (|trace| < 2).
	Elliptic Kind = iota
	// Parabolic transformations fix exactly one boundary point (|trace| = 2).
	Parabolic
	// Hyperbolic transformations fix two boundary points (|trace| > 2).
	Hyperbolic
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Elliptic:
		return "elliptic"
	case Parabolic:
		return "parabolic"
	default:
		return "hyperbolic"
	}
}

// Kind classifies m by |trace| against 2 within Epsilon. The
// classification is meaningful for matrices with determinant +1; callers
// should normalize first.
func (m Moebius) Kind() Kind {
	t := math.Abs(m.Trace())
	switch {
	case close(t, 2):
		return Parabolic
	case t < 2:
		return Elliptic
	default:
		return Hyperbolic
	}
}
