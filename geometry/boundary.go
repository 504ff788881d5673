package geometry

import (
	"fmt"
	"math"

	"github.com/s-weil/fuchsian/moebius"
)

// Boundary is an ideal boundary point of the upper half-plane: a real
// number or the point at infinity. Möbius transformations with real
// entries permute the boundary, so Map is total and never errors.
type Boundary struct {
	at  float64
	inf bool
}

// Infinity returns the boundary point ∞.
func Infinity() Boundary {
	return Boundary{inf: true}
}

// Regular returns the boundary point at the real coordinate x.
func Regular(x float64) Boundary {
	return Boundary{at: x}
}

// IsInfinity reports whether b is the point at infinity.
func (b Boundary) IsInfinity() bool {
	return b.inf
}

// Real returns the real coordinate of b, or +Inf for the point at infinity.
func (b Boundary) Real() float64 {
	if b.inf {
		return math.Inf(1)
	}
	return b.at
}

// Map applies the Möbius action of m on the boundary:
// ∞ ↦ A/C (or ∞ when C = 0) and x ↦ (Ax+B)/(Cx+D) (or ∞ when the
// denominator vanishes). Vanishing is decided against moebius.Epsilon.
func (b Boundary) Map(m moebius.Moebius) Boundary {
	if b.inf {
		// A and C cannot both be zero for an invertible matrix.
		if math.Abs(m.C) <= moebius.Epsilon {
			return Infinity()
		}
		return Regular(m.A / m.C)
	}
	denom := m.C*b.at + m.D
	if math.Abs(denom) <= moebius.Epsilon {
		return Infinity()
	}
	return Regular((m.A*b.at + m.B) / denom)
}

// Equal reports equality within moebius.Epsilon; ∞ only equals ∞.
func (b Boundary) Equal(o Boundary) bool {
	if b.inf || o.inf {
		return b.inf == o.inf
	}
	scale := math.Max(math.Abs(b.at), math.Abs(o.at))
	return math.Abs(b.at-o.at) <= moebius.Epsilon*(1+scale)
}

// String implements fmt.Stringer, e.g. "∞" or "δ(-1)".
func (b Boundary) String() string {
	if b.inf {
		return "∞"
	}
	return fmt.Sprintf("δ(%g)", b.at)
}
