package geometry

import (
	"fmt"
	"math"

	"github.com/s-weil/fuchsian/moebius"
)

// Horocycle is a curve tangent to the ideal boundary: a Euclidean circle
// of the given diameter tangent at a regular boundary point, or a
// horizontal line at height Diam when tangent at ∞. The pair (tangency,
// diameter) is the stored representation; the Euclidean picture is
// recomputed on demand.
type Horocycle struct {
	at   Boundary
	diam float64
}

// HorocycleShape is the Euclidean parametrization of a horocycle: a
// horizontal line Im z = Height, or a circle with Center and Radius.
type HorocycleShape struct {
	Line   bool
	Height float64
	Center complex128 // circle case: (tangency, radius)
	Radius float64
}

// NewHorocycle constructs the horocycle tangent at the given boundary
// point. diam is the Euclidean diameter of the circle, or the height of
// the horizontal line when tangent at ∞; it must be strictly positive.
func NewHorocycle(at Boundary, diam float64) (Horocycle, error) {
	if !(diam > 0) || math.IsInf(diam, 0) {
		return Horocycle{}, fmt.Errorf("%w: %g", ErrInvalidHorocycle, diam)
	}
	return Horocycle{at: at, diam: diam}, nil
}

// Tangency returns the boundary point the horocycle touches.
func (h Horocycle) Tangency() Boundary { return h.at }

// Diam returns the Euclidean diameter (or line height for tangency ∞).
func (h Horocycle) Diam() float64 { return h.diam }

// Map transforms the horocycle. The new diameter comes from the exact
// conformal-distortion factor of the map at the tangency point: for a
// determinant-one matrix the derivative at x is 1/(Cx+D)², so
//
//	circle at x, diam d   ↦  circle at (Ax+B)/(Cx+D), diam d/(Cx+D)²
//	circle at x, Cx+D = 0 ↦  horizontal line at height 1/(C²·d)
//	line at height t      ↦  circle at A/C, diam 1/(C²·t)   (C ≠ 0)
//	line at height t      ↦  line at height t·A/D           (C = 0)
//
// Tangency to the boundary is therefore preserved exactly, up to floating
// error. Orientation-reversing matrices (det < 0) would map the horocycle
// out of the model and are rejected with ErrOrientation.
func (h Horocycle) Map(m moebius.Moebius) (Horocycle, error) {
	if m.Det() < 0 {
		return Horocycle{}, fmt.Errorf("%w: det(%v) < 0", ErrOrientation, m)
	}
	if h.at.IsInfinity() {
		if math.Abs(m.C) <= moebius.Epsilon {
			// Still tangent at ∞; heights scale by A/D = A² for det 1.
			return NewHorocycle(Infinity(), h.diam*m.A/m.D)
		}
		return NewHorocycle(Regular(m.A/m.C), 1/(m.C*m.C*h.diam))
	}
	x := h.at.Real()
	s := m.C*x + m.D
	if math.Abs(s) <= moebius.Epsilon {
		// The tangency point maps to ∞.
		return NewHorocycle(Infinity(), 1/(m.C*m.C*h.diam))
	}
	return NewHorocycle(Regular((m.A*x+m.B)/s), h.diam/(s*s))
}

// Apply implements Primitive.
func (h Horocycle) Apply(m moebius.Moebius) (Primitive, error) {
	k, err := h.Map(m)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// Euclidean returns the horizontal-line or circle picture of h.
func (h Horocycle) Euclidean() HorocycleShape {
	if h.at.IsInfinity() {
		return HorocycleShape{Line: true, Height: h.diam}
	}
	r := h.diam / 2
	return HorocycleShape{Center: complex(h.at.Real(), r), Radius: r}
}

// Equal reports equality of tangency and diameter within tolerance.
func (h Horocycle) Equal(o Horocycle) bool {
	return h.at.Equal(o.at) && floatClose(h.diam, o.diam)
}

// String implements fmt.Stringer, e.g. "horocycle(δ(0), 1)".
func (h Horocycle) String() string {
	return fmt.Sprintf("horocycle(%v, %g)", h.at, h.diam)
}
