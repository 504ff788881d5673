package geometry

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/s-weil/fuchsian/moebius"
)

// Point is a point of the open upper half-plane, stored as a complex
// coordinate with strictly positive imaginary part.
type Point complex128

// NewPoint constructs the point re + im·i, rejecting coordinates outside
// the open half-plane with ErrPointOutOfDomain.
func NewPoint(re, im float64) (Point, error) {
	if !(im > 0) || math.IsInf(im, 0) || math.IsNaN(re) || math.IsInf(re, 0) {
		return 0, fmt.Errorf("%w: (%g, %g)", ErrPointOutOfDomain, re, im)
	}
	return Point(complex(re, im)), nil
}

// Re returns the real part.
func (p Point) Re() float64 { return real(complex128(p)) }

// Im returns the imaginary part.
func (p Point) Im() float64 { return imag(complex128(p)) }

// Map applies the fractional-linear map z ↦ (Az+B)/(Cz+D) and validates
// that the image stays in the open half-plane. The image of a point under
// a determinant-one matrix satisfies Im z' = Im z / |Cz+D|², so a
// non-positive imaginary part signals either an orientation-reversing
// matrix or an accumulated numerical fault; both surface as
// ErrPointOutOfDomain rather than being clamped.
func (p Point) Map(m moebius.Moebius) (Point, error) {
	z := complex128(p)
	denom := complex(m.C, 0)*z + complex(m.D, 0)
	if cmplx.Abs(denom) <= moebius.Epsilon {
		return 0, fmt.Errorf("%w: %v maps %v to the ideal boundary", ErrPointOutOfDomain, m, p)
	}
	w := (complex(m.A, 0)*z + complex(m.B, 0)) / denom
	if !(imag(w) > 0) || math.IsInf(imag(w), 0) || math.IsInf(real(w), 0) {
		return 0, fmt.Errorf("%w: %v maps %v to (%g, %g)", ErrPointOutOfDomain, m, p, real(w), imag(w))
	}
	return Point(w), nil
}

// Apply implements Primitive.
func (p Point) Apply(m moebius.Moebius) (Primitive, error) {
	q, err := p.Map(m)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Equal reports equality within moebius.Epsilon, componentwise.
func (p Point) Equal(q Point) bool {
	return floatClose(p.Re(), q.Re()) && floatClose(p.Im(), q.Im())
}

// String implements fmt.Stringer, e.g. "(0, 1)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.Re(), p.Im())
}

// Dist returns the hyperbolic distance between p and q in the half-plane
// model: arcosh(1 + |p−q|² / (2·Im p·Im q)).
func Dist(p, q Point) float64 {
	dx := p.Re() - q.Re()
	dy := p.Im() - q.Im()
	return math.Acosh(1 + (dx*dx+dy*dy)/(2*p.Im()*q.Im()))
}

// floatClose is the shared combined absolute/relative comparison.
func floatClose(x, y float64) bool {
	scale := math.Max(math.Abs(x), math.Abs(y))
	return math.Abs(x-y) <= moebius.Epsilon*(1+scale)
}
