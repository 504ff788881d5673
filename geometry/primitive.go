package geometry

import "github.com/s-weil/fuchsian/moebius"

// Primitive is the common interface of the transformable geometric kinds:
// Point, Geodesic and Horocycle. Apply returns a new Primitive of the same
// kind; the receiver is never mutated. Errors are localized to the single
// transform in which they occur.
type Primitive interface {
	// Apply transforms the primitive by the Möbius action of m.
	Apply(m moebius.Moebius) (Primitive, error)
}
