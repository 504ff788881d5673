package geometry

import (
	"fmt"
	"math"

	"github.com/s-weil/fuchsian/moebius"
)

// Geodesic is an oriented geodesic of the upper half-plane, stored as its
// two distinct ideal endpoints. In the Euclidean picture it is either a
// vertical half-line (one endpoint at ∞) or a semicircle orthogonal to
// the real axis; that representation is recomputed on demand by Euclidean
// and never stored, so endpoint mapping stays exact under composition.
type Geodesic struct {
	start, end Boundary
}

// GeodesicShape is the Euclidean parametrization of a geodesic for
// downstream consumers: a vertical half-line at X, or a semicircle with
// the given Center and Radius on the real axis.
type GeodesicShape struct {
	Vertical bool
	X        float64 // abscissa of the vertical half-line
	Center   float64 // center of the semicircle on the real axis
	Radius   float64
}

// NewGeodesic constructs the geodesic from start to end. The endpoints
// must be distinct; coinciding endpoints yield ErrDegenerateGeodesic.
func NewGeodesic(start, end Boundary) (Geodesic, error) {
	if start.Equal(end) {
		return Geodesic{}, fmt.Errorf("%w: %v", ErrDegenerateGeodesic, start)
	}
	return Geodesic{start: start, end: end}, nil
}

// Start returns the starting ideal endpoint.
func (g Geodesic) Start() Boundary { return g.start }

// End returns the ending ideal endpoint.
func (g Geodesic) End() Boundary { return g.end }

// Map transforms the geodesic by mapping its two ideal endpoints.
// Boundary mapping is total, but a near-singular image whose endpoints
// collide numerically surfaces as ErrDegenerateGeodesic.
func (g Geodesic) Map(m moebius.Moebius) (Geodesic, error) {
	return NewGeodesic(g.start.Map(m), g.end.Map(m))
}

// Apply implements Primitive.
func (g Geodesic) Apply(m moebius.Moebius) (Primitive, error) {
	h, err := g.Map(m)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Euclidean returns the vertical-line or semicircle picture of g.
func (g Geodesic) Euclidean() GeodesicShape {
	if g.start.IsInfinity() {
		return GeodesicShape{Vertical: true, X: g.end.Real()}
	}
	if g.end.IsInfinity() {
		return GeodesicShape{Vertical: true, X: g.start.Real()}
	}
	s, e := g.start.Real(), g.end.Real()
	return GeodesicShape{Center: (s + e) / 2, Radius: math.Abs(e-s) / 2}
}

// Equal reports equality of the oriented endpoints within tolerance.
func (g Geodesic) Equal(o Geodesic) bool {
	return g.start.Equal(o.start) && g.end.Equal(o.end)
}

// String implements fmt.Stringer, e.g. "geodesic(δ(-1) → δ(1))".
func (g Geodesic) String() string {
	return fmt.Sprintf("geodesic(%v → %v)", g.start, g.end)
}
