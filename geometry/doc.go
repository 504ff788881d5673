// Package geometry provides the geometric primitives of the Poincaré
// upper half-plane model — points, ideal boundary points, oriented
// geodesics and horocycles — together with the Möbius group action on
// each of them.
//
// What
//
//   - Point: a complex coordinate with strictly positive imaginary part.
//     Transforming a point validates that the image stays in the open
//     half-plane; it is never silently clamped.
//   - Boundary: an ideal boundary point, either a real number or ∞.
//     Möbius transformations permute the boundary without error.
//   - Geodesic: an oriented geodesic, stored as its two distinct ideal
//     endpoints. The Euclidean picture (vertical half-line or semicircle
//     orthogonal to the real axis) is recomputed on demand via Euclidean.
//   - Horocycle: a curve tangent to the boundary, stored as tangency
//     point plus Euclidean diameter (or the height of a horizontal line
//     when tangent at ∞). Transforming a horocycle uses the exact
//     conformal-distortion factor at the tangency point, diam' =
//     diam/(C·x+D)², derived from the derivative of the map — never a
//     numerical approximation that would compound over deep words.
//   - Primitive: the common interface of the three transformable kinds;
//     Apply(m) produces a new Primitive and leaves the receiver untouched.
//
// Determinism & tolerances
//
//	Comparisons reuse moebius.Epsilon; primitives are immutable value
//	types and safe to share between concurrent traversals.
//
// Errors
//
//   - ErrPointOutOfDomain   a transformed point left the open half-plane
//     (bad input or an accumulated numerical fault).
//   - ErrDegenerateGeodesic the two endpoints of a geodesic coincide.
//   - ErrInvalidHorocycle   a non-positive diameter or height.
//   - ErrOrientation        an orientation-reversing matrix (det < 0) was
//     applied to a primitive that requires det > 0.
//
// Usage
//
//	p, _ := geometry.NewPoint(0, 1) // the point i
//	a := moebius.New(2, 0, 0, 0.5)  // z ↦ 4z
//	img, err := p.Apply(a)          // the point 4i
//	_ = img
//	_ = err
package geometry
