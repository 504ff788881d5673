package geometry

import "errors"

var (
	// ErrPointOutOfDomain indicates a point left the open upper half-plane.
	ErrPointOutOfDomain = errors.New("geometry: point left the open upper half-plane")
	// ErrDegenerateGeodesic indicates the two ideal endpoints coincide.
	ErrDegenerateGeodesic = errors.New("geometry: geodesic endpoints coincide")
	// ErrInvalidHorocycle indicates a non-positive diameter or height.
	ErrInvalidHorocycle = errors.New("geometry: horocycle diameter must be positive")
	// ErrOrientation indicates an orientation-reversing matrix (det < 0)
	// was applied where the model requires det > 0.
	ErrOrientation = errors.New("geometry: orientation-reversing isometry not supported for this primitive")
)
