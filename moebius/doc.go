// Package moebius implements real 2×2 Möbius transformations, the matrix
// representation of orientation-preserving isometries of the hyperbolic
// plane (elements of SL(2,ℝ) considered up to sign, i.e. PSL(2,ℝ)).
//
// What
//
//   - Moebius is an immutable 2×2 real matrix [A, B; C, D] acting on the
//     upper half-plane as the fractional-linear map z ↦ (Az+B)/(Cz+D).
//   - Normalize rescales a matrix by 1/√|det| so its determinant becomes
//     exactly ±1 (up to floating error); singular input is rejected.
//   - Compose multiplies two matrices and immediately renormalizes the
//     determinant. Renormalization is mandatory, not optional cleanup:
//     it is what keeps thousand-letter words numerically sane.
//   - Inverse uses the closed-form adjugate divided by the determinant,
//     never a general inversion routine.
//   - EqualUpToSign compares a matrix against both b and −b, since M and
//     −M act identically on the hyperbolic plane.
//   - Kind classifies a determinant-one matrix as Elliptic, Parabolic or
//     Hyperbolic by the magnitude of its trace.
//
// Determinism & tolerances
//
//	All comparisons use the package constant Epsilon (combined absolute
//	and relative), and determinant-vanishing checks use DetEpsilon. The
//	tolerances are configuration constants of the package; callers never
//	pass per-call thresholds.
//
// Errors
//
//   - ErrSingular   if a matrix with vanishing determinant is normalized
//     or inverted.
//   - ErrDegenerate if a composition blows up numerically (non-finite
//     entries or collapsed determinant after long products).
//
// Usage
//
//	a := moebius.New(2, 0, 0, 0.5)  // z ↦ 4z
//	b := moebius.New(1, 1, 0, 1)    // z ↦ z+1
//	ab, err := a.Compose(b)
//	if err != nil {
//	    // ErrDegenerate
//	}
//	_ = ab.Inverse()
package moebius
