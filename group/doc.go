// Package group constructs finitely generated Fuchsian groups from raw
// generator matrices and exposes the signed-generator table that drives
// word enumeration.
//
// What
//
//   - New normalizes every raw generator to determinant ±1, rejects
//     singular matrices, and drops duplicates up to sign — [2, 1; 1, 1]
//     and [4, 2; 2, 2] project to the same element and are stored once.
//   - Signed returns the generators followed by their inverses in a fixed
//     order. Every entry carries a Pair index naming the letter that
//     undoes it; an involution (a generator equal to its own inverse up
//     to sign, like [0, −1; 1, 0]) is stored once and is its own pair.
//     The Pair table is exactly the free-reduction rule consumed by the
//     words package: a letter must never directly follow its pair.
//   - A Group is immutable after construction and safe to share between
//     any number of concurrent traversals.
//
// Errors
//
//   - ErrEmptyGenerators   no generators were supplied.
//   - ErrSingularGenerator a generator's determinant vanishes within
//     tolerance (the offending index is attached).
//
// Usage
//
//	t := moebius.New(1, 1, 0, 1)  // z ↦ z+1
//	s := moebius.New(0, -1, 1, 0) // z ↦ -1/z
//	g, err := group.New(t, s)     // the modular group PSL(2,ℤ)
//	if err != nil {
//	    // ErrEmptyGenerators or ErrSingularGenerator
//	}
//	_ = g.Signed() // [t, s, t⁻¹] — s is its own inverse up to sign
package group
