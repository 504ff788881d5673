package group

import (
	"errors"
	"fmt"

	"github.com/s-weil/fuchsian/moebius"
)

var (
	// ErrEmptyGenerators is returned when no generators are supplied.
	ErrEmptyGenerators = errors.New("group: generator set must be non-empty")

	// ErrSingularGenerator is returned when a generator's determinant
	// vanishes within tolerance.
	ErrSingularGenerator = errors.New("group: singular generator")
)

// SignedGen is one entry of the signed-generator table: a generator or a
// generator inverse, tagged with the information the word enumerator
// needs for free reduction.
type SignedGen struct {
	// M is the normalized matrix of this letter.
	M moebius.Moebius
	// Base is the index of the underlying generator in Generators().
	Base int
	// Inverse marks letters that are derived inverses rather than
	// user-supplied generators.
	Inverse bool
	// Pair is the index (within Signed()) of the letter undoing this one.
	// An involution is its own pair.
	Pair int
}

// Group is a finitely generated Fuchsian group: an ordered, deduplicated
// set of determinant-normalized generators plus their inverses. Immutable
// after construction.
type Group struct {
	gens   []moebius.Moebius
	signed []SignedGen
}

// New builds a Group from raw generator matrices. Every matrix is
// normalized to determinant ±1 (ErrSingularGenerator if that fails, with
// the offending index attached); generators equal up to sign are stored
// once. At least one generator is required.
func New(raw ...moebius.Moebius) (*Group, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyGenerators
	}

	gens := make([]moebius.Moebius, 0, len(raw))
	for i, m := range raw {
		n, err := m.Normalize()
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrSingularGenerator, i, err)
		}
		if containsUpToSign(gens, n) {
			continue
		}
		gens = append(gens, n)
	}

	return &Group{gens: gens, signed: buildSigned(gens)}, nil
}

// containsUpToSign reports whether m already occurs in gens up to sign.
func containsUpToSign(gens []moebius.Moebius, m moebius.Moebius) bool {
	for _, g := range gens {
		if g.EqualUpToSign(m) {
			return true
		}
	}
	return false
}

// buildSigned lays out the generators followed by their inverses and
// cross-links every letter with the index that undoes it. An inverse
// already present among the letters (an involution, or a user-supplied
// inverse pair) is not appended again.
func buildSigned(gens []moebius.Moebius) []SignedGen {
	signed := make([]SignedGen, len(gens), 2*len(gens))
	for i, g := range gens {
		signed[i] = SignedGen{M: g, Base: i, Pair: -1}
	}
	for i := range gens {
		if signed[i].Pair >= 0 {
			continue
		}
		inv := gens[i].Inverse()
		found := -1
		for j := range signed {
			if signed[j].M.EqualUpToSign(inv) {
				found = j
				break
			}
		}
		if found >= 0 {
			signed[i].Pair = found
			if signed[found].Pair < 0 {
				signed[found].Pair = i
			}
			continue
		}
		signed = append(signed, SignedGen{M: inv, Base: i, Inverse: true, Pair: i})
		signed[i].Pair = len(signed) - 1
	}
	return signed
}

// NumGenerators returns the number of distinct generators after
// normalization and deduplication.
func (g *Group) NumGenerators() int {
	return len(g.gens)
}

// Generators returns a copy of the normalized generator list.
func (g *Group) Generators() []moebius.Moebius {
	out := make([]moebius.Moebius, len(g.gens))
	copy(out, g.gens)
	return out
}

// Signed returns a copy of the signed-generator table: generators first,
// derived inverses after, in a fixed order that makes every traversal
// over the group deterministic.
func (g *Group) Signed() []SignedGen {
	out := make([]SignedGen, len(g.signed))
	copy(out, g.signed)
	return out
}
