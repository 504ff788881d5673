// Package words enumerates the freely reduced words of a finitely
// generated Fuchsian group in deterministic breadth-first order, together
// with the composed Möbius matrix of every word.
//
// What
//
//   - Enumerator performs a breadth-first traversal of the free-reduced
//     Cayley graph spanned by the group's signed generators. Each node
//     holds its word (signed-generator indices) and its composed matrix;
//     children are visited in the fixed order of group.Signed(), skipping
//     the one letter that would undo the last step. Trivially
//     backtracking words are therefore excluded at construction time, not
//     filtered after the fact.
//   - The identity IS emitted, first, as the empty word. For one
//     non-involutive generator and depth 3 this yields exactly the seven
//     words ε, a, a⁻¹, a², a⁻², a³, a⁻³.
//   - Two distinct freely reduced words MAY denote the same group
//     element; detecting that would require solving the word problem,
//     which is undecidable in general and a documented non-goal.
//   - Enumeration is lazy and pull-based: Next computes one word at a
//     time, so a consumer may stop early without paying for the rest of
//     an exponential traversal. A fresh Enumerator over the same group
//     and options reproduces the identical sequence.
//
// Bounds
//
//	Exactly one termination policy is required:
//
//	  - WithMaxWordLength(L): all freely reduced words of length ≤ L.
//	    Count is exponential in L and the generator count — expected, not
//	    a defect.
//	  - WithRegion(center, radius): words in increasing length order; a
//	    branch stops expanding once its matrix carries the region center
//	    outside the hyperbolic disk of the given radius. For a free
//	    discrete group this terminates: a disk contains finitely many
//	    orbit points and each corresponds to one reduced word. A group
//	    with relations can revisit the center through ever longer words;
//	    pair the region bound with WithContext there.
//
// Failure containment
//
//	A composition that degenerates numerically aborts only that branch:
//	the OnAbort hook fires with the offending word, the Aborted counter
//	increments, and sibling branches continue. Nothing is silently
//	swallowed — every pruned or aborted branch is observable through the
//	hooks and Stats.
//
// Complexity (k = signed generators, L = depth bound)
//
//   - Time:   O(k·(k−1)^(L−1)) words in the worst (free) case
//   - Memory: frontier only — bounded by the last breadth-first layer
//
// Usage
//
//	enum, err := words.New(g, words.WithMaxWordLength(3))
//	if err != nil {
//	    // ErrGroupNil, ErrNoBound, ErrBoundConflict, ErrOptionViolation
//	}
//	for {
//	    w, m, ok := enum.Next()
//	    if !ok {
//	        break
//	    }
//	    _, _ = w, m
//	}
//
// Options
//
//   - WithMaxWordLength(L): depth bound (L > 0).
//   - WithRegion(center, radius): region bound (radius > 0).
//   - WithContext(ctx): cancellation between pulls.
//   - WithOnPrune(fn): hook for words cut by the region bound.
//   - WithOnAbort(fn): hook for numerically aborted branches.
//
// Errors
//
//   - ErrGroupNil        if the group pointer is nil.
//   - ErrNoBound         if neither bound is configured.
//   - ErrBoundConflict   if both bounds are configured.
//   - ErrOptionViolation if an option value is invalid.
package words
