package orbit

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/s-weil/fuchsian/geometry"
	"github.com/s-weil/fuchsian/group"
	"github.com/s-weil/fuchsian/words"
)

// ErrSampleSize is returned when a non-positive sample size is requested.
var ErrSampleSize = errors.New("orbit: sample size must be positive")

// PickMode selects how Sample picks the next generator to apply.
type PickMode int

const (
	// Sequential cycles round-robin through the signed-generator table
	// (generators first, then inverses) so a letter is never immediately
	// undone by its own inverse.
	Sequential PickMode = iota

	// Random draws uniformly from the signed-generator table, using a
	// seedable source with a fixed default seed for reproducibility.
	Random
)

// SampleOption configures Sample via functional arguments.
type SampleOption func(*sampleOptions)

type sampleOptions struct {
	mode PickMode
	seed int64
}

// WithPickMode selects Sequential (default) or Random generator picking.
func WithPickMode(mode PickMode) SampleOption {
	return func(o *sampleOptions) { o.mode = mode }
}

// WithSeed sets the seed of the Random pick mode.
func WithSeed(seed int64) SampleOption {
	return func(o *sampleOptions) { o.seed = seed }
}

// Sample walks the orbit of base by repeatedly applying one generator at
// a time to a moving cursor and collecting the n visited primitives. This
// is the cheap scatter sampler: it explores a single path through the
// group rather than enumerating words, so it produces n points in O(n)
// regardless of the group's growth. A group with a single generator walks
// that generator alone; otherwise the full signed table is cycled (or
// drawn from) so that consecutive steps do not cancel.
//
// A failed transform stops the walk and returns the primitives collected
// so far alongside the error.
func Sample(g *group.Group, base geometry.Primitive, n int, opts ...SampleOption) ([]geometry.Primitive, error) {
	if g == nil {
		return nil, words.ErrGroupNil
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSampleSize, n)
	}
	o := sampleOptions{mode: Sequential, seed: 1}
	for _, opt := range opts {
		opt(&o)
	}

	signed := g.Signed()
	walk := make([]geometry.Primitive, 0, n)
	pick := pickerFor(o, len(signed), g.NumGenerators())

	cursor := base
	for i := 0; i < n; i++ {
		m := signed[pick(i)].M
		next, err := cursor.Apply(m)
		if err != nil {
			return walk, fmt.Errorf("orbit: sample step %d: %w", i, err)
		}
		cursor = next
		walk = append(walk, cursor)
	}
	return walk, nil
}

// pickerFor returns the index picker for the configured mode. A single
// generator is walked alone even though its inverse is in the table;
// alternating a and a⁻¹ would oscillate between two points forever.
func pickerFor(o sampleOptions, signedLen, numGens int) func(step int) int {
	if numGens == 1 {
		return func(int) int { return 0 }
	}
	if o.mode == Random {
		r := rand.New(rand.NewSource(o.seed))
		return func(int) int { return r.Intn(signedLen) }
	}
	return func(step int) int { return step % signedLen }
}
