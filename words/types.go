// Package words defines the word type, tunable options and error
// definitions for breadth-first word enumeration.
package words

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/s-weil/fuchsian/geometry"
)

// Sentinel errors for enumerator construction.
var (
	// ErrGroupNil is returned if a nil group pointer is passed.
	ErrGroupNil = errors.New("words: group is nil")

	// ErrNoBound is returned when neither a depth nor a region bound is set.
	ErrNoBound = errors.New("words: a depth or region bound is required")

	// ErrBoundConflict is returned when both bounds are set; they are
	// mutually exclusive.
	ErrBoundConflict = errors.New("words: depth and region bounds are mutually exclusive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("words: invalid option supplied")
)

// Word is a freely reduced word: an ordered sequence of indices into
// group.Signed(). The empty word is the identity. The group element of a
// word is the left-to-right product of the corresponding matrices.
type Word []int

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	out := make(Word, len(w))
	copy(out, w)
	return out
}

// String implements fmt.Stringer: "ε" for the identity, else the letter
// indices joined by "·", e.g. "0·2·0".
func (w Word) String() string {
	if len(w) == 0 {
		return "ε"
	}
	parts := make([]string, len(w))
	for i, j := range w {
		parts[i] = strconv.Itoa(j)
	}
	return strings.Join(parts, "·")
}

// Stats counts traversal events. Every branch cut is recorded, so no
// abort is silent.
type Stats struct {
	// Emitted is the number of words returned by Next so far.
	Emitted int
	// Pruned is the number of words cut by the region bound.
	Pruned int
	// Aborted is the number of branches dropped after numerical failure.
	Aborted int
}

// Option configures enumeration via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// New is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of a traversal.
type Options struct {
	// Ctx allows cancellation between pulls.
	Ctx context.Context

	// MaxWordLength bounds the word length (depth bound).
	MaxWordLength int

	// Center and Radius describe the region bound: the hyperbolic disk
	// of the given radius around Center.
	Center geometry.Point
	Radius float64

	// OnPrune is called when the region bound cuts a word.
	OnPrune func(w Word)

	// OnAbort is called when a branch is dropped after a numerical
	// failure; the offending word and error are attached.
	OnAbort func(w Word, err error)

	hasDepth  bool
	hasRegion bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no-op hooks
// and no bound configured. A bound must be supplied explicitly; New
// rejects unbounded traversals with ErrNoBound.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnPrune: func(Word) {},
		OnAbort: func(Word, error) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxWordLength enables the depth bound: enumerate all freely reduced
// words of length ≤ l. l must be positive.
func WithMaxWordLength(l int) Option {
	return func(o *Options) {
		if l <= 0 {
			o.err = fmt.Errorf("%w: MaxWordLength must be positive (%d)", ErrOptionViolation, l)
			return
		}
		o.MaxWordLength = l
		o.hasDepth = true
	}
}

// WithRegion enables the region bound: a branch stops expanding once its
// matrix carries center outside the hyperbolic disk of the given radius.
// center must lie in the open half-plane and radius must be positive.
func WithRegion(center geometry.Point, radius float64) Option {
	return func(o *Options) {
		if !(center.Im() > 0) {
			o.err = fmt.Errorf("%w: region center %v outside the half-plane", ErrOptionViolation, center)
			return
		}
		if !(radius > 0) {
			o.err = fmt.Errorf("%w: region radius must be positive (%g)", ErrOptionViolation, radius)
			return
		}
		o.Center = center
		o.Radius = radius
		o.hasRegion = true
	}
}

// WithOnPrune registers a callback for region-pruned words.
func WithOnPrune(fn func(w Word)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// WithOnAbort registers a callback for numerically aborted branches.
func WithOnAbort(fn func(w Word, err error)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAbort = fn
		}
	}
}
