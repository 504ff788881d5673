// Package orbit defines the stream item type, tunable options and error
// definitions for orbit generation.
package orbit

import (
	"context"
	"errors"

	"github.com/s-weil/fuchsian/geometry"
	"github.com/s-weil/fuchsian/words"
)

// ErrNoPrimitives is returned when Generate is given no base primitives.
var ErrNoPrimitives = errors.New("orbit: at least one base primitive is required")

// Item is one element of an orbit stream: a freely reduced word and the
// image of one base primitive under that word's isometry.
type Item struct {
	Word      words.Word
	Primitive geometry.Primitive
}

// Stats extends the traversal counters with the number of skipped
// primitive transforms.
type Stats struct {
	words.Stats
	// Skipped is the number of (word, primitive) pairs dropped because
	// the single transform failed.
	Skipped int
}

// Option configures orbit generation via functional arguments.
type Option func(*Options)

// Options holds orbit parameters; bound and traversal hooks are forwarded
// to the underlying word enumerator.
type Options struct {
	// OnSkip is called when a single primitive transform fails; the
	// word, the base primitive and the error are attached.
	OnSkip func(w words.Word, p geometry.Primitive, err error)

	wordOpts []words.Option
}

// DefaultOptions returns Options with a no-op skip hook and no bound; a
// bound must be supplied explicitly.
func DefaultOptions() Options {
	return Options{
		OnSkip: func(words.Word, geometry.Primitive, error) {},
	}
}

// WithMaxWordLength forwards the depth bound to the word enumerator.
func WithMaxWordLength(l int) Option {
	return func(o *Options) {
		o.wordOpts = append(o.wordOpts, words.WithMaxWordLength(l))
	}
}

// WithRegion forwards the region bound to the word enumerator.
func WithRegion(center geometry.Point, radius float64) Option {
	return func(o *Options) {
		o.wordOpts = append(o.wordOpts, words.WithRegion(center, radius))
	}
}

// WithContext forwards a context for cancellation between pulls.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.wordOpts = append(o.wordOpts, words.WithContext(ctx))
	}
}

// WithOnPrune forwards the region-prune hook to the word enumerator.
func WithOnPrune(fn func(w words.Word)) Option {
	return func(o *Options) {
		o.wordOpts = append(o.wordOpts, words.WithOnPrune(fn))
	}
}

// WithOnAbort forwards the branch-abort hook to the word enumerator.
func WithOnAbort(fn func(w words.Word, err error)) Option {
	return func(o *Options) {
		o.wordOpts = append(o.wordOpts, words.WithOnAbort(fn))
	}
}

// WithOnSkip registers a callback for skipped primitive transforms.
func WithOnSkip(fn func(w words.Word, p geometry.Primitive, err error)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}
