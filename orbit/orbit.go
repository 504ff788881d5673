package orbit

import (
	"github.com/s-weil/fuchsian/geometry"
	"github.com/s-weil/fuchsian/group"
	"github.com/s-weil/fuchsian/moebius"
	"github.com/s-weil/fuchsian/words"
)

// Stream is a lazy sequence of orbit items. It is exclusively owned by
// its consumer; create one Stream per traversal.
type Stream struct {
	enum  *words.Enumerator
	base  []geometry.Primitive
	opts  Options
	stats Stats

	// current word being fanned out over the base primitives
	word words.Word
	m    moebius.Moebius
	idx  int
	have bool
}

// Generate builds the lazy orbit stream of the base primitives under g,
// bounded by the configured policy. All construction and configuration
// errors surface here, before any traversal starts; the returned Stream
// itself only skips, never fails.
func Generate(g *group.Group, base []geometry.Primitive, opts ...Option) (*Stream, error) {
	if len(base) == 0 {
		return nil, ErrNoPrimitives
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	enum, err := words.New(g, o.wordOpts...)
	if err != nil {
		return nil, err
	}

	b := make([]geometry.Primitive, len(base))
	copy(b, base)
	return &Stream{enum: enum, base: b, opts: o}, nil
}

// Next returns the next orbit item. Items appear in breadth-first word
// order, and within one word in base-primitive order, starting with the
// base primitives themselves (the identity word). A failed transform
// skips that single item, observable via the OnSkip hook and Stats.
func (s *Stream) Next() (Item, bool) {
	for {
		if !s.have {
			w, m, ok := s.enum.Next()
			if !ok {
				return Item{}, false
			}
			s.word, s.m, s.idx, s.have = w, m, 0, true
		}
		for s.idx < len(s.base) {
			p := s.base[s.idx]
			s.idx++
			img, err := p.Apply(s.m)
			if err != nil {
				s.stats.Skipped++
				s.opts.OnSkip(s.word, p, err)
				continue
			}
			return Item{Word: s.word, Primitive: img}, true
		}
		s.have = false
	}
}

// Collect drains the stream into a slice. A positive limit stops after
// that many items; limit ≤ 0 drains everything (beware exponential depth
// bounds).
func (s *Stream) Collect(limit int) []Item {
	var out []Item
	for limit <= 0 || len(out) < limit {
		item, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, item)
	}
	return out
}

// Err reports a context cancellation observed during traversal.
func (s *Stream) Err() error {
	return s.enum.Err()
}

// Stats returns a snapshot of the traversal and skip counters.
func (s *Stream) Stats() Stats {
	st := s.stats
	st.Stats = s.enum.Stats()
	return st
}
