package words

import (
	"github.com/s-weil/fuchsian/geometry"
	"github.com/s-weil/fuchsian/group"
	"github.com/s-weil/fuchsian/moebius"
)

// node is one frontier entry: a reduced word and its composed matrix.
type node struct {
	word Word
	m    moebius.Moebius
}

// Enumerator walks the free-reduced Cayley graph breadth-first and yields
// one (word, matrix) pair per pull. It owns its frontier exclusively; a
// Group may feed any number of Enumerators concurrently.
type Enumerator struct {
	signed []group.SignedGen
	opts   Options
	queue  []node
	stats  Stats
	err    error
	done   bool
}

// New validates the configuration and seeds the traversal with the
// identity word. Exactly one bound policy must be configured.
func New(g *group.Group, opts ...Option) (*Enumerator, error) {
	if g == nil {
		return nil, ErrGroupNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	switch {
	case !o.hasDepth && !o.hasRegion:
		return nil, ErrNoBound
	case o.hasDepth && o.hasRegion:
		return nil, ErrBoundConflict
	}

	return &Enumerator{
		signed: g.Signed(),
		opts:   o,
		queue:  []node{{word: Word{}, m: moebius.Identity()}},
	}, nil
}

// Next returns the next freely reduced word and its composed matrix, in
// breadth-first order starting with the identity. It returns false once
// the traversal is exhausted or the context is cancelled; consult Err to
// tell the two apart.
func (e *Enumerator) Next() (Word, moebius.Moebius, bool) {
	if e.done || len(e.queue) == 0 {
		e.done = true
		return nil, moebius.Moebius{}, false
	}
	select {
	case <-e.opts.Ctx.Done():
		e.err = e.opts.Ctx.Err()
		e.done = true
		return nil, moebius.Moebius{}, false
	default:
	}

	n := e.queue[0]
	e.queue = e.queue[1:]
	e.expand(n)
	e.stats.Emitted++
	return n.word, n.m, true
}

// expand enqueues the freely reduced children of n, in the fixed order of
// the signed-generator table, subject to the active bound. A child whose
// composition degenerates is dropped with OnAbort; a child pruned by the
// region bound is dropped with OnPrune; siblings continue either way.
func (e *Enumerator) expand(n node) {
	if e.opts.hasDepth && len(n.word) == e.opts.MaxWordLength {
		return
	}
	backtrack := -1
	if len(n.word) > 0 {
		backtrack = e.signed[n.word[len(n.word)-1]].Pair
	}
	for j := range e.signed {
		if j == backtrack {
			continue
		}
		w := append(n.word.Clone(), j)
		m, err := n.m.Compose(e.signed[j].M)
		if err != nil {
			e.stats.Aborted++
			e.opts.OnAbort(w, err)
			continue
		}
		if e.opts.hasRegion {
			img, err := e.opts.Center.Map(m)
			if err != nil {
				e.stats.Aborted++
				e.opts.OnAbort(w, err)
				continue
			}
			if geometry.Dist(e.opts.Center, img) > e.opts.Radius {
				e.stats.Pruned++
				e.opts.OnPrune(w)
				continue
			}
		}
		e.queue = append(e.queue, node{word: w, m: m})
	}
}

// Err reports a context cancellation observed during Next; it is nil
// after a normally exhausted traversal.
func (e *Enumerator) Err() error {
	return e.err
}

// Stats returns a snapshot of the traversal counters.
func (e *Enumerator) Stats() Stats {
	return e.stats
}
