// Package orbit turns enumerated group elements into streams of
// transformed geometric primitives — the output a plotting or export
// consumer actually draws.
//
// What
//
//   - Generate drives a words.Enumerator over a group and applies every
//     enumerated element to every base primitive, yielding one
//     Item{Word, Primitive} per (word, base) pair. The Stream is lazy:
//     Next computes one item per pull, so a consumer may stop as soon as
//     it has enough orbit points, and restartable: calling Generate
//     again with identical inputs reproduces the identical sequence.
//   - A transform that fails (a point leaving the domain, a degenerated
//     matrix) skips only that single item: the OnSkip hook fires, the
//     Skipped counter increments, and the stream continues. Construction
//     errors, by contrast, are fatal and reported before any traversal
//     starts.
//   - Sample is the cheap alternative to a full enumeration: it
//     repeatedly applies one generator at a time to a moving cursor,
//     picking generators either sequentially (round-robin over the signed
//     table) or at random (seedable, fixed default seed), and collects
//     the visited primitives. It trades the word bookkeeping of Generate
//     for raw speed when only a scatter of orbit points is needed.
//
// Concurrency
//
//	A Stream is single-threaded and exclusively owned; the Group and the
//	base primitives are immutable, so any number of Streams may run over
//	the same inputs concurrently without synchronization.
//
// Usage
//
//	p, _ := geometry.NewPoint(0, 1)
//	stream, err := orbit.Generate(g, []geometry.Primitive{p},
//	    orbit.WithMaxWordLength(4))
//	if err != nil {
//	    // construction or configuration error
//	}
//	for {
//	    item, ok := stream.Next()
//	    if !ok {
//	        break
//	    }
//	    _ = item.Primitive
//	}
//
// Options
//
//   - WithMaxWordLength(L) / WithRegion(center, radius): the bound,
//     forwarded to the word enumerator (exactly one required).
//   - WithContext(ctx): cancellation between pulls.
//   - WithOnPrune(fn), WithOnAbort(fn): forwarded traversal hooks.
//   - WithOnSkip(fn): hook for skipped primitive transforms.
//
// Errors
//
//   - ErrNoPrimitives if the base primitive list is empty.
//   - Plus every construction error of the words package.
package orbit
