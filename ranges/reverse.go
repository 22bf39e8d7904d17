package ranges

import "slices"

// Reverse returns a new sequence producing the remaining values of s
// in reverse order. It fails with [ErrInfiniteReversal] when the root
// end bound is unbounded: there is no last element to start from, even
// under a Take bound.
//
// An untouched root is reversed algebraically, with no buffering; any
// other chain is eagerly materialized, which consumes s.
func (s *Sequence[T]) Reverse() (*Sequence[T], error) {
	if !s.baseFinite() {
		return nil, ErrInfiniteReversal
	}
	// The algebraic path only exists for a float64 root; the assertions
	// through any pick it when T is the root element type.
	if em, ok := any(s.src).(*emitter); ok && s.virgin() && !em.started {
		n := em.total()
		last := em.start + em.step*(n-1)
		rev := newEmitter(bounds{start: last, end: em.start - em.step, step: -em.step})
		return &Sequence[T]{src: any(rev).(source[T])}, nil
	}
	// Materialize the remainder, then replay it backwards. The snapshot
	// in original makes Reset replay this exact order rather than
	// re-derive from the live source, which has advanced.
	var rest []T
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		rest = append(rest, v)
	}
	slices.Reverse(rest)
	buf := make([]item[T], len(rest))
	for i, v := range rest {
		buf[i] = item[T]{value: v, index: i + 1}
	}
	return &Sequence[T]{
		src:      drained[T]{},
		pending:  buf,
		original: slices.Clone(buf),
	}, nil
}
