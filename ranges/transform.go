package ranges

import (
	"fmt"
	"slices"
)

// Filter derives a sequence yielding only the values predicate keeps.
// A rejected value is skipped and never counted; filtering cannot end
// the sequence, it only thins it.
func (s *Sequence[T]) Filter(predicate Predicate[T]) *Sequence[T] {
	return &Sequence[T]{src: s, filterFn: predicate}
}

// Map derives a sequence with transform applied to every value. The
// transform sees the value after upstream filtering, together with its
// 1-based position. For a transform that changes the element type use
// the package-level [Map].
func (s *Sequence[T]) Map(transform Transform[T]) *Sequence[T] {
	return &Sequence[T]{src: s, mapFn: transform}
}

// TakeWhile derives a sequence that ends permanently at the first
// (already transformed) value predicate rejects. Unlike Filter the
// rejection is not retried: the node and everything derived from it
// are done from that point.
func (s *Sequence[T]) TakeWhile(predicate Predicate[T]) *Sequence[T] {
	return &Sequence[T]{src: s, stopFn: predicate}
}

// Take derives a sequence of at most n values. The result is finite
// even when s is unbounded, so terminal operations accept it.
func (s *Sequence[T]) Take(n int) (*Sequence[T], error) {
	if n < 0 || n > maxSafeCount {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, n)
	}
	t := s.TakeWhile(func(_ T, index int) bool {
		return index <= n
	})
	t.capped = true
	return t, nil
}

// Map derives a sequence with transform applied to every value of s,
// allowing the element type to change.
func Map[In, Out any](s *Sequence[In], transform func(value In, index int) Out) *Sequence[Out] {
	return &Sequence[Out]{src: &mapped[In, Out]{parent: s, fn: transform}}
}

// Pair holds two values of independent types.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Enumerate derives a sequence pairing every value with its 1-based
// position: Pair{V1: index, V2: value}.
func Enumerate[T any](s *Sequence[T]) *Sequence[Pair[int, T]] {
	return Map(s, func(v T, index int) Pair[int, T] {
		return Pair[int, T]{V1: index, V2: v}
	})
}

// FromSlice returns a finite sequence over values, delivered in order.
// The sequence is fully buffered up front; Reset replays it and Clone
// copies it.
func FromSlice[T any](values []T) *Sequence[T] {
	buf := make([]item[T], len(values))
	for i, v := range values {
		buf[i] = item[T]{value: v, index: i + 1}
	}
	return &Sequence[T]{
		src:      drained[T]{},
		pending:  buf,
		original: slices.Clone(buf),
	}
}

// mapped adapts a parent sequence of one element type into the source
// of another, applying fn with the downstream 1-based position.
type mapped[In, Out any] struct {
	parent *Sequence[In]
	fn     func(In, int) Out
	n      int
}

func (m *mapped[In, Out]) pull() (Out, bool) {
	v, ok := m.parent.Next()
	if !ok {
		var zero Out
		return zero, false
	}
	m.n = satNext(m.n)
	return m.fn(v, m.n), true
}

func (m *mapped[In, Out]) reset() {
	m.parent.Reset()
	m.n = 0
}

func (m *mapped[In, Out]) fork() source[Out] {
	return &mapped[In, Out]{parent: m.parent.Clone(), fn: m.fn, n: m.n}
}

func (m *mapped[In, Out]) finite() bool       { return m.parent.IsFinite() }
func (m *mapped[In, Out]) baseFinite() bool   { return m.parent.baseFinite() }
func (m *mapped[In, Out]) filtered() bool     { return m.parent.filtered() }
func (m *mapped[In, Out]) guarded() bool      { return m.parent.guarded() }
func (m *mapped[In, Out]) total() float64 { return m.parent.Length() }
