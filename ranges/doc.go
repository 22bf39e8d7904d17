/*
Package ranges provides lazy numeric sequences with chainable transformations.

A [Sequence] materializes values on demand from an arithmetic progression
running from a start bound (inclusive) to an end bound (exclusive), stepped
by a configurable increment. The end bound may be infinite, so both finite
and unbounded sequences are supported:

	s, _ := ranges.New(0, 10)              // 0 1 2 ... 9
	odd := s.Filter(func(v float64, _ int) bool {
		return int64(v)%2 == 1
	})
	doubled := odd.Map(func(v float64, _ int) float64 {
		return v * 2
	})
	values, _ := doubled.ToSlice()         // [2 6 10 14 18]

Operators form a chain of views over a single base emitter:

  - **Transformations**: [Sequence.Map], [Sequence.Filter],
    [Sequence.TakeWhile], [Sequence.Take], [Map], [Enumerate].
  - **Terminals**: [Reduce], [Sequence.ToSlice], [Sum], [Min], [Max],
    [Sequence.Length].
  - **Traversal control**: [Sequence.Reverse], [Sequence.Clone],
    [Sequence.Reset].

Sequences satisfy the standard iterator protocol through
[Sequence.Values] and [Sequence.Indexed], so they compose with
range-over-func loops and the iter ecosystem.

# Bounded and unbounded sequences

Pass math.Inf(1) or math.Inf(-1) as the end bound for a sequence that
never terminates on its own. Terminal operations refuse unbounded
sequences with [ErrInfiniteReduction], [ErrInfiniteExport] or
[ErrInfiniteReversal]; bound them first with [Sequence.Take]. A filter
on an unbounded sequence cannot prove finiteness, so [Sequence.Length]
reports infinity there and logs a diagnostic warning.

# Concurrency

Sequences are single-threaded and fully synchronous. Each Next call
runs to completion before returning; a chain is an unshared mutable
object graph and must not be advanced from multiple goroutines.
*/
package ranges
