package ranges

import "iter"

// Predicate decides the fate of a value at its 1-based position:
// whether it is kept (Filter) or whether production may continue
// (TakeWhile).
type Predicate[T any] func(value T, index int) bool

// Transform rewrites a value at its 1-based position.
type Transform[T any] func(value T, index int) T

// source is the upstream a sequence node draws raw values from: the
// root arithmetic emitter, a parent node, or a type-changing adapter.
type source[T any] interface {
	pull() (T, bool)
	reset()
	fork() source[T]
	finite() bool     // provably terminates, honoring Take bounds
	baseFinite() bool // finiteness of the root end bound alone
	filtered() bool   // a filter predicate exists at or above
	guarded() bool    // a stop predicate exists at or above
	total() float64   // full producible count of the upstream, from its start
}

// item is one precomputed production result: the value together with
// the index it will be delivered under.
type item[T any] struct {
	value T
	index int
}

// Sequence is one node in a lazy transformation chain. The root wraps
// the base emitter; every operator call derives a new node viewing its
// parent, so configuration (predicates, transform, upstream) is fixed
// at construction while traversal state advances with consumption.
//
// The zero value is not usable; obtain sequences from [New],
// [NewStep], [FromSlice] or an operator.
type Sequence[T any] struct {
	src      source[T]
	filterFn Predicate[T]
	mapFn    Transform[T]
	stopFn   Predicate[T]

	produced int       // values delivered by this node; sticks at maxSafeCount
	stopped  bool      // stop predicate fired; permanent until Reset
	pending  []item[T] // precomputed results, delivered before fresh ones
	original []item[T] // snapshot of pending at construction, replayed by Reset
	length   float64   // memoized total count
	measured bool
	capped   bool // Take forced this node finite
}

// New returns a lazy sequence from start (inclusive) to end
// (exclusive), stepping by +1 when end >= start and by -1 otherwise.
// end may be math.Inf(1) or math.Inf(-1) for an unbounded sequence.
func New(start, end float64) (*Sequence[float64], error) {
	return newRoot(start, end, 0, false)
}

// NewStep is [New] with an explicit nonzero step.
func NewStep(start, end, step float64) (*Sequence[float64], error) {
	return newRoot(start, end, step, true)
}

func newRoot(start, end, step float64, stepSet bool) (*Sequence[float64], error) {
	b, err := resolveBounds(start, end, step, stepSet)
	if err != nil {
		return nil, err
	}
	return &Sequence[float64]{src: newEmitter(b)}, nil
}

// Next produces the next value, or ok=false once the sequence is
// exhausted. Exhaustion is permanent until [Sequence.Reset]. On an
// unbounded sequence whose filter never matches again, Next does not
// return.
func (s *Sequence[T]) Next() (T, bool) {
	if len(s.pending) > 0 {
		it := s.pending[0]
		s.pending = s.pending[1:]
		s.produced = it.index
		return it.value, true
	}
	it, ok := s.fresh()
	if !ok {
		var zero T
		return zero, false
	}
	s.produced = it.index
	return it.value, true
}

// fresh computes the next not-yet-buffered result: pull a raw value
// from the upstream, skip it when the filter rejects it, transform it,
// then let the stop predicate end the node for good. The result is not
// delivered; callers either hand it out or buffer it.
func (s *Sequence[T]) fresh() (item[T], bool) {
	var zero item[T]
	if s.stopped {
		return zero, false
	}
	index := satNext(satAdd(s.produced, len(s.pending)))
	for {
		v, ok := s.src.pull()
		if !ok {
			return zero, false
		}
		if s.filterFn != nil && !s.filterFn(v, index) {
			continue // skipped, not counted
		}
		if s.mapFn != nil {
			v = s.mapFn(v, index)
		}
		if s.stopFn != nil && !s.stopFn(v, index) {
			s.stopped = true
			return zero, false
		}
		return item[T]{value: v, index: index}, true
	}
}

// Values adapts the sequence to the standard iterator protocol so it
// can drive a for-range loop. Iteration consumes the sequence; an
// abandoned loop can be resumed with further Next calls.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := s.Next(); ok; v, ok = s.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Indexed is [Sequence.Values] paired with each value's 1-based
// position.
func (s *Sequence[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for v, ok := s.Next(); ok; v, ok = s.Next() {
			if !yield(s.produced, v) {
				return
			}
		}
	}
}

// IsFinite reports whether the sequence provably terminates: its end
// bound is finite, or a Take bounds it.
func (s *Sequence[T]) IsFinite() bool {
	return s.capped || s.src.finite()
}

// virgin reports whether the node carries no transformations and has
// produced nothing yet.
func (s *Sequence[T]) virgin() bool {
	return s.filterFn == nil && s.mapFn == nil && s.stopFn == nil &&
		s.produced == 0 && len(s.pending) == 0
}

// source plumbing: a node is itself the upstream of its derived nodes.

func (s *Sequence[T]) pull() (T, bool)  { return s.Next() }
func (s *Sequence[T]) reset()           { s.Reset() }
func (s *Sequence[T]) fork() source[T]  { return s.Clone() }
func (s *Sequence[T]) finite() bool     { return s.IsFinite() }
func (s *Sequence[T]) baseFinite() bool { return s.src.baseFinite() }

func (s *Sequence[T]) filtered() bool {
	return s.filterFn != nil || s.src.filtered()
}

func (s *Sequence[T]) guarded() bool {
	return s.stopFn != nil || s.src.guarded()
}

func (s *Sequence[T]) total() float64 { return s.Length() }

// drained is the upstream of a node whose values are entirely
// preloaded in its pending buffer (reversed or slice-backed nodes).
// It is exhausted from birth.
type drained[T any] struct{}

func (drained[T]) pull() (T, bool) {
	var zero T
	return zero, false
}

func (drained[T]) reset()             {}
func (d drained[T]) fork() source[T]  { return d }
func (drained[T]) finite() bool       { return true }
func (drained[T]) baseFinite() bool   { return true }
func (drained[T]) filtered() bool     { return false }
func (drained[T]) guarded() bool      { return false }
func (drained[T]) total() float64 { return 0 }
