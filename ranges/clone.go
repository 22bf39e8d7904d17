package ranges

import "slices"

// Clone returns a deep copy of the whole chain. The clone continues
// from the same position but shares no mutable state with the
// original: parents are cloned recursively and buffers are copied, so
// consuming one side never disturbs the other.
func (s *Sequence[T]) Clone() *Sequence[T] {
	c := *s
	c.src = s.src.fork()
	c.pending = slices.Clone(s.pending)
	c.original = slices.Clone(s.original)
	return &c
}

// Reset rewinds the chain to its initial state: the root emitter is
// reinitialized to start, every node's counters return to zero and
// buffered nodes restore their pending values from the construction
// snapshot, replaying the exact original output.
func (s *Sequence[T]) Reset() {
	s.src.reset()
	s.produced = 0
	s.stopped = false
	if s.original != nil {
		s.pending = slices.Clone(s.original)
	} else {
		s.pending = nil
	}
}
