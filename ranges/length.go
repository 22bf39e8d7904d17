package ranges

import "math"

// Length returns the total number of values the sequence can produce,
// counted from its start, or +Inf when the sequence is unbounded. The
// result is memoized and computing it never changes what Next yields:
// for filtered or stop-bounded chains the remaining values are eagerly
// evaluated into the pending buffer and delivered from there later.
//
// For an unbounded sequence carrying a filter the reported infinity is
// an assumption, not a proof (a predicate alone cannot establish a
// finite length in finite time); a diagnostic warning is logged.
func (s *Sequence[T]) Length() float64 {
	if !s.measured {
		s.length = s.measure()
		s.measured = true
	}
	return s.length
}

func (s *Sequence[T]) measure() float64 {
	if !s.IsFinite() {
		if s.filtered() {
			logger.Warn().
				Msg("ranges: length of a filtered unbounded sequence reported as infinite; a filter predicate cannot prove a finite length")
		}
		return math.Inf(1)
	}
	if s.produced >= maxSafeCount {
		return math.Inf(1)
	}
	if !s.filtered() && !s.guarded() {
		// Pure transformation chain over a finite bound: the count is
		// structural. A preloaded node answers from its buffer; any
		// other node delegates to its upstream, whose total is
		// independent of how far this node has been consumed.
		if s.original != nil {
			return float64(s.produced) + float64(len(s.pending))
		}
		return s.src.total()
	}
	// Filter or stop predicate present: pre-generate the remainder so
	// it is counted exactly and still delivered by later Next calls.
	for {
		it, ok := s.fresh()
		if !ok {
			break
		}
		s.pending = append(s.pending, it)
		if it.index >= maxSafeCount {
			return math.Inf(1)
		}
	}
	return float64(s.produced) + float64(len(s.pending))
}

// Count is [Sequence.Length] as an integer; ok is false when the
// sequence is unbounded.
func (s *Sequence[T]) Count() (int, bool) {
	l := s.Length()
	if math.IsInf(l, 1) || l > float64(maxSafeCount) {
		return 0, false
	}
	return int(l), true
}
