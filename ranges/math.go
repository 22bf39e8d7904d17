package ranges

// Number covers the built-in numeric types.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sum adds every remaining value of a finite numeric sequence.
func Sum[T Number](s *Sequence[T]) (T, error) {
	var total T
	if !s.IsFinite() {
		return total, ErrInfiniteReduction
	}
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		total += v
	}
	return total, nil
}

// Min drains a finite numeric sequence and returns its smallest value.
// ok is false when no values remained.
func Min[T Number](s *Sequence[T]) (min T, ok bool, err error) {
	if !s.IsFinite() {
		return min, false, ErrInfiniteReduction
	}
	for v, more := s.Next(); more; v, more = s.Next() {
		if !ok || v < min {
			min = v
		}
		ok = true
	}
	return min, ok, nil
}

// Max drains a finite numeric sequence and returns its largest value.
// ok is false when no values remained.
func Max[T Number](s *Sequence[T]) (max T, ok bool, err error) {
	if !s.IsFinite() {
		return max, false, ErrInfiniteReduction
	}
	for v, more := s.Next(); more; v, more = s.Next() {
		if !ok || v > max {
			max = v
		}
		ok = true
	}
	return max, ok, nil
}
