package ranges

// Reduce folds every remaining value of s into an accumulator, left to
// right, passing each value with its 1-based position. It fails with
// [ErrInfiniteReduction] when s is unbounded.
func Reduce[T, R any](s *Sequence[T], initial R, fn func(acc R, value T, index int) R) (R, error) {
	if !s.IsFinite() {
		return initial, ErrInfiniteReduction
	}
	acc := initial
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		acc = fn(acc, v, s.produced)
	}
	return acc, nil
}

// ToSlice drains the remaining values into a slice, preserving
// production order. It fails with [ErrInfiniteExport] when s is
// unbounded.
func (s *Sequence[T]) ToSlice() ([]T, error) {
	if !s.IsFinite() {
		return nil, ErrInfiniteExport
	}
	var out []T
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}
	return out, nil
}

// First returns the next value of the sequence, consuming it. It works
// on unbounded sequences.
func (s *Sequence[T]) First() (T, bool) {
	return s.Next()
}

// Last drains the sequence and returns its final value. ok is false
// when no values remained; err is [ErrInfiniteReduction] when s is
// unbounded.
func (s *Sequence[T]) Last() (value T, ok bool, err error) {
	if !s.IsFinite() {
		return value, false, ErrInfiniteReduction
	}
	for v, more := s.Next(); more; v, more = s.Next() {
		value = v
		ok = true
	}
	return value, ok, nil
}
