package ranges_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"lazyrange/ranges"
)

func TestReverse(t *testing.T) {
	t.Run("UntouchedRoot", func(t *testing.T) {
		s, err := ranges.NewStep(0, 10, 3)
		require.NoError(t, err)

		r, err := s.Reverse()
		require.NoError(t, err)
		require.Equal(t, []float64{9, 6, 3, 0}, collect(t, r))

		// algebraic reversal leaves the original untouched
		require.Equal(t, []float64{0, 3, 6, 9}, collect(t, s))
	})

	t.Run("UntouchedRootBackward", func(t *testing.T) {
		s, err := ranges.NewStep(10, 0, -3)
		require.NoError(t, err)

		r, err := s.Reverse()
		require.NoError(t, err)
		require.Equal(t, []float64{1, 4, 7, 10}, collect(t, r))
	})

	t.Run("EmptyRoot", func(t *testing.T) {
		s, err := ranges.New(5, 5)
		require.NoError(t, err)

		r, err := s.Reverse()
		require.NoError(t, err)
		require.Empty(t, collect(t, r))
	})

	t.Run("ConsumedRootBuffers", func(t *testing.T) {
		s, err := ranges.New(0, 5)
		require.NoError(t, err)
		s.Next() // 0 is gone; only the remainder reverses

		r, err := s.Reverse()
		require.NoError(t, err)
		require.Equal(t, []float64{4, 3, 2, 1}, collect(t, r))
	})

	t.Run("TransformedChainBuffers", func(t *testing.T) {
		s, err := ranges.New(0, 10)
		require.NoError(t, err)

		r, err := s.Filter(odd).Map(double).Reverse()
		require.NoError(t, err)
		require.Equal(t, []float64{18, 14, 10, 6, 2}, collect(t, r))
	})

	t.Run("DoubleReverseRestoresOrder", func(t *testing.T) {
		s, err := ranges.New(0, 10)
		require.NoError(t, err)
		chain := s.Filter(odd).Map(double)

		r, err := chain.Reverse()
		require.NoError(t, err)
		rr, err := r.Reverse()
		require.NoError(t, err)
		require.Equal(t, []float64{2, 6, 10, 14, 18}, collect(t, rr))
	})

	t.Run("ReversedNodeResetReplaysSnapshot", func(t *testing.T) {
		s2, err := ranges.New(0, 4)
		require.NoError(t, err)
		s2.Next() // consumed position forces the buffered path

		br, err := s2.Reverse()
		require.NoError(t, err)
		require.Equal(t, []float64{3, 2, 1}, collect(t, br))

		// the live source has advanced past everything, yet Reset
		// replays the snapshot rather than re-deriving
		br.Reset()
		require.Equal(t, []float64{3, 2, 1}, collect(t, br))
	})

	t.Run("UnboundedFails", func(t *testing.T) {
		s, err := ranges.New(0, math.Inf(1))
		require.NoError(t, err)

		_, err = s.Reverse()
		require.ErrorIs(t, err, ranges.ErrInfiniteReversal)

		// a Take bound does not create a last element to reverse from
		taken, err := s.Take(5)
		require.NoError(t, err)
		_, err = taken.Reverse()
		require.ErrorIs(t, err, ranges.ErrInfiniteReversal)
	})

	t.Run("LengthOfReversed", func(t *testing.T) {
		s, err := ranges.NewStep(0, 10, 3)
		require.NoError(t, err)

		r, err := s.Reverse()
		require.NoError(t, err)
		require.Equal(t, 4.0, r.Length())
		require.Equal(t, []float64{9, 6, 3, 0}, collect(t, r))
	})

	t.Run("ReverseOfSliceSequence", func(t *testing.T) {
		s := ranges.FromSlice([]int{1, 2, 3})
		r, err := s.Reverse()
		require.NoError(t, err)

		out, err := r.ToSlice()
		require.NoError(t, err)
		require.Equal(t, []int{3, 2, 1}, out)
	})
}
