package ranges

import (
	"fmt"
	"math"
)

// MaxSafeInteger is the largest magnitude on which range arithmetic is
// exact. Once an advance would leave [-MaxSafeInteger, MaxSafeInteger]
// the emitter latches at signed infinity instead of drifting.
const MaxSafeInteger = 1<<53 - 1

// maxSafeCount bounds the per-node counters; a counter that reaches it
// sticks there and is reported as infinite. On 32-bit platforms the
// platform int ceiling applies instead, so saturation just arrives
// earlier.
const maxSafeCount = min(MaxSafeInteger, math.MaxInt)

// isSafeInteger reports whether v is an integral value that range
// arithmetic can represent exactly. NaN and infinities are rejected.
func isSafeInteger(v float64) bool {
	return v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) <= MaxSafeInteger
}

// bounds is the validated start/end/step triple shared by a whole
// chain. Only the root emitter holds one.
type bounds struct {
	start float64
	end   float64
	step  float64
}

// resolveBounds validates the raw inputs and derives the effective
// step: +1 when end >= start, -1 otherwise. Pure; no state is touched.
func resolveBounds(start, end, step float64, stepSet bool) (bounds, error) {
	if !isSafeInteger(start) {
		return bounds{}, fmt.Errorf("%w, got %v", ErrInvalidStart, start)
	}
	if !math.IsInf(end, 0) && !isSafeInteger(end) {
		return bounds{}, fmt.Errorf("%w, got %v", ErrInvalidEnd, end)
	}
	if stepSet {
		if step == 0 || !isSafeInteger(step) {
			return bounds{}, fmt.Errorf("%w, got %v", ErrInvalidStep, step)
		}
	} else if end >= start {
		step = 1
	} else {
		step = -1
	}
	return bounds{start: start, end: end, step: step}, nil
}

// satNext increments a counter, sticking at maxSafeCount.
func satNext(n int) int {
	if n >= maxSafeCount {
		return maxSafeCount
	}
	return n + 1
}

// satAdd adds two non-negative counters, sticking at maxSafeCount.
func satAdd(a, b int) int {
	if a >= maxSafeCount-b {
		return maxSafeCount
	}
	return a + b
}
