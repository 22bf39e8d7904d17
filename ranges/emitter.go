package ranges

import "math"

// emitter drives the root arithmetic progression. It is an explicit
// pull state machine: every pull yields at most one value and returns
// control to the caller, with no goroutines or coroutine runtime
// behind it.
type emitter struct {
	bounds
	cur     float64
	started bool
	done    bool
}

func newEmitter(b bounds) *emitter {
	return &emitter{bounds: b}
}

func (e *emitter) pull() (float64, bool) {
	if e.done {
		return 0, false
	}
	if e.started {
		e.advance()
	} else {
		e.started = true
		e.cur = e.start
	}
	if e.passed(e.cur) {
		e.done = true
		return 0, false
	}
	return e.cur, true
}

// advance steps cur once. When the next value would leave the safe
// range the progression latches at infinity with the sign of the
// current value; wraparound never reaches a caller.
func (e *emitter) advance() {
	if math.IsInf(e.cur, 0) {
		return
	}
	next := e.cur + e.step
	if math.Abs(next) > MaxSafeInteger {
		if e.cur >= 0 {
			e.cur = math.Inf(1)
		} else {
			e.cur = math.Inf(-1)
		}
		return
	}
	e.cur = next
}

// passed reports whether v has crossed the end bound in the direction
// of the step. An infinite end bound is never crossed.
func (e *emitter) passed(v float64) bool {
	if math.IsInf(e.end, 0) {
		return false
	}
	if e.step > 0 {
		return v >= e.end
	}
	return v <= e.end
}

// total is the full producible count from start, independent of the
// current position: ceil((end-start)/step), floored at zero.
func (e *emitter) total() float64 {
	if math.IsInf(e.end, 0) {
		return math.Inf(1)
	}
	n := math.Ceil((e.end - e.start) / e.step)
	if n < 0 {
		return 0
	}
	return n
}

func (e *emitter) reset() {
	e.cur = 0
	e.started = false
	e.done = false
}

func (e *emitter) fork() source[float64] {
	c := *e
	return &c
}

func (e *emitter) finite() bool     { return !math.IsInf(e.end, 0) }
func (e *emitter) baseFinite() bool { return e.finite() }
func (e *emitter) filtered() bool   { return false }
func (e *emitter) guarded() bool    { return false }
