package ranges

import "errors"

// Construction-time validation failures. The caller must supply
// corrected input; nothing is retried internally.
var (
	ErrInvalidStart = errors.New("ranges: start must be a safe integer")
	ErrInvalidEnd   = errors.New("ranges: end must be a safe integer or infinite")
	ErrInvalidStep  = errors.New("ranges: step must be a nonzero safe integer")
	ErrInvalidCount = errors.New("ranges: count must be a non-negative safe integer")
)

// Usage-time failures raised when a terminal or eager operation is
// invoked on a provably unbounded sequence. Bound the sequence first,
// e.g. with Take.
var (
	ErrInfiniteReversal  = errors.New("ranges: cannot reverse an unbounded sequence")
	ErrInfiniteReduction = errors.New("ranges: cannot reduce an unbounded sequence")
	ErrInfiniteExport    = errors.New("ranges: cannot collect an unbounded sequence")
)
