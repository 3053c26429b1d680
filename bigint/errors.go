package bigint

import "errors"

// ErrCapacityExceeded is returned whenever an operation's result would need
// more 32-bit limbs than the ExactInteger's backing array provides. This is
// the only error this package's arithmetic can produce: ExactInteger never
// rounds, so every other outcome is exact by construction.
var ErrCapacityExceeded = errors.New("bigint: result exceeds digit capacity")
