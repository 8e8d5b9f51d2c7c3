package solver

import "fmt"

// MalformedCube reports that a cube.State failed validation and cannot
// be solved: not a real permutation, an orientation sum that violates
// parity, or a corner/edge parity mismatch.
type MalformedCube struct {
	Err error
}

func (e *MalformedCube) Error() string {
	return fmt.Sprintf("solver: malformed cube: %v", e.Err)
}

func (e *MalformedCube) Unwrap() error { return e.Err }

// InvalidConfig reports a Config that cannot be used to build a solver:
// an unknown algorithm, a non-positive thread count, and so on.
type InvalidConfig struct {
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("solver: invalid config: %s", e.Reason)
}
