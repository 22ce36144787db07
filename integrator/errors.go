// errors.go — sentinel errors for the integrator package.
//
// Only sentinel variables are exported; callers branch with errors.Is.
// Validation failures are reported via these sentinels, never panics —
// panics are confined to Option constructors receiving structurally
// invalid values (nil function pointers).
package integrator

import (
	"errors"
	"fmt"
)

// ErrSmaxTooSmall indicates Smax < 1.
var ErrSmaxTooSmall = errors.New("integrator: smax must be >= 1")

// ErrN0Required indicates n0 <= 0 while Smax > 1 (at least one sub-step is
// needed whenever shell 0 can recurse into shell 1).
var ErrN0Required = errors.New("integrator: n0 must be > 0 when smax > 1")

// ErrN1Required indicates n1 <= 0 while Smax > 2 (sub-steps below shell 1
// need their own positive count).
var ErrN1Required = errors.New("integrator: n1 must be > 0 when smax > 2")

// ErrKappaRequired indicates kappa <= 0 while Smax > 1 (the critical-radius
// formula divides by kappa whenever descent is possible at all).
var ErrKappaRequired = errors.New("integrator: kappa must be > 0 when smax > 1")

// ErrGravityRequired indicates Part1 was called with no Gravity installed.
var ErrGravityRequired = errors.New("integrator: a gravity.Gravity must be configured")

func integratorErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", method, fmt.Sprintf(format, args...))
}
