// errors.go — sentinel errors for the shell package.
//
// Only sentinel variables are exported; callers branch with errors.Is.
// Predict returns these sentinels unwrapped; shellErrorf formats a
// method-prefixed message and currently has no caller.
package shell

import (
	"errors"
	"fmt"
)

// ErrNoResolver indicates a collision was captured during Predict but no
// collision.Resolver was configured to handle it.
var ErrNoResolver = errors.New("shell: collision captured but no resolver configured")

// ErrNotAllocated indicates Predict was called before Allocate sized the
// engine's per-particle arrays for the current particle count.
var ErrNotAllocated = errors.New("shell: engine not allocated for this particle count")

func shellErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", method, fmt.Sprintf(format, args...))
}
