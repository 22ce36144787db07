package operator

import "errors"

// ErrInterrupted is returned by Drift when the host's cooperative
// interrupt flag was observed set at the top of the call. State is left
// consistent at the last completed sub-step boundary; the caller may
// simply not resume, or re-invoke from the top of the current global step.
var ErrInterrupted = errors.New("operator: drift interrupted")
