package operator

import (
	"github.com/katalvlaran/mercurana/body"
	"github.com/katalvlaran/mercurana/gravity"
	"github.com/katalvlaran/mercurana/scheme"
	"github.com/katalvlaran/mercurana/shell"
	"github.com/katalvlaran/mercurana/switching"
)

// Context bundles everything Drift/Kick need that is not the shell depth
// or sub-step size itself: the particle state, the membership engine, the
// gravity routine, the switching policy, the operator-splitting driver,
// the two named schemes (phi0 for shell 0, phi1 for every deeper shell),
// their respective sub-step counts, and an optional cooperative interrupt
// poll.
//
// A single Context is built once per global step by package integrator and
// threaded through the whole recursive Drift/Kick descent; ShellsUsed
// accumulates the deepest shell actually visited, read back afterwards by
// Integrator.NMaxShellsUsed.
type Context struct {
	State  *body.State
	Engine *shell.Engine

	Gravity gravity.Gravity
	Policy  switching.Policy
	Driver  *scheme.Driver

	Phi0, Phi1 scheme.SchemeID
	N0, N1     int

	Interrupted func() bool

	ShellsUsed int
}
