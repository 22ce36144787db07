package integrator

import (
	"sync/atomic"

	"github.com/katalvlaran/mercurana/body"
	"github.com/katalvlaran/mercurana/dcrit"
	"github.com/katalvlaran/mercurana/operator"
	"github.com/katalvlaran/mercurana/scheme"
	"github.com/katalvlaran/mercurana/shell"
)

// Integrator is the public MERCURANA entry point: the single owner of
// every per-step buffer (shell engine, dcrit table, collision buffer)
// wired together per the resolved Config.
//
// Not safe for concurrent invocation, with one exception: Interrupt may be
// called from another goroutine to cooperatively cancel an in-flight
// Part2 (the flag may be set concurrently; the integrator itself still
// runs single-threaded).
type Integrator struct {
	cfg Config

	engine *shell.Engine
	driver *scheme.Driver

	allocatedN    int
	synced        bool
	maxShellsUsed int
	interrupt     atomic.Bool
}

// New resolves opts against DefaultConfig and returns a ready-to-configure
// Integrator. It does not allocate or validate anything; call Part1
// before the first Part2.
func New(opts ...Option) *Integrator {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Integrator{
		cfg:    cfg,
		driver: scheme.NewDriver(),
		synced: true,
	}
}

// Part1 validates the configuration, (re)allocates every owned buffer for
// state's current particle count, and refreshes the dcrit table whenever
// the particle count changed or RecalculateDcrit was requested.
func (in *Integrator) Part1(state *body.State) error {
	if err := in.cfg.Validate(); err != nil {
		return err
	}

	if in.engine == nil || in.engine.Smax != in.cfg.Smax {
		in.engine = shell.NewEngine(in.cfg.Smax)
		in.allocatedN = 0
	}
	in.engine.NDominant = in.cfg.NDominant
	in.engine.Resolver = in.cfg.Resolver
	in.engine.DirectCollisions = in.cfg.Resolver != nil
	if in.engine.DirectCollisions {
		in.cfg.Reporter.Warn("collision mode forced to DIRECT: a collision.Resolver is configured")
	}

	n := state.N()
	recompute := in.cfg.RecalcDcrit || in.allocatedN != n
	if in.allocatedN != n {
		in.engine.Allocate(n)
		in.allocatedN = n
	}

	if recompute {
		if !in.synced {
			in.cfg.Reporter.Warn("dcrit recomputed while the state is not synchronized")
		}
		dcrit.Recompute(in.engine.Dcrit, state.Particles, dcrit.Params{
			G:     state.G,
			Dt:    state.Dt,
			Kappa: in.cfg.Kappa,
			Gm0r0: in.cfg.Gm0r0,
			Alpha: in.cfg.Alpha,
		}, in.cfg.Phi0, in.cfg.Phi1, in.cfg.N0, in.cfg.N1)
	}

	return nil
}

// Part2 performs exactly one global step: snapshots p0, zeroes t_drifted,
// runs the scheme's preprocessor if the previous step left state
// synchronized, drives one full shell-0 step, marks the state
// desynchronized, and — in safe mode, the default — immediately
// synchronizes again so the host always sees canonical state back.
func (in *Integrator) Part2(state *body.State) error {
	in.interrupt.Store(false)
	in.engine.ResetStep(state)

	ctx := in.newContext(state)

	if in.synced {
		if err := in.driver.Preprocessor(state.Dt, 0, in.cfg.Phi0, driftFn(ctx), kickFn(ctx)); err != nil {
			return err
		}
	}

	if err := in.driver.Step(state.Dt, 1, 1, 0, in.cfg.Phi0, driftFn(ctx), kickFn(ctx)); err != nil {
		return err
	}
	in.synced = false

	if ctx.ShellsUsed > in.maxShellsUsed {
		in.maxShellsUsed = ctx.ShellsUsed
	}

	if in.cfg.SafeMode {
		return in.Synchronize(state)
	}
	return nil
}

// Synchronize applies the scheme's postprocessor so stored positions and
// velocities correspond to a canonical time, a no-op if the state is
// already synchronized — two consecutive calls are indistinguishable from
// one.
func (in *Integrator) Synchronize(state *body.State) error {
	if in.synced {
		return nil
	}
	ctx := in.newContext(state)
	if err := in.driver.Postprocessor(state.Dt, 0, in.cfg.Phi0, driftFn(ctx), kickFn(ctx)); err != nil {
		return err
	}
	in.synced = true
	return nil
}

// Reset releases every owned buffer and restores the configuration to the
// constructor defaults enumerated in spec.md §6, making the instance
// indistinguishable from a freshly New()-constructed one.
func (in *Integrator) Reset() {
	in.cfg = DefaultConfig()
	in.engine = nil
	in.allocatedN = 0
	in.synced = true
	in.maxShellsUsed = 0
	in.interrupt.Store(false)
}

// NMaxShellsUsed returns the number of distinct shells (0..deepest) any
// descent has visited since construction or the last Reset — 1 if no
// Part2 ever recursed past shell 0 — letting a host tune Smax.
func (in *Integrator) NMaxShellsUsed() int {
	return in.maxShellsUsed + 1
}

// Interrupt requests that the Drift currently in flight (if any) return
// operator.ErrInterrupted at its next cooperative poll. Safe to call from
// another goroutine; the flag is cleared again at the start of every
// Part2.
func (in *Integrator) Interrupt() {
	in.interrupt.Store(true)
}

func (in *Integrator) newContext(state *body.State) *operator.Context {
	return &operator.Context{
		State:       state,
		Engine:      in.engine,
		Gravity:     in.cfg.Gravity,
		Policy:      in.cfg.Policy,
		Driver:      in.driver,
		Phi0:        in.cfg.Phi0,
		Phi1:        in.cfg.Phi1,
		N0:          in.cfg.N0,
		N1:          in.cfg.N1,
		Interrupted: in.interrupt.Load,
	}
}

func driftFn(ctx *operator.Context) scheme.DriftFunc {
	return func(shellIdx int, a float64) error { return operator.Drift(ctx, shellIdx, a) }
}

func kickFn(ctx *operator.Context) scheme.KickFunc {
	return func(shellIdx int, y, v float64) error { return operator.Kick(ctx, shellIdx, y, v) }
}
