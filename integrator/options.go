package integrator

import (
	"github.com/katalvlaran/mercurana/collision"
	"github.com/katalvlaran/mercurana/gravity"
	"github.com/katalvlaran/mercurana/scheme"
	"github.com/katalvlaran/mercurana/switching"
)

// Option customizes a Config before it is validated by New/Part1,
// the functional-option shape used throughout this module.
type Option func(*Config)

// WithSmax sets the maximum shell depth (>= 1).
func WithSmax(smax int) Option {
	return func(c *Config) { c.Smax = smax }
}

// WithSubsteps sets the shell-0 (n0) and deeper-shell (n1) sub-step
// counts used when a descent recurses.
func WithSubsteps(n0, n1 int) Option {
	return func(c *Config) { c.N0, c.N1 = n0, n1 }
}

// WithKappa sets the encounter sensitivity constant used by dcrit.Recompute.
func WithKappa(kappa float64) Option {
	return func(c *Config) { c.Kappa = kappa }
}

// WithGm0r0 enables the relativistic-like dcrit blend term; 0 disables it.
func WithGm0r0(gm0r0 float64) Option {
	return func(c *Config) { c.Gm0r0 = gm0r0 }
}

// WithAlpha sets the dcrit scaling exponent; 0.5 uses the optimized sqrt
// path, any other value the generic pow path.
func WithAlpha(alpha float64) Option {
	return func(c *Config) { c.Alpha = alpha }
}

// WithSafeMode toggles automatic Synchronize at the end of every Part2.
func WithSafeMode(safe bool) Option {
	return func(c *Config) { c.SafeMode = safe }
}

// WithSchemes selects the named coefficient scheme used at shell 0 (phi0)
// and at every deeper shell (phi1).
func WithSchemes(phi0, phi1 scheme.SchemeID) Option {
	return func(c *Config) { c.Phi0, c.Phi1 = phi0, phi1 }
}

// WithDominantCount sets how many of the leading particles are treated as
// dominant (always seen by everyone, never perturbative).
func WithDominantCount(n int) Option {
	return func(c *Config) { c.NDominant = n }
}

// WithSwitchingPolicy installs a custom switching.Policy in place of the
// default C∞ bump. Panics on a zero Policy (nil L or DLDR), matching this
// module's "option constructors validate and panic on meaningless inputs"
// convention — algorithms themselves never panic.
func WithSwitchingPolicy(pol switching.Policy) Option {
	if pol.L == nil || pol.DLDR == nil {
		panic("integrator: WithSwitchingPolicy(Policy with nil L or DLDR)")
	}
	return func(c *Config) { c.Policy = pol }
}

// WithGravity installs the external gravity routine. Required: Part1
// returns ErrGravityRequired without one.
func WithGravity(grav gravity.Gravity) Option {
	if grav == nil {
		panic("integrator: WithGravity(nil)")
	}
	return func(c *Config) { c.Gravity = grav }
}

// WithCollisionResolver installs a direct-collision resolver and switches
// the collision mode to DIRECT (spec.md §6: "collision mode ... forced to
// MERCURANA/DIRECT" once a resolver is configured).
func WithCollisionResolver(resolver collision.Resolver) Option {
	if resolver == nil {
		panic("integrator: WithCollisionResolver(nil)")
	}
	return func(c *Config) { c.Resolver = resolver }
}

// WithReporter installs a Reporter for non-fatal advisories; the default
// is a silent no-op.
func WithReporter(reporter Reporter) Option {
	if reporter == nil {
		panic("integrator: WithReporter(nil)")
	}
	return func(c *Config) { c.Reporter = reporter }
}

// WithRecalculateDcrit forces dcrit.Recompute to run again on the next
// Part1, even if the particle count and Smax haven't changed — useful
// after a host-side mass update.
func WithRecalculateDcrit(recalc bool) Option {
	return func(c *Config) { c.RecalcDcrit = recalc }
}
