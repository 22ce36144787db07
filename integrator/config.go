package integrator

import (
	"github.com/katalvlaran/mercurana/collision"
	"github.com/katalvlaran/mercurana/gravity"
	"github.com/katalvlaran/mercurana/scheme"
	"github.com/katalvlaran/mercurana/switching"
)

// Config holds every MERCURANA configuration field enumerated in spec.md
// §6. It is built from Option functions and never mutated directly by a
// host; Integrator.Reset restores the values DefaultConfig returns.
type Config struct {
	Smax int
	N0   int
	N1   int

	Kappa float64
	Gm0r0 float64
	Alpha float64

	SafeMode bool

	Phi0, Phi1   scheme.SchemeID
	NDominant    int
	Policy       switching.Policy
	Gravity      gravity.Gravity
	Resolver     collision.Resolver
	Reporter     Reporter
	RecalcDcrit  bool
}

// DefaultConfig returns the constructor defaults enumerated in spec.md
// §6's reset description: phi0 = phi1 = LF, n0 = 2, n1 = 0, κ = 1e-3,
// Gm0r0 = 0, α = 0.5, safe_mode = true, Smax = 10, N_dominant = 0, the
// default switching policy, and a no-op Reporter.
func DefaultConfig() Config {
	return Config{
		Smax:      10,
		N0:        2,
		N1:        0,
		Kappa:     1e-3,
		Gm0r0:     0,
		Alpha:     0.5,
		SafeMode:  true,
		Phi0:      scheme.LF,
		Phi1:      scheme.LF,
		NDominant: 0,
		Policy:    switching.Default(),
		Reporter:  noopReporter{},
	}
}

// Validate checks the enumerated configuration constraints of spec.md §6,
// in the order: Smax, then n0, then n1, then kappa — first failure wins,
// matching dtw.Options.Validate's "sequence of independent field checks"
// shape.
func (c *Config) Validate() error {
	if c.Smax < 1 {
		return ErrSmaxTooSmall
	}
	if c.Smax > 1 && c.N0 <= 0 {
		return ErrN0Required
	}
	if c.Smax > 2 && c.N1 <= 0 {
		return ErrN1Required
	}
	if c.Smax > 1 && c.Kappa <= 0 {
		return ErrKappaRequired
	}
	if c.Gravity == nil {
		return ErrGravityRequired
	}
	return nil
}
