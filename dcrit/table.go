package dcrit

import (
	"math"

	"github.com/katalvlaran/mercurana/body"
	"github.com/katalvlaran/mercurana/scheme"
)

// Table is dcrit[shell][particle]: the critical pairwise separation below
// which a pair at that shell must descend to shell+1. Monotonic
// non-increasing in shell for a fixed particle.
type Table [][]float64

// Params are the scalars that parameterize the critical-radius formula:
// the gravitational constant G, the fixed global step Dt, the encounter
// sensitivity constant Kappa (>0), an optional Gm0r0 scale enabling the
// relativistic-like blend term, and the exponent Alpha (0.5 uses an
// optimized sqrt path; any other value uses the generic pow path).
type Params struct {
	G     float64
	Dt    float64
	Kappa float64
	Gm0r0 float64
	Alpha float64
}

// newtonCbrt computes a^(1/3) via 200 iterations of Newton's method on
// x^3=a, matching the platform-independent cube root the reference
// implementation uses (math.Cbrt is deliberately not substituted: the
// spec calls out machine-independence as a requirement here).
func newtonCbrt(a float64) float64 {
	x := 1.0
	for k := 0; k < 200; k++ {
		x2 := x * x
		x += (a/x2 - x) / 3
	}
	return x
}

// dgravOf returns max(d_grav(i), d_rel(i)) for particle mass m, per
// spec §4.2.
func dgravOf(p Params, m float64) float64 {
	dgrav := newtonCbrt(p.G * p.Dt * p.Dt * m / p.Kappa)
	if p.Gm0r0 > 0 {
		dgravrel := math.Sqrt(math.Sqrt(p.G * p.G * p.Dt * p.Dt * m * m / (p.Gm0r0 * p.Kappa)))
		if dgravrel > dgrav {
			dgrav = dgravrel
		}
	}
	return dgrav
}

// New allocates a Table with nshells rows, each sized for n particles.
func New(nshells, n int) Table {
	t := make(Table, nshells)
	for s := range t {
		t[s] = make([]float64, n)
	}
	return t
}

// Recompute fills table in place from particles and params, chaining the
// longest-drift coefficient of phi0 (shell 0) / phi1 (shells > 0) and the
// corresponding sub-step counts n0/n1 to derive each shell's effective
// sub-step Δt_s, per spec §4.2.
//
// table must already be sized New(nshells, len(particles)); Recompute does
// not reallocate it.
func Recompute(table Table, particles []body.Particle, p Params, phi0, phi1 scheme.SchemeID, n0, n1 int) {
	nshells := len(table)
	dtShell := p.Dt

	for s := 0; s < nshells; s++ {
		ratio := dtShell / p.Dt
		var scaleFactor float64
		if p.Alpha == 0.5 {
			scaleFactor = math.Sqrt(ratio)
		} else {
			scaleFactor = math.Pow(ratio, p.Alpha)
		}

		for i, particle := range particles {
			table[s][i] = scaleFactor * dgravOf(p, particle.Mass)
		}

		phi := phi1
		n := n1
		if s == 0 {
			phi = phi0
			n = n0
		}
		if n <= 0 {
			n = n0
		}
		dtShell *= scheme.LongestDrift(phi)
		dtShell /= float64(n)
	}
}
