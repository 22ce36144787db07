package gravity

import (
	"math"

	"github.com/katalvlaran/mercurana/body"
	"github.com/katalvlaran/mercurana/dcrit"
	"github.com/katalvlaran/mercurana/shell"
	"github.com/katalvlaran/mercurana/switching"
)

// Gravity is the external gravity routine mercurana's Kick sub-operator
// invokes: UpdateAcceleration fills every particle's Acc field based on
// the current shell selector, the per-shell role maps, and the switching
// policy used to blend contributions across the shell boundary;
// ApplyJerk adds a second-derivative correction weighted by v (a no-op
// implementation is entitled to ignore v==0 calls, which is the common
// case — only schemes with a non-zero jerk weight call it at all).
type Gravity interface {
	UpdateAcceleration(state *body.State, shellIdx int, maps *shell.Maps, pol switching.Policy) error
	ApplyJerk(state *body.State, v float64) error
}

// DirectSum is a brute-force O(n²) pairwise Newtonian gravity routine,
// provided only as a reference implementation for tests. Dcrit, if set,
// enables shell-aware switching: a pair's contribution is blended by
// pol.L(separation, dcrit[shellIdx], dcrit[shellIdx-1]) so that force
// smoothly hands off between adjacent shells; a nil Dcrit sums every pair
// at full strength, appropriate for single-shell scenarios.
type DirectSum struct {
	Dcrit *dcrit.Table
}

// UpdateAcceleration implements Gravity.
func (g *DirectSum) UpdateAcceleration(state *body.State, shellIdx int, maps *shell.Maps, pol switching.Policy) error {
	particles := state.Particles
	for i := range particles {
		particles[i].Acc = particles[i].Acc.Scale(0)
	}

	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			weight := 1.0
			if g.Dcrit != nil && shellIdx > 0 {
				table := *g.Dcrit
				ri := table[shellIdx][i]
				if table[shellIdx][j] < ri {
					ri = table[shellIdx][j]
				}
				ro := table[shellIdx-1][i]
				if table[shellIdx-1][j] > ro {
					ro = table[shellIdx-1][j]
				}
				if ro > ri {
					d := particles[i].Pos.Sub(particles[j].Pos).Norm()
					weight = 1 - pol.L(d, ri, ro)
				}
			}

			dx := particles[j].Pos.Sub(particles[i].Pos)
			r2 := dx.Norm2()
			if r2 == 0 {
				continue
			}
			r := math.Sqrt(r2)
			invR3 := weight / (r2 * r)

			fi := dx.Scale(state.G * particles[j].Mass * invR3)
			fj := dx.Scale(-state.G * particles[i].Mass * invR3)
			particles[i].Acc = particles[i].Acc.Add(fi)
			particles[j].Acc = particles[j].Acc.Add(fj)
		}
	}
	return nil
}

// ApplyJerk is a no-op for DirectSum: no scheme in the scheme package
// currently requests a non-zero jerk weight.
func (g *DirectSum) ApplyJerk(state *body.State, v float64) error {
	return nil
}
