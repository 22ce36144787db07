package shell

import (
	"math"

	"github.com/katalvlaran/mercurana/body"
	"github.com/katalvlaran/mercurana/collision"
	"github.com/katalvlaran/mercurana/dcrit"
)

// infiniteDrift is the "essentially unbounded" sentinel maxdrift[i] is
// initialized to at bootstrap, matching the reference implementation's
// 1e300.
const infiniteDrift = 1e300

// Engine owns every per-shell and per-particle array the membership
// machinery needs: the role maps at each shell depth, the deepest-shell
// bookkeeping per role, the drift-time and max-drift-slack bookkeeping,
// and the step-start particle snapshot p0.
//
// An Engine is reallocated (not resized in place) whenever N grows or
// Smax changes; no external component may retain a slice obtained from it
// across a Reset.
type Engine struct {
	Smax      int
	NDominant int

	Maps []Maps

	InShellDominant    []int
	InShellSubdominant []int
	InShellEncounter   []int

	TDrifted          []float64
	MaxDriftDominant  []float64
	MaxDriftEncounter []float64
	P0                []body.Particle

	Dcrit dcrit.Table

	Collisions       *collision.Buffer
	Resolver         collision.Resolver
	DirectCollisions bool

	allocatedN int
}

// NewEngine returns an Engine with no particles allocated yet; call
// Allocate before the first Predict.
func NewEngine(smax int) *Engine {
	return &Engine{
		Smax:       smax,
		Maps:       make([]Maps, smax),
		Collisions: collision.NewBuffer(),
	}
}

// Allocate (re)sizes every per-particle array and per-shell map backing
// store for n particles. It is a no-op if the engine is already sized for
// at least n particles and Smax is unchanged, matching the reference
// implementation's "reallocate only when N grows" rule.
func (e *Engine) Allocate(n int) {
	if e.allocatedN >= n && len(e.Maps) == e.Smax {
		return
	}

	e.Maps = make([]Maps, e.Smax)
	for s := range e.Maps {
		e.Maps[s] = Maps{
			Dominant:    make([]int, 0, n),
			Subdominant: make([]int, 0, n),
			Encounter:   make([]int, 0, n),
		}
	}

	e.InShellDominant = make([]int, n)
	e.InShellSubdominant = make([]int, n)
	e.InShellEncounter = make([]int, n)
	e.TDrifted = make([]float64, n)
	e.MaxDriftDominant = make([]float64, n)
	e.MaxDriftEncounter = make([]float64, n)
	e.P0 = make([]body.Particle, n)
	e.Dcrit = dcrit.New(e.Smax, n)

	e.allocatedN = n
}

// ResetStep snapshots state into p0 and zeroes t_drifted ahead of a fresh
// global step (spec §6 part2: "snapshot p0, zero t_drifted").
func (e *Engine) ResetStep(state *body.State) {
	copy(e.P0, state.Particles)
	for i := range e.TDrifted {
		e.TDrifted[i] = 0
	}
}

// driftDisplacement returns |particles[i].Pos - p0[i].Pos|, the distance
// particle i has moved since the start of the current global step.
func (e *Engine) driftDisplacement(state *body.State, i int) float64 {
	d := state.Particles[i].Pos.Sub(e.P0[i].Pos)
	return math.Sqrt(d.Norm2())
}
