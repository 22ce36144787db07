package shell

import (
	"math"

	"github.com/katalvlaran/mercurana/body"
	"github.com/katalvlaran/mercurana/predict"
)

// Predict is the entry point called immediately before drifting shell s
// by dt: it (re)establishes shell s's own role membership — via bootstrap
// at s=0, or max-drift reconciliation at s>0 — then, budget permitting,
// populates shell s+1's role maps with every particle that must descend
// and records any physical overlap discovered along the way.
//
// Shell s's own membership is always (re)established, even when the shell
// budget is exhausted: Drift still needs Maps[s] to know what it owns. If
// s+1 is at or beyond Smax, only the descent into s+1 is skipped — the
// current shell is the deepest reachable, and accuracy is capped rather
// than the program crashing.
func (e *Engine) Predict(state *body.State, s int, dt float64) error {
	if s == 0 {
		e.bootstrap(state)
	} else if err := e.maxDriftReconciliation(state, s, dt); err != nil {
		return err
	}

	if s+1 >= e.Smax {
		return nil
	}

	e.Collisions.Reset()
	e.Maps[s+1].reset()

	e.pairScans(state, s, dt)

	if e.Collisions.Len() > 0 {
		if e.Resolver == nil {
			return ErrNoResolver
		}
		nBefore := state.N()
		changed, err := e.Resolver.Resolve(state, e.Collisions.Records())
		if err != nil {
			return err
		}
		e.Collisions.Reset()
		if changed || state.N() != nBefore {
			return e.Predict(state, s, dt)
		}
	}

	return nil
}

// bootstrap implements phase P0: set up shell 0's maps from the
// dominant/subdominant partition and reset every per-particle bookkeeping
// array to its step-start default.
func (e *Engine) bootstrap(state *body.State) {
	n := state.N()
	m := &e.Maps[0]
	m.reset()

	for i := 0; i < e.NDominant; i++ {
		m.Dominant = append(m.Dominant, i)
	}
	for i := e.NDominant; i < n; i++ {
		m.Subdominant = append(m.Subdominant, i)
		m.Encounter = append(m.Encounter, i)
	}

	for i := 0; i < n; i++ {
		e.MaxDriftDominant[i] = infiniteDrift
		e.MaxDriftEncounter[i] = infiniteDrift
		e.InShellEncounter[i] = 0
		e.InShellDominant[i] = 0
		e.InShellSubdominant[i] = 0
	}
}

// maxDriftReconciliation implements phase P1: for each encounter particle
// at shell s whose drift since p0 exceeds its max-drift slack, re-scan
// every shell-0 encounter particle not yet present at shell s and promote
// any that are now found to be within encounter range.
func (e *Engine) maxDriftReconciliation(state *body.State, s int, dt float64) error {
	particles := state.Particles
	shell0Encounter := e.Maps[0].Encounter

	for _, mi := range e.Maps[s].Encounter {
		drift := e.driftDisplacement(state, mi)
		if drift <= e.MaxDriftEncounter[mi] {
			continue
		}

		for _, mj := range shell0Encounter {
			if e.InShellEncounter[mj] >= s {
				continue // j already participates at this depth
			}

			offset := e.TDrifted[mi] - e.TDrifted[mj]
			rmin2 := predict.RMin2Drifted(particles[mi], particles[mj], dt, offset)
			dcritsum := e.Dcrit[s][mi] + e.Dcrit[s][mj]

			if rmin2 < dcritsum*dcritsum {
				e.InShellEncounter[mj] = s
				for ss := 1; ss <= s; ss++ {
					e.Maps[ss].Encounter = append(e.Maps[ss].Encounter, mj)
				}
				particles[mj].Pos = particles[mj].Pos.DriftedBy(offset, particles[mj].Vel)
			} else {
				maxdrift := (math.Sqrt(rmin2) - dcritsum) / 2
				if maxdrift < e.MaxDriftDominant[mi] {
					e.MaxDriftDominant[mi] = maxdrift
				}
			}
		}
	}
	return nil
}

// pairScans implements phase P2: the dominant-dominant, dominant-
// subdominant and encounter-encounter pairwise scans at shell s.
func (e *Engine) pairScans(state *body.State, s int, dt float64) {
	dom := e.Maps[s].Dominant
	sub := e.Maps[s].Subdominant
	enc := e.Maps[s].Encounter

	for ii := 0; ii < len(dom); ii++ {
		for jj := ii + 1; jj < len(dom); jj++ {
			e.scanPair(state, s, dt, dom[ii], dom[jj],
				e.InShellDominant, e.InShellDominant,
				&e.Maps[s+1].Dominant, &e.Maps[s+1].Dominant,
				e.MaxDriftDominant, e.MaxDriftDominant)
		}
	}

	for _, mi := range dom {
		for _, mj := range sub {
			e.scanPair(state, s, dt, mi, mj,
				e.InShellDominant, e.InShellSubdominant,
				&e.Maps[s+1].Dominant, &e.Maps[s+1].Subdominant,
				e.MaxDriftDominant, e.MaxDriftDominant)
		}
	}

	for ii := 0; ii < len(enc); ii++ {
		for jj := ii + 1; jj < len(enc); jj++ {
			e.scanPair(state, s, dt, enc[ii], enc[jj],
				e.InShellEncounter, e.InShellEncounter,
				&e.Maps[s+1].Encounter, &e.Maps[s+1].Encounter,
				e.MaxDriftEncounter, e.MaxDriftEncounter)
		}
	}
}

// scanPair evaluates the encounter predictor for one ordered pair (mi,mj),
// records a collision if their physical radii overlap at closest approach
// (and DirectCollisions is enabled), and either promotes each endpoint
// into its own next-shell map (if it currently belongs to shell s in that
// role) or tightens that endpoint's max-drift slack.
//
// inShellI/inShellJ are updated in place by element assignment (indexing
// never grows them, so passing the slices by value suffices); the two
// next-shell maps are passed by address because promotion appends to them
// and append may reallocate the backing array.
func (e *Engine) scanPair(
	state *body.State, s int, dt float64, mi, mj int,
	inShellI, inShellJ []int,
	nextMapI, nextMapJ *[]int,
	maxDriftI, maxDriftJ []float64,
) {
	particles := state.Particles
	rmin2 := predict.RMin2(particles[mi], particles[mj], dt)

	rsum := particles[mi].Radius + particles[mj].Radius
	if e.DirectCollisions && rmin2 < rsum*rsum {
		e.Collisions.Record(mi, mj, particles[mi])
	}

	dcritsum := e.Dcrit[s][mi] + e.Dcrit[s][mj]
	if rmin2 < dcritsum*dcritsum {
		if inShellI[mi] == s {
			inShellI[mi] = s + 1
			*nextMapI = append(*nextMapI, mi)
		}
		if inShellJ[mj] == s {
			inShellJ[mj] = s + 1
			*nextMapJ = append(*nextMapJ, mj)
		}
		return
	}

	maxdrift := (math.Sqrt(rmin2) - dcritsum) / 2
	if maxdrift < maxDriftI[mi] {
		maxDriftI[mi] = maxdrift
	}
	if maxdrift < maxDriftJ[mj] {
		maxDriftJ[mj] = maxdrift
	}
}
