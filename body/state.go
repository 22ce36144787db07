package body

import "github.com/katalvlaran/mercurana/vector"

// Particle is a single point mass: mass, radius, position, velocity and
// the acceleration written by the external gravity routine during a Kick.
type Particle struct {
	Index  int
	Mass   float64
	Radius float64
	Pos    vector.Vec3
	Vel    vector.Vec3
	Acc    vector.Vec3
}

// DriftedPos returns the particle's position advanced by dt along its
// current velocity, without mutating the particle: the same catch-up to a
// common drift time that the shell engine and predict.RMin2Drifted apply
// via vector.Vec3.DriftedBy (spec "drifted" predictor variant).
func (p Particle) DriftedPos(dt float64) vector.Vec3 {
	return p.Pos.DriftedBy(dt, p.Vel)
}

// State bundles the mutable particle array with the simulation scalars
// the integrator needs: the gravitational constant G, the fixed global
// step Dt, and the current simulation time T.
type State struct {
	Particles []Particle
	G         float64
	Dt        float64
	T         float64
}

// N returns the current particle count.
func (s *State) N() int {
	return len(s.Particles)
}

// Snapshot returns an independent copy of the particle slice, used as the
// step-start reference p0 against which drift displacement is measured.
func (s *State) Snapshot() []Particle {
	snap := make([]Particle, len(s.Particles))
	copy(snap, s.Particles)
	return snap
}
