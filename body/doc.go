// Package body defines the particle data model consumed by every
// mercurana component: Particle and the per-step State that groups the
// particle slice together with the simulation scalars (G, dt, t).
//
// Particles are identified by their position (Index) in the State's
// Particles slice. Index identity is stable within a single global step;
// collision resolution may renumber particles between steps, so no
// mercurana component is permitted to retain an Index across a Reset or
// across a collision-triggered resolver call.
package body
