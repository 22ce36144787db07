// Package mercurana implements MERCURANA, an adaptive symplectic
// multi-step integrator for gravitational N-body dynamics.
//
// 🚀 What is MERCURANA?
//
//	A shell-based generalization of the leapfrog: particles are
//	partitioned at runtime into nested encounter shells, and each shell
//	is advanced with an operator-split symplectic scheme sized to its own
//	timescale — close encounters get small sub-steps without forcing the
//	whole system onto them.
//
// ✨ Key packages:
//
//	body/       — Particle and State, the data model every component shares
//	shell/      — the Engine: runtime shell-membership partitioning (Predict)
//	scheme/     — the EOS operator-splitting Driver and its named coefficient sets
//	operator/   — Drift/Kick, the recursive per-shell position/velocity update
//	gravity/    — the Gravity interface a host supplies (pairwise summation
//	              itself is out of scope; DirectSum is a reference implementation)
//	dcrit/      — per-shell critical-radius table computation
//	collision/  — physical-overlap recording and resolution
//	switching/  — the smooth C∞ blending function used at shell boundaries
//	integrator/ — the public Integrator: Part1/Part2/Synchronize/Reset
//
// Quick usage sketch:
//
//	in := integrator.New(integrator.WithSubsteps(2, 2), integrator.WithGravity(myGravity))
//	if err := in.Part1(state); err != nil { ... }
//	for step := 0; step < nsteps; step++ {
//	    if err := in.Part2(state); err != nil { ... }
//	}
//
// See the integrator package doc for a complete worked example.
package mercurana
