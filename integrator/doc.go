// 🚀 Package integrator wires packages vector, body, switching, dcrit,
// predict, shell, scheme, operator, gravity and collision into the public
// MERCURANA entry point: Configure once via functional Options, then drive
// a simulation with Part1 / Part2 / Synchronize / Reset.
//
// A typical host loop:
//
//	in := integrator.New(
//	    integrator.WithSmax(6),
//	    integrator.WithSubsteps(2, 2),
//	    integrator.WithGravity(&gravity.DirectSum{}),
//	)
//	if err := in.Part1(state); err != nil { ... }
//	for step := 0; step < nsteps; step++ {
//	    if err := in.Part2(state); err != nil { ... }
//	}
//	in.Synchronize(state)
//
// Part1 validates configuration and (re)allocates every owned buffer;
// Part2 performs exactly one global step (snapshot, preprocessor if
// needed, one driver step at shell 0, mark desynchronized, and — in safe
// mode, the default — an immediate synchronize); Synchronize applies the
// scheme's postprocessor so stored state corresponds to a canonical time,
// a no-op if already synchronized. Reset releases every owned buffer and
// restores the constructor defaults.
package integrator
