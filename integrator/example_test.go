package integrator_test

import (
	"fmt"

	"github.com/katalvlaran/mercurana/body"
	"github.com/katalvlaran/mercurana/gravity"
	"github.com/katalvlaran/mercurana/integrator"
	"github.com/katalvlaran/mercurana/vector"
)

// ExampleIntegrator demonstrates the Part1/Part2/Synchronize lifecycle on
// a two-body circular orbit, using the package's bundled reference
// gravity routine.
func ExampleIntegrator() {
	state := &body.State{
		G:  1,
		Dt: 0.05,
		Particles: []body.Particle{
			{Index: 0, Mass: 1, Pos: vector.Vec3{}, Vel: vector.Vec3{}},
			{Index: 1, Mass: 1e-6, Pos: vector.Vec3{X: 1}, Vel: vector.Vec3{Y: 1}},
		},
	}

	in := integrator.New(
		integrator.WithSmax(1),
		integrator.WithGravity(&gravity.DirectSum{}),
	)

	if err := in.Part1(state); err != nil {
		fmt.Println("part1 error:", err)
		return
	}

	for step := 0; step < 4; step++ {
		if err := in.Part2(state); err != nil {
			fmt.Println("part2 error:", err)
			return
		}
	}

	r := state.Particles[1].Pos.Sub(state.Particles[0].Pos).Norm()
	fmt.Printf("orbital separation stays near 1: %.2f\n", r)

	// Output:
	// orbital separation stays near 1: 1.00
}
