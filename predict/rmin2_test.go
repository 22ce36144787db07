package predict_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mercurana/body"
	"github.com/katalvlaran/mercurana/predict"
	"github.com/katalvlaran/mercurana/vector"
)

func TestRMin2_BoundsProperty(t *testing.T) {
	// property 8: rmin2 <= min(r(0)^2, r(dt)^2), equality when the
	// closest-approach time lies outside [0,dt].
	cases := []struct {
		name   string
		p1, p2 body.Particle
		dt     float64
	}{
		{
			name: "receding pair: extremum outside window",
			p1:   body.Particle{Pos: vector.Vec3{X: 0}, Vel: vector.Vec3{X: 0}},
			p2:   body.Particle{Pos: vector.Vec3{X: 1}, Vel: vector.Vec3{X: 1}},
			dt:   1,
		},
		{
			name: "head-on pair: extremum inside window",
			p1:   body.Particle{Pos: vector.Vec3{X: -1}, Vel: vector.Vec3{X: 1}},
			p2:   body.Particle{Pos: vector.Vec3{X: 1}, Vel: vector.Vec3{X: -1}},
			dt:   1,
		},
		{
			name: "zero relative velocity",
			p1:   body.Particle{Pos: vector.Vec3{X: 0}, Vel: vector.Vec3{X: 1}},
			p2:   body.Particle{Pos: vector.Vec3{X: 2}, Vel: vector.Vec3{X: 1}},
			dt:   5,
		},
		{
			name: "negative dt",
			p1:   body.Particle{Pos: vector.Vec3{X: -1}, Vel: vector.Vec3{X: 1}},
			p2:   body.Particle{Pos: vector.Vec3{X: 1}, Vel: vector.Vec3{X: -1}},
			dt:   -1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r0 := c.p1.Pos.Sub(c.p2.Pos).Norm2()
			p1End := c.p1.Pos.DriftedBy(c.dt, c.p1.Vel)
			p2End := c.p2.Pos.DriftedBy(c.dt, c.p2.Vel)
			rEnd := p1End.Sub(p2End).Norm2()
			bound := math.Min(r0, rEnd)

			got := predict.RMin2(c.p1, c.p2, c.dt)

			assert.LessOrEqual(t, got, bound+1e-9)
		})
	}
}

func TestRMin2_HeadOnCollisionCourse(t *testing.T) {
	p1 := body.Particle{Pos: vector.Vec3{X: -1}, Vel: vector.Vec3{X: 1}}
	p2 := body.Particle{Pos: vector.Vec3{X: 1}, Vel: vector.Vec3{X: -1}}

	got := predict.RMin2(p1, p2, 1)

	assert.InDelta(t, 0, got, 1e-9, "bodies meet exactly at x=0 at the end of the segment")
}

func TestRMin2Drifted_CatchesUpP2(t *testing.T) {
	p1 := body.Particle{Pos: vector.Vec3{X: 0}, Vel: vector.Vec3{X: 0}}
	p2 := body.Particle{Pos: vector.Vec3{X: 5}, Vel: vector.Vec3{X: -1}}

	// Drifting p2 by 5 along its own velocity brings it to x=0, coincident with p1.
	got := predict.RMin2Drifted(p1, p2, 0, 5)

	assert.InDelta(t, 0, got, 1e-9)
}
