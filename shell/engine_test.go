package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mercurana/body"
	"github.com/katalvlaran/mercurana/shell"
	"github.com/katalvlaran/mercurana/vector"
)

func TestNewEngine_AllocatesShellSlots(t *testing.T) {
	e := shell.NewEngine(4)
	assert.Len(t, e.Maps, 4)
	assert.Equal(t, 4, e.Smax)
}

func TestAllocate_SizesPerParticleArrays(t *testing.T) {
	e := shell.NewEngine(3)
	e.Allocate(5)

	assert.Len(t, e.InShellDominant, 5)
	assert.Len(t, e.InShellSubdominant, 5)
	assert.Len(t, e.InShellEncounter, 5)
	assert.Len(t, e.TDrifted, 5)
	assert.Len(t, e.MaxDriftDominant, 5)
	assert.Len(t, e.MaxDriftEncounter, 5)
	assert.Len(t, e.P0, 5)
	require.Len(t, e.Dcrit, 3)
	assert.Len(t, e.Dcrit[0], 5)
}

func TestAllocate_NoReallocationWhenAlreadyBigEnough(t *testing.T) {
	e := shell.NewEngine(2)
	e.Allocate(5)
	e.MaxDriftDominant[0] = 42

	e.Allocate(3) // smaller N: must not reallocate and wipe existing data
	assert.Equal(t, float64(42), e.MaxDriftDominant[0])
}

func TestResetStep_SnapshotsAndZeroesDrift(t *testing.T) {
	e := shell.NewEngine(2)
	e.Allocate(2)
	state := &body.State{
		Particles: []body.Particle{
			{Index: 0, Pos: vector.Vec3{X: 1}},
			{Index: 1, Pos: vector.Vec3{X: 2}},
		},
	}
	e.TDrifted[0] = 1.5
	e.TDrifted[1] = 2.5

	e.ResetStep(state)

	assert.Equal(t, float64(0), e.TDrifted[0])
	assert.Equal(t, float64(0), e.TDrifted[1])
	assert.Equal(t, state.Particles[0].Pos, e.P0[0].Pos)

	state.Particles[0].Pos.X = 99
	assert.Equal(t, float64(1), e.P0[0].Pos.X, "p0 snapshot must not alias live state")
}
