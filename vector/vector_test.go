package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mercurana/vector"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := vector.Vec3{X: 1, Y: 2, Z: 3}
	b := vector.Vec3{X: 4, Y: -1, Z: 0.5}

	assert.Equal(t, vector.Vec3{X: 5, Y: 1, Z: 3.5}, a.Add(b))
	assert.Equal(t, vector.Vec3{X: -3, Y: 3, Z: 2.5}, a.Sub(b))
	assert.Equal(t, vector.Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.InDelta(t, 3.5, a.Dot(b), 1e-12)
	assert.InDelta(t, 14, a.Norm2(), 1e-12)
}

func TestVec3_DriftedBy(t *testing.T) {
	p := vector.Vec3{X: 0, Y: 0, Z: 0}
	v := vector.Vec3{X: 1, Y: 2, Z: 0}

	got := p.DriftedBy(2, v)

	assert.Equal(t, vector.Vec3{X: 2, Y: 4, Z: 0}, got)
}

func TestVec3_Norm(t *testing.T) {
	v := vector.Vec3{X: 3, Y: 4, Z: 0}

	assert.InDelta(t, 5, v.Norm(), 1e-12)
	assert.InDelta(t, 25, v.Norm2(), 1e-12)
}
