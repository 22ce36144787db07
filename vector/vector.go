package vector

import "math"

// Vec3 is a Cartesian 3-vector. Zero value is the origin.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the inner product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Norm2 returns |v|^2, the squared Euclidean norm.
func (v Vec3) Norm2() float64 {
	return v.Dot(v)
}

// Norm returns |v|, the Euclidean norm.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Norm2())
}

// DriftedBy returns v advanced by dt along vel: v + dt*vel.
// Used to bring a particle's snapshot position up to a common drift time
// before comparing it against another particle (see predict.RMin2Drifted).
func (v Vec3) DriftedBy(dt float64, vel Vec3) Vec3 {
	return v.Add(vel.Scale(dt))
}
