// Package vector implements Vec3, the 3-component value type used
// throughout mercurana for positions, velocities and accelerations.
package vector
