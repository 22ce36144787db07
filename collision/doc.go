// Package collision implements the flat capture buffer the shell
// membership engine appends to when a predicted closest approach falls
// inside the sum of two particles' physical radii, plus the Resolver
// interface the host implements to actually remove/merge the colliding
// bodies.
package collision
