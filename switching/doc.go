// Package switching implements the smooth shell-blending function L(d; ri, ro)
// and its derivative dL/dd.
//
// 🚀 What is L?
//
//	L is an S-curve mapping a pairwise distance d into [0,1]: 0 inside the
//	inner radius ri, 1 outside the outer radius ro, and a C∞-smooth blend
//	between. Symplectic adaptivity needs every derivative of L to vanish at
//	both endpoints, or the induced Hamiltonian splitting picks up a kink at
//	the shell boundary.
//
// ✨ Key features:
//   - Default(): the canonical f(y)/(f(y)+f(1-y)) bump, f(y)=exp(-1/y)
//   - Polynomial(n): a cheaper finite-order smoothstep alternative
//   - Policy is a plain value — install your own (L, dL/dd) pair if neither
//     default fits
package switching
