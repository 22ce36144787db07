// Package gravity defines the Gravity interface mercurana consumes to
// fill particle accelerations and apply jerk corrections — the pairwise
// gravity summation itself is explicitly out of scope for this module
// (spec §1) and is always supplied by the host.
//
// DirectSum, a brute-force O(n²) reference implementation, is provided
// only so the integrator's own tests have something concrete to exercise;
// production hosts are expected to supply their own (tree code, GPU
// kernel, etc.).
package gravity
