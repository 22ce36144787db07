// Package scheme implements the operator-splitting ("EOS") driver that
// MERCURANA treats as an external collaborator: given a scheme id it knows
// the published drift/kick coefficient tables for that symplectic
// splitting, and it knows how to sequence a preprocessor, N steps, and a
// postprocessor around caller-supplied drift and kick callbacks.
//
// MERCURANA's own core never depends on the numeric values of a
// coefficient table beyond one number per scheme — the longest single
// drift sub-step, used by dcrit to size the critical radius at each shell
// (see LongestDrift) — but the full tables are kept here because a driver
// that only knew one coefficient per scheme would not actually be able to
// drive a step.
package scheme
