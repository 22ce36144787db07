// Package dcrit computes the critical-radius table dcrit[shell][particle]:
// the per-shell, per-particle pairwise separation below which the shell
// membership engine must descend a pair to a finer shell.
package dcrit
