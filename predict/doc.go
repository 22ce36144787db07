// Package predict computes the minimum squared distance between two
// particles over a linear drift segment, the core primitive the shell
// membership engine uses to decide whether a pair must descend a shell.
package predict
