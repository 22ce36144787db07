package integrator

import "log"

// Reporter receives non-fatal advisories: the collision-mode override and
// desynchronized-state-at-recompute notices Part1 issues, warnings
// spec.md §7 classifies as "step proceeds, report only". DefaultConfig
// installs noopReporter, so the package has no hard
// dependency on any logging library while still being wireable to one via
// WithReporter.
type Reporter interface {
	Warn(msg string)
	Error(msg string)
}

type noopReporter struct{}

func (noopReporter) Warn(string)  {}
func (noopReporter) Error(string) {}

// StdReporter adapts Reporter to the standard library logger, the common
// case for hosts that just want advisories on stderr.
type StdReporter struct{}

// Warn logs msg prefixed "mercurana: warning:".
func (StdReporter) Warn(msg string) {
	log.Printf("mercurana: warning: %s", msg)
}

// Error logs msg prefixed "mercurana: error:".
func (StdReporter) Error(msg string) {
	log.Printf("mercurana: error: %s", msg)
}
