// Package shell implements the adaptive shell-membership engine: the
// hierarchical partition of particles into dominant/subdominant/encounter
// role maps at each shell depth, and the Predict phases (bootstrap,
// max-drift reconciliation, pairwise encounter scans, collision re-entry)
// that decide which particles must descend to a finer sub-step.
//
// This is the hardest and largest single piece of the module: shell
// membership is itself a function of the trajectory evaluated during the
// step (via package predict), every phase must leave the three role maps
// correctly nested (Maps[s+1] ⊆ Maps[s]), and a physical collision
// discovered mid-scan can mutate the particle population and force the
// whole prediction to restart from phase P0/P1.
package shell
