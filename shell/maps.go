package shell

// Maps holds the three role sequences for one shell depth: the ordered,
// append-only lists of global particle indices currently dominant,
// subdominant, or in encounter at that shell.
//
// Maps are rebuilt from scratch by every Predict call targeting the shell
// above them — per spec §9 they are NOT a persistent structure across
// global steps, only truncated-and-regrown within one.
type Maps struct {
	Dominant    []int
	Subdominant []int
	Encounter   []int
}

// reset truncates all three role slices to zero length, retaining their
// backing arrays.
func (m *Maps) reset() {
	m.Dominant = m.Dominant[:0]
	m.Subdominant = m.Subdominant[:0]
	m.Encounter = m.Encounter[:0]
}
