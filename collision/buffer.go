package collision

import "github.com/katalvlaran/mercurana/body"

const initialCapacity = 32

// Record is one captured overlap between particles I and J, together with
// a snapshot of particle I's state at the moment of capture (the "ghost
// box" of the reference implementation) so the resolver can reconstruct
// the encounter geometry even if the particle array is mutated before it
// runs.
type Record struct {
	I, J     int
	Snapshot body.Particle
}

// Buffer is a flat, doubling append buffer of collision Records. It is
// reset (length truncated to zero, capacity retained) by
// shell.Engine.Predict before each next-shell pair scan and again after a
// resolver re-entry, per spec §4.7.
type Buffer struct {
	records []Record
}

// NewBuffer returns a Buffer pre-sized to the default initial capacity.
func NewBuffer() *Buffer {
	return &Buffer{records: make([]Record, 0, initialCapacity)}
}

// Reset truncates the buffer to zero length without releasing its backing
// array.
func (b *Buffer) Reset() {
	b.records = b.records[:0]
}

// Record appends a new collision between particles i and j, snapshotting
// particle i's current state.
func (b *Buffer) Record(i, j int, snapshot body.Particle) {
	b.records = append(b.records, Record{I: i, J: j, Snapshot: snapshot})
}

// Len returns the number of captured records.
func (b *Buffer) Len() int {
	return len(b.records)
}

// Records returns the captured records. The returned slice aliases the
// Buffer's internal storage and is only valid until the next Reset/Record.
func (b *Buffer) Records() []Record {
	return b.records
}

// Resolver is implemented by the host's direct-collision resolver: given
// the current state and the captured records, it decides what to do
// (merge, remove, bounce) and reports whether the particle count changed,
// which forces the shell engine to restart its prediction from the top.
type Resolver interface {
	Resolve(state *body.State, records []Record) (countChanged bool, err error)
}
