// Package engine implements the tape machine: a growable tape of
// wrapping 8-bit cells, a data pointer and a program counter, advanced
// one instruction at a time.
package engine

// MinTapeSize is the initial tape length. The tape extends on demand
// when the pointer moves past the right end; growth is monotonic for
// the life of one run.
const MinTapeSize = 256

// Tape is the ordered, conceptually unbounded sequence of 8-bit cells.
// Cell arithmetic always wraps modulo 256 and never errors.
type Tape struct {
	cells []byte
}

// NewTape creates a zero-filled tape of at least MinTapeSize cells.
func NewTape(size int) *Tape {
	if size < MinTapeSize {
		size = MinTapeSize
	}
	return &Tape{cells: make([]byte, size)}
}

// Len returns the current tape length.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Get returns the cell value at index i.
func (t *Tape) Get(i int) byte {
	return t.cells[i]
}

// Set stores v into the cell at index i.
func (t *Tape) Set(i int, v byte) {
	t.cells[i] = v
}

// Add adds delta to the cell at index i, wrapping modulo 256.
func (t *Tape) Add(i int, delta byte) {
	t.cells[i] += delta
}

// Extend grows the tape with zero-valued cells so that index i is
// addressable. Previously written cells keep their values.
func (t *Tape) Extend(i int) {
	if i < len(t.cells) {
		return
	}
	grown := len(t.cells)
	for grown <= i {
		grown *= 2
	}
	cells := make([]byte, grown)
	copy(cells, t.cells)
	t.cells = cells
}

// Cells returns a read-only view of the tape for rendering.
func (t *Tape) Cells() []byte {
	return t.cells
}
