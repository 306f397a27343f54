// Package token defines the eight instructions of the tape-machine
// language and their source-character mapping.
package token

// Type identifies one of the eight instructions.
type Type int

const (
	// PointerRight moves the data pointer one cell to the right.
	PointerRight Type = iota
	// PointerLeft moves the data pointer one cell to the left.
	PointerLeft
	// Increment adds one to the cell under the pointer (mod 256).
	Increment
	// Decrement subtracts one from the cell under the pointer (mod 256).
	Decrement
	// Output yields the cell under the pointer as a byte.
	Output
	// Input stores one byte from the input source into the cell.
	Input
	// LoopOpen enters the loop body, or skips past the matching LoopClose
	// when the cell is zero.
	LoopOpen
	// LoopClose re-enters the loop body when the cell is non-zero.
	LoopClose
)

var chars = [...]byte{
	PointerRight: '>',
	PointerLeft:  '<',
	Increment:    '+',
	Decrement:    '-',
	Output:       '.',
	Input:        ',',
	LoopOpen:     '[',
	LoopClose:    ']',
}

var names = [...]string{
	PointerRight: "PTR_RIGHT",
	PointerLeft:  "PTR_LEFT",
	Increment:    "INC",
	Decrement:    "DEC",
	Output:       "OUTPUT",
	Input:        "INPUT",
	LoopOpen:     "LOOP_OPEN",
	LoopClose:    "LOOP_CLOSE",
}

// FromChar maps a source character to its instruction type.
// The second return value is false for every non-instruction character.
func FromChar(c byte) (Type, bool) {
	switch c {
	case '>':
		return PointerRight, true
	case '<':
		return PointerLeft, true
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case '.':
		return Output, true
	case ',':
		return Input, true
	case '[':
		return LoopOpen, true
	case ']':
		return LoopClose, true
	}
	return 0, false
}

// Char returns the source character for the instruction type.
func (t Type) Char() byte {
	return chars[t]
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		return "ILLEGAL"
	}
	return names[t]
}

// Token is one instruction as it appeared in the source, with its
// position for diagnostics. Immutable once produced by the lexer.
type Token struct {
	Type   Type
	Line   int
	Column int
}
