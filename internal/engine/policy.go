package engine

import "fmt"

// PointerPolicy decides what happens when the data pointer would move
// left of cell zero. The source language leaves this undefined, so the
// engine applies one explicit policy consistently.
type PointerPolicy int

const (
	// PointerClamp keeps the pointer at zero. The default, and the
	// least surprising choice.
	PointerClamp PointerPolicy = iota
	// PointerError halts the run with a fatal pointer-underflow error.
	PointerError
	// PointerWrap moves the pointer to the tape's current right
	// boundary.
	PointerWrap
)

func (p PointerPolicy) String() string {
	switch p {
	case PointerClamp:
		return "clamp"
	case PointerError:
		return "error"
	case PointerWrap:
		return "wrap"
	}
	return "unknown"
}

// ParsePointerPolicy parses a policy name from configuration.
func ParsePointerPolicy(s string) (PointerPolicy, error) {
	switch s {
	case "", "clamp":
		return PointerClamp, nil
	case "error":
		return PointerError, nil
	case "wrap":
		return PointerWrap, nil
	}
	return 0, fmt.Errorf("unknown pointer policy %q (want clamp, error or wrap)", s)
}

// EOFPolicy decides what an Input instruction does once the input
// source is exhausted. Exhaustion is a boundary condition, never a
// crash, so batch runs complete deterministically.
type EOFPolicy int

const (
	// EOFZero stores zero into the current cell. The default.
	EOFZero EOFPolicy = iota
	// EOFNoChange leaves the current cell untouched.
	EOFNoChange
)

func (p EOFPolicy) String() string {
	switch p {
	case EOFZero:
		return "zero"
	case EOFNoChange:
		return "nochange"
	}
	return "unknown"
}

// ParseEOFPolicy parses a policy name from configuration.
func ParseEOFPolicy(s string) (EOFPolicy, error) {
	switch s {
	case "", "zero":
		return EOFZero, nil
	case "nochange":
		return EOFNoChange, nil
	}
	return 0, fmt.Errorf("unknown eof policy %q (want zero or nochange)", s)
}
