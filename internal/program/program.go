// Package program defines the resolved, executable form of a parsed
// source file: a flat instruction sequence whose loop instructions carry
// the index of their structural partner.
package program

import "github.com/funvibe/funbf/internal/token"

// Instruction is one resolved instruction. For LoopOpen and LoopClose,
// Partner holds the sequence index of the matching bracket; it is
// assigned once at resolution time and never mutated. For every other
// opcode Partner is -1.
type Instruction struct {
	Op      token.Type
	Partner int
	Line    int
	Column  int
}

// Program is an ordered instruction sequence. Indices into the sequence
// double as jump targets for the execution engine and as labels for the
// code generator.
type Program struct {
	Instructions []Instruction
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.Instructions)
}

// At returns the instruction at index i.
func (p *Program) At(i int) Instruction {
	return p.Instructions[i]
}

// Source reconstructs the dense source text of the program, one
// character per instruction.
func (p *Program) Source() string {
	buf := make([]byte, len(p.Instructions))
	for i, ins := range p.Instructions {
		buf[i] = ins.Op.Char()
	}
	return string(buf)
}

// NeedsInput reports whether the program contains at least one Input
// instruction.
func (p *Program) NeedsInput() bool {
	for _, ins := range p.Instructions {
		if ins.Op == token.Input {
			return true
		}
	}
	return false
}
