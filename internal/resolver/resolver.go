// Package resolver turns the token stream into an indexed instruction
// sequence with resolved loop partners.
//
// Resolution is all-or-nothing: on any bracket mismatch no program is
// returned, so the engine never sees a partially resolved sequence and
// can implement loops as plain index jumps with no runtime bracket
// search.
package resolver

import (
	"github.com/funvibe/funbf/internal/diagnostics"
	"github.com/funvibe/funbf/internal/program"
	"github.com/funvibe/funbf/internal/token"
)

// Resolve scans the tokens left to right, maintaining a stack of
// pending LoopOpen indices. Every LoopOpen ends up with exactly one
// LoopClose partner at a strictly greater index and vice versa; the
// partner indices are symmetric.
func Resolve(tokens []token.Token) (*program.Program, *diagnostics.Error) {
	instructions := make([]program.Instruction, len(tokens))
	var opens []int

	for i, tok := range tokens {
		instructions[i] = program.Instruction{
			Op:      tok.Type,
			Partner: -1,
			Line:    tok.Line,
			Column:  tok.Column,
		}

		switch tok.Type {
		case token.LoopOpen:
			opens = append(opens, i)
		case token.LoopClose:
			if len(opens) == 0 {
				return nil, diagnostics.NewError(diagnostics.ErrE002, tok.Line, tok.Column, "']' has no matching '['")
			}
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			instructions[open].Partner = i
			instructions[i].Partner = open
		}
	}

	if len(opens) > 0 {
		// Report the earliest unmatched open for diagnostics.
		first := instructions[opens[0]]
		return nil, diagnostics.NewError(diagnostics.ErrE001, first.Line, first.Column, "'[' has no matching ']'")
	}

	return &program.Program{Instructions: instructions}, nil
}
