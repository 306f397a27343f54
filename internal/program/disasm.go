package program

import (
	"fmt"
	"strings"

	"github.com/funvibe/funbf/internal/token"
)

// Disassemble returns a human-readable listing of the program.
func Disassemble(p *Program, name string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("== %s ==\n", name))

	for offset, ins := range p.Instructions {
		sb.WriteString(fmt.Sprintf("%04d ", offset))

		if offset > 0 && ins.Line == p.Instructions[offset-1].Line {
			sb.WriteString("   | ")
		} else {
			sb.WriteString(fmt.Sprintf("%4d ", ins.Line))
		}

		switch ins.Op {
		case token.LoopOpen, token.LoopClose:
			sb.WriteString(fmt.Sprintf("%-12s -> %04d\n", ins.Op, ins.Partner))
		default:
			sb.WriteString(fmt.Sprintf("%s\n", ins.Op))
		}
	}

	return sb.String()
}
