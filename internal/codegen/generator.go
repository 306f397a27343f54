// Package codegen turns a resolved program into the source of a
// standalone Go module with equivalent behavior. Runs of repeated
// instructions are collapsed into single statements; this keeps the
// generated files small and changes nothing else.
package codegen

import (
	"fmt"
	"strings"

	"github.com/funvibe/funbf/internal/program"
	"github.com/funvibe/funbf/internal/token"
)

// PointerMode selects the pointer-bounds handling compiled into the
// generated code. It is independent of the interpreter's policy: the
// generated program has a fixed-size tape, so the right boundary needs
// handling too.
type PointerMode int

const (
	// PointerClamp pins the pointer inside [0, memSize).
	PointerClamp PointerMode = iota
	// PointerWrap wraps the pointer around the tape boundaries.
	PointerWrap
	// PointerUnchecked emits no bounds handling; out-of-range movement
	// panics with an index error at runtime.
	PointerUnchecked
)

// ParsePointerMode parses a mode name from a command-line flag.
func ParsePointerMode(s string) (PointerMode, error) {
	switch s {
	case "", "clamp":
		return PointerClamp, nil
	case "wrap":
		return PointerWrap, nil
	case "unchecked":
		return PointerUnchecked, nil
	}
	return 0, fmt.Errorf("unknown pointer mode %q (want clamp, wrap or unchecked)", s)
}

// EOFMode selects what a read does once input is exhausted.
type EOFMode int

const (
	// EOFZero stores zero into the current cell.
	EOFZero EOFMode = iota
	// EOFNoChange leaves the cell untouched.
	EOFNoChange
)

// ParseEOFMode parses a mode name from a command-line flag.
func ParseEOFMode(s string) (EOFMode, error) {
	switch s {
	case "", "zero":
		return EOFZero, nil
	case "nochange":
		return EOFNoChange, nil
	}
	return 0, fmt.Errorf("unknown eof mode %q (want zero or nochange)", s)
}

// Options configure the generator. Cells are always uint8 and always
// wrap; Go's unsigned arithmetic gives that for free.
type Options struct {
	// MemorySize is the tape length compiled into the program.
	MemorySize int

	PointerMode PointerMode
	EOFMode     EOFMode

	// FixedInput, when non-empty, is baked into the generated program
	// as the input source instead of reading stdin.
	FixedInput string
}

// Generator emits Go source for a resolved program.
type Generator struct {
	opts Options
}

// New creates a generator with the given options. A zero MemorySize
// defaults to 30000 cells.
func New(opts Options) *Generator {
	if opts.MemorySize <= 0 {
		opts.MemorySize = 30000
	}
	return &Generator{opts: opts}
}

// Generate returns the text of the generated main.go. The program
// contract is the same one the execution engine consumes: a flat,
// resolved instruction sequence.
func (g *Generator) Generate(p *program.Program) (string, error) {
	segments := program.Segments(p)
	needsInput := p.NeedsInput()
	hasOutput := false
	for _, ins := range p.Instructions {
		if ins.Op == token.Output {
			hasOutput = true
			break
		}
	}

	var w writer
	w.line("package main")
	w.line("")

	switch {
	case hasOutput && needsInput && g.opts.FixedInput == "":
		w.line("import (")
		w.line("\t\"bufio\"")
		w.line("\t\"io\"")
		w.line("\t\"os\"")
		w.line(")")
	case hasOutput:
		w.line("import (")
		w.line("\t\"bufio\"")
		w.line("\t\"os\"")
		w.line(")")
	case needsInput && g.opts.FixedInput == "":
		w.line("import (")
		w.line("\t\"io\"")
		w.line("\t\"os\"")
		w.line(")")
	}
	w.line("")

	w.line(fmt.Sprintf("const memSize = %d", g.opts.MemorySize))
	w.line("")
	w.line("func main() {")
	w.indent++

	w.line("var (")
	w.line("\tpointer int")
	w.line("\ttape    [memSize]uint8")
	w.line(")")

	if needsInput {
		w.line("")
		if g.opts.FixedInput != "" {
			w.line(fmt.Sprintf("input := []byte(%q)", g.opts.FixedInput))
		} else {
			w.line("input, _ := io.ReadAll(os.Stdin)")
		}
		w.line("inputPos := 0")
	}

	if hasOutput {
		w.line("")
		w.line("out := bufio.NewWriter(os.Stdout)")
		w.line("defer out.Flush()")
	}

	w.line("")
	g.emitSegments(&w, segments)

	w.indent--
	w.line("}")

	return w.String(), nil
}

func (g *Generator) emitSegments(w *writer, segments []program.Segment) {
	for _, seg := range segments {
		if seg.IsLoop() {
			w.line("for tape[pointer] != 0 {")
			w.indent++
			g.emitSegments(w, seg.Body)
			w.indent--
			w.line("}")
			continue
		}
		for _, r := range seg.Run {
			g.emitRepeated(w, r)
		}
	}
}

func (g *Generator) emitRepeated(w *writer, r program.Repeated) {
	switch r.Op {
	case token.PointerRight:
		switch g.opts.PointerMode {
		case PointerClamp:
			w.line(fmt.Sprintf("pointer = min(pointer+%d, memSize-1)", r.Count))
		case PointerWrap:
			w.line(fmt.Sprintf("pointer = (pointer + %d) %% memSize", r.Count))
		case PointerUnchecked:
			w.line(fmt.Sprintf("pointer += %d", r.Count))
		}

	case token.PointerLeft:
		switch g.opts.PointerMode {
		case PointerClamp:
			w.line(fmt.Sprintf("pointer = max(pointer-%d, 0)", r.Count))
		case PointerWrap:
			w.line(fmt.Sprintf("pointer = ((pointer-%d)%%memSize + memSize) %% memSize", r.Count))
		case PointerUnchecked:
			w.line(fmt.Sprintf("pointer -= %d", r.Count))
		}

	case token.Increment:
		w.line(fmt.Sprintf("tape[pointer] += %d", r.Count%256))

	case token.Decrement:
		w.line(fmt.Sprintf("tape[pointer] -= %d", r.Count%256))

	case token.Output:
		if r.Count == 1 {
			w.line("out.WriteByte(tape[pointer])")
		} else {
			w.line(fmt.Sprintf("for i := 0; i < %d; i++ {", r.Count))
			w.line("\tout.WriteByte(tape[pointer])")
			w.line("}")
		}

	case token.Input:
		// Never collapsed: each read consumes a distinct byte.
		w.line("if inputPos < len(input) {")
		w.line("\ttape[pointer] = input[inputPos]")
		w.line("\tinputPos++")
		if g.opts.EOFMode == EOFZero {
			w.line("} else {")
			w.line("\ttape[pointer] = 0")
		}
		w.line("}")
	}
}

// writer accumulates generated lines at the current indent depth.
type writer struct {
	sb     strings.Builder
	indent int
}

func (w *writer) line(s string) {
	if s != "" {
		for i := 0; i < w.indent; i++ {
			w.sb.WriteByte('\t')
		}
		w.sb.WriteString(s)
	}
	w.sb.WriteByte('\n')
}

func (w *writer) String() string {
	return w.sb.String()
}
