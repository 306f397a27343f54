package engine

import (
	"errors"
	"io"

	"github.com/funvibe/funbf/internal/diagnostics"
	"github.com/funvibe/funbf/internal/program"
	"github.com/funvibe/funbf/internal/token"
)

// OutcomeKind classifies the result of a single step.
type OutcomeKind int

const (
	// Continued - one instruction executed, nothing to report.
	Continued OutcomeKind = iota
	// ProducedOutput - an Output instruction executed; Outcome.Value
	// carries the byte. The engine performs no I/O itself: writing the
	// byte is the caller's job.
	ProducedOutput
	// NeedsInput - the current instruction is Input and no input
	// source is attached. The program counter did not advance; the
	// caller supplies a byte via SupplyInput and steps again.
	NeedsInput
	// Halted - the program counter is past the end of the program.
	// Stepping a halted machine is a no-op returning Halted.
	Halted
)

func (k OutcomeKind) String() string {
	switch k {
	case Continued:
		return "continued"
	case ProducedOutput:
		return "output"
	case NeedsInput:
		return "needs-input"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Outcome is the result of one engine step.
type Outcome struct {
	Kind  OutcomeKind
	Value byte
}

// Options configure a machine.
type Options struct {
	// TapeSize is the initial tape length; values below MinTapeSize
	// are raised to it.
	TapeSize int

	// Input is the byte source consumed by Input instructions. May be
	// nil, in which case Step reports NeedsInput and the caller feeds
	// bytes through SupplyInput. The sequence is lazy, finite and not
	// restartable.
	Input io.ByteReader

	PointerPolicy PointerPolicy
	EOFPolicy     EOFPolicy
}

// Machine owns the execution state: tape, data pointer, program counter
// and the halted flag. No two steps ever execute concurrently; callers
// drive it from a single control thread.
type Machine struct {
	prog *program.Program
	tape *Tape

	ptr    int
	pc     int
	halted bool

	input         io.ByteReader
	inputConsumed int

	pointerPolicy PointerPolicy
	eofPolicy     EOFPolicy

	steps uint64
}

// New creates a machine for the resolved program.
func New(prog *program.Program, opts Options) *Machine {
	return &Machine{
		prog:          prog,
		tape:          NewTape(opts.TapeSize),
		input:         opts.Input,
		pointerPolicy: opts.PointerPolicy,
		eofPolicy:     opts.EOFPolicy,
	}
}

// Step executes exactly one instruction at the current program counter.
// A fatal error (pointer underflow under the error policy) halts the
// machine; every other condition is reported through the outcome.
func (m *Machine) Step() (Outcome, *diagnostics.Error) {
	if m.halted || m.pc >= m.prog.Len() {
		m.halted = true
		return Outcome{Kind: Halted}, nil
	}

	ins := m.prog.At(m.pc)

	switch ins.Op {
	case token.PointerRight:
		m.ptr++
		m.tape.Extend(m.ptr)
		m.pc++

	case token.PointerLeft:
		if m.ptr == 0 {
			switch m.pointerPolicy {
			case PointerClamp:
				// Stay at cell zero.
			case PointerWrap:
				m.ptr = m.tape.Len() - 1
			case PointerError:
				m.halted = true
				return Outcome{Kind: Halted}, diagnostics.NewError(
					diagnostics.ErrR002, ins.Line, ins.Column, "'<' at cell zero")
			}
		} else {
			m.ptr--
		}
		m.pc++

	case token.Increment:
		m.tape.Add(m.ptr, 1)
		m.pc++

	case token.Decrement:
		m.tape.Add(m.ptr, 255)
		m.pc++

	case token.Output:
		v := m.tape.Get(m.ptr)
		m.pc++
		m.finishStep()
		return Outcome{Kind: ProducedOutput, Value: v}, nil

	case token.Input:
		if m.input == nil {
			return Outcome{Kind: NeedsInput}, nil
		}
		b, err := m.input.ReadByte()
		switch {
		case err == nil:
			m.tape.Set(m.ptr, b)
			m.inputConsumed++
		case errors.Is(err, io.EOF):
			// Exhausted. Not a crash: apply the configured policy.
			if m.eofPolicy == EOFZero {
				m.tape.Set(m.ptr, 0)
			}
		default:
			// A failing source is a real error, not exhaustion.
			m.halted = true
			return Outcome{Kind: Halted}, diagnostics.NewError(
				diagnostics.ErrR001, ins.Line, ins.Column, "reading input: "+err.Error())
		}
		m.pc++

	case token.LoopOpen:
		if m.tape.Get(m.ptr) == 0 {
			m.pc = ins.Partner + 1
		} else {
			m.pc++
		}

	case token.LoopClose:
		if m.tape.Get(m.ptr) != 0 {
			m.pc = ins.Partner + 1
		} else {
			m.pc++
		}
	}

	m.finishStep()
	return Outcome{Kind: Continued}, nil
}

func (m *Machine) finishStep() {
	m.steps++
	if m.pc >= m.prog.Len() {
		m.halted = true
	}
}

// SupplyInput completes a NeedsInput step by storing b into the current
// cell and advancing past the Input instruction. Calling it in any
// other situation is a no-op.
func (m *Machine) SupplyInput(b byte) {
	if m.halted || m.pc >= m.prog.Len() {
		return
	}
	if m.prog.At(m.pc).Op != token.Input {
		return
	}
	m.tape.Set(m.ptr, b)
	m.inputConsumed++
	m.pc++
	m.finishStep()
}

// PC returns the program counter.
func (m *Machine) PC() int { return m.pc }

// Pointer returns the data pointer.
func (m *Machine) Pointer() int { return m.ptr }

// Halted reports whether the program counter has passed the end of the
// program or a fatal error occurred.
func (m *Machine) Halted() bool { return m.halted }

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() uint64 { return m.steps }

// Tape returns the machine's tape.
func (m *Machine) Tape() *Tape { return m.tape }

// Program returns the program being executed.
func (m *Machine) Program() *program.Program { return m.prog }

// InputConsumed returns the number of input bytes consumed so far.
func (m *Machine) InputConsumed() int { return m.inputConsumed }
