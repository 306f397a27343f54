package backend

import (
	"bytes"
	"fmt"
	"io"

	"github.com/funvibe/funbf/internal/engine"
	"github.com/funvibe/funbf/internal/pipeline"
)

// Interpreter drives the tape machine to completion, writing every
// produced byte to Output. It is the headless counterpart of the
// interactive debugger: both advance the same engine one step at a
// time, the interpreter just never pauses.
type Interpreter struct {
	output io.Writer
	opts   engine.Options
}

// NewInterpreter creates an interpreter backend writing produced bytes
// to output.
func NewInterpreter(output io.Writer, opts engine.Options) *Interpreter {
	if opts.Input == nil {
		// A headless run must complete deterministically even with no
		// input configured: treat it as an already exhausted source.
		opts.Input = bytes.NewReader(nil)
	}
	return &Interpreter{output: output, opts: opts}
}

func (b *Interpreter) Name() string { return "interpreter" }

// Run executes the program until the engine halts.
func (b *Interpreter) Run(ctx *pipeline.Context) (Stats, error) {
	if ctx.Program == nil {
		return Stats{}, fmt.Errorf("no program to execute")
	}

	m := engine.New(ctx.Program, b.opts)

	var stats Stats
	for {
		outcome, err := m.Step()
		if err != nil {
			stats.Steps = m.Steps()
			return stats, err
		}

		switch outcome.Kind {
		case engine.ProducedOutput:
			if _, werr := b.output.Write([]byte{outcome.Value}); werr != nil {
				stats.Steps = m.Steps()
				return stats, fmt.Errorf("writing output: %w", werr)
			}
			stats.OutputBytes++
		case engine.Halted:
			stats.Steps = m.Steps()
			return stats, nil
		}
	}
}
