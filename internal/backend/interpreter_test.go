package backend

import (
	"bytes"
	"testing"

	"github.com/funvibe/funbf/internal/diagnostics"
	"github.com/funvibe/funbf/internal/engine"
	"github.com/funvibe/funbf/internal/lexer"
	"github.com/funvibe/funbf/internal/pipeline"
	"github.com/funvibe/funbf/internal/resolver"
)

func frontend(t *testing.T, src string) *pipeline.Context {
	t.Helper()
	ctx := pipeline.NewContext(src)
	ctx = pipeline.New(&lexer.Processor{}, &resolver.Processor{}).Run(ctx)
	if len(ctx.Errors) > 0 {
		t.Fatalf("frontend errors: %v", ctx.Errors)
	}
	return ctx
}

func TestInterpreter_Run(t *testing.T) {
	ctx := frontend(t, "++[>++<-]>.")
	var out bytes.Buffer

	stats, err := NewInterpreter(&out, engine.Options{}).Run(ctx)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := out.Bytes(); len(got) != 1 || got[0] != 4 {
		t.Errorf("output: got %v, want [4]", got)
	}
	if stats.OutputBytes != 1 {
		t.Errorf("output bytes: got %d, want 1", stats.OutputBytes)
	}
	if stats.Steps == 0 {
		t.Error("steps: got 0, want > 0")
	}
}

func TestInterpreter_NoInputReadsZero(t *testing.T) {
	// No input configured: the default exhausted source plus the zero
	// policy make ',' deterministic.
	ctx := frontend(t, "+,.")
	var out bytes.Buffer

	if _, err := NewInterpreter(&out, engine.Options{}).Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := out.Bytes(); len(got) != 1 || got[0] != 0 {
		t.Errorf("output: got %v, want [0]", got)
	}
}

func TestInterpreter_FixedInput(t *testing.T) {
	ctx := frontend(t, ",.,.")
	var out bytes.Buffer

	interp := NewInterpreter(&out, engine.Options{
		Input: bytes.NewReader([]byte("hi")),
	})
	if _, err := interp.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := out.String(); got != "hi" {
		t.Errorf("output: got %q, want %q", got, "hi")
	}
}

func TestExecutionProcessor_RecordsRuntimeError(t *testing.T) {
	ctx := frontend(t, "<")
	var out bytes.Buffer

	exec := NewExecutionProcessor(NewInterpreter(&out, engine.Options{
		PointerPolicy: engine.PointerError,
	}))
	ctx = exec.Process(ctx)

	if len(ctx.Errors) != 1 {
		t.Fatalf("errors: got %d, want 1", len(ctx.Errors))
	}
	if ctx.Errors[0].Code != diagnostics.ErrR002 {
		t.Errorf("code: got %s, want %s", ctx.Errors[0].Code, diagnostics.ErrR002)
	}
}

func TestExecutionProcessor_SkipsErroredContext(t *testing.T) {
	ctx := pipeline.NewContext("]")
	ctx = pipeline.New(&lexer.Processor{}, &resolver.Processor{}).Run(ctx)
	if len(ctx.Errors) != 1 {
		t.Fatalf("frontend errors: got %d, want 1", len(ctx.Errors))
	}

	var out bytes.Buffer
	exec := NewExecutionProcessor(NewInterpreter(&out, engine.Options{}))
	ctx = exec.Process(ctx)

	if len(ctx.Errors) != 1 {
		t.Errorf("errors after skip: got %d, want 1", len(ctx.Errors))
	}
	if out.Len() != 0 {
		t.Errorf("output from skipped run: got %d bytes, want 0", out.Len())
	}
}
