package backend

import (
	"github.com/funvibe/funbf/internal/diagnostics"
	"github.com/funvibe/funbf/internal/pipeline"
)

// ExecutionProcessor implements the pipeline stage that runs a Backend.
type ExecutionProcessor struct {
	Backend Backend

	// Stats of the last completed run, for callers that record history.
	Stats Stats
}

// NewExecutionProcessor creates a new pipeline stage for the given
// backend.
func NewExecutionProcessor(b Backend) *ExecutionProcessor {
	return &ExecutionProcessor{Backend: b}
}

func (p *ExecutionProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	// If previous stages failed, don't run execution.
	if ctx.Program == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	stats, err := p.Backend.Run(ctx)
	p.Stats = stats

	if err != nil {
		if derr, ok := err.(*diagnostics.Error); ok {
			ctx.Errors = append(ctx.Errors, derr)
		} else {
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(
				diagnostics.ErrR001, 0, 0, err.Error()))
		}
	}

	return ctx
}
