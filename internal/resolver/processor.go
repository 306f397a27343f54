package resolver

import "github.com/funvibe/funbf/internal/pipeline"

// Processor implements the resolver pipeline stage.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if len(ctx.Errors) > 0 {
		return ctx
	}

	prog, err := Resolve(ctx.Tokens)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Program = prog
	return ctx
}
