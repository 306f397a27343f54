package lexer

import "github.com/funvibe/funbf/internal/pipeline"

// Processor implements the lexer pipeline stage.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	ctx.Tokens = Tokenize(ctx.Source)
	return ctx
}
