// Package pipeline chains the front-end stages that turn source text
// into an executable program.
package pipeline

import (
	"github.com/funvibe/funbf/internal/diagnostics"
	"github.com/funvibe/funbf/internal/program"
	"github.com/funvibe/funbf/internal/token"
)

// Context carries the intermediate results between stages.
type Context struct {
	Source   string
	FilePath string

	// Tokens is set by the lexer stage.
	Tokens []token.Token

	// Program is set by the resolver stage; nil when resolution failed.
	Program *program.Program

	Errors []*diagnostics.Error
}

// NewContext creates a context for the given source text.
func NewContext(source string) *Context {
	return &Context{Source: source}
}

// Processor is a single front-end stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Stages that cannot proceed on an errored
// context leave it untouched, so all collected errors survive to the
// caller.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
