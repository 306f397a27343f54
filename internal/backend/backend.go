// Package backend provides an interface for program consumers that run
// a resolved instruction sequence: the interpreting engine and, through
// the build command, the code generator share its input contract.
package backend

import "github.com/funvibe/funbf/internal/pipeline"

// Stats summarizes a completed run.
type Stats struct {
	Steps       uint64
	OutputBytes int
}

// Backend is the interface for execution backends.
type Backend interface {
	// Run executes the resolved program from the pipeline context.
	Run(ctx *pipeline.Context) (Stats, error)

	// Name returns the backend name for display.
	Name() string
}
