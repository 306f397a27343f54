// Package diagnostics provides positional errors with stable codes,
// shared by the front-end and the execution engine.
package diagnostics

import "fmt"

// Code is a stable identifier for an error class.
type Code string

const (
	// ErrE001 - a loop was opened but never closed.
	ErrE001 Code = "E001"
	// ErrE002 - a loop was closed without a matching open.
	ErrE002 Code = "E002"
	// ErrR001 - generic runtime failure.
	ErrR001 Code = "R001"
	// ErrR002 - the data pointer would move left of cell zero.
	ErrR002 Code = "R002"
)

var messages = map[Code]string{
	ErrE001: "unmatched loop open",
	ErrE002: "unmatched loop close",
	ErrR001: "runtime error",
	ErrR002: "pointer underflow",
}

// Error is a diagnostic with a source position. Line and Column are
// 1-based; zero values mean the position is unknown.
type Error struct {
	Code    Code
	Line    int
	Column  int
	Message string
}

// NewError creates a diagnostic for the given code and position.
// detail may be empty; it is appended to the code's base message.
func NewError(code Code, line, column int, detail string) *Error {
	msg := messages[code]
	if detail != "" {
		msg = msg + ": " + detail
	}
	return &Error{Code: code, Line: line, Column: column, Message: msg}
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] %d:%d: %s", e.Code, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
