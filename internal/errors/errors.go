// Package errors defines the three error kinds of the pylox pipeline
// (syntax, parse/resolve, runtime), each carrying a 1-based source line,
// generalized from the teacher go-dws's internal/errors CompilerError.
package errors

import "fmt"

// SyntaxError is raised by the scanner: an illegal character, an
// unterminated string, or an unterminated block comment.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParseError is raised by the parser or the resolver: a grammar
// violation or a static semantic violation (self-inheriting class,
// `this` outside a class, a return with a value in an initializer...).
type ParseError struct {
	Line    int
	Where   string // lexeme or "end" at the point of failure, for diagnostics
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// RuntimeError is raised by the evaluator: type mismatches, arity
// mismatches, division by zero, undefined names, and similar.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Reporter is the error sink the scanner, parser and resolver report
// into. The CLI driver supplies a Reporter that records whether any
// error was seen, which determines the process exit code (spec §6).
type Reporter interface {
	Report(err error)
}

// Collector is a Reporter that accumulates every reported error and
// tracks whether a parse/resolve-stage error has been seen, so the
// pipeline can skip execution once one has (spec §7 propagation
// policy).
type Collector struct {
	Errors []error
}

func (c *Collector) Report(err error) {
	c.Errors = append(c.Errors, err)
}

func (c *Collector) HadError() bool {
	return len(c.Errors) > 0
}

// Line formats err as the spec §6 user-visible form "line <N>: <message>".
// Non-pylox errors fall back to their default Error() text.
func Line(err error) string {
	return err.Error()
}
