// Package driver wires pylox's pipeline stages — scanner, parser,
// resolver, evaluator — together behind the single entry point both
// the file runner and the REPL call, generalizing the teacher go-dws's
// cmd/dwscript/cmd/run.go pipeline wiring (spec §7's propagation
// policy: a syntax/parse/resolve error aborts before execution, a
// runtime error aborts during it).
package driver

import (
	"fmt"
	"io"

	pyloxerrors "github.com/BaLiKfromUA/pylox/internal/errors"
	"github.com/BaLiKfromUA/pylox/internal/interp"
	"github.com/BaLiKfromUA/pylox/internal/parser"
	"github.com/BaLiKfromUA/pylox/internal/resolver"
	"github.com/BaLiKfromUA/pylox/internal/scanner"
)

// Outcome reports which stage, if any, failed — the CLI driver maps
// this to the spec §6 exit codes (0/65/70).
type Outcome struct {
	StaticErrors []error
	RuntimeErr   error
}

func (o Outcome) HadStaticError() bool { return len(o.StaticErrors) > 0 }

// Run scans, parses, resolves and — if no static error was seen —
// executes source against in, merging the new side-table entries into
// in's running side-table so a later call (as the REPL makes, one per
// line) can still resolve names declared in an earlier one.
func Run(source string, in *interp.Interpreter) Outcome {
	return run(source, in, nil)
}

// RunTraced behaves exactly like Run but additionally writes a
// one-line trace per pipeline stage (tokens scanned, statements
// parsed, bindings resolved) to trace — the CLI's --verbose rendering
// of the teacher's own --trace/--verbose stderr lines in
// cmd/dwscript/cmd/run.go. A nil trace is equivalent to Run.
func RunTraced(source string, in *interp.Interpreter, trace io.Writer) Outcome {
	return run(source, in, trace)
}

func run(source string, in *interp.Interpreter, trace io.Writer) Outcome {
	collector := &pyloxerrors.Collector{}

	toks := scanner.New(source, collector).ScanTokens()
	if trace != nil {
		fmt.Fprintf(trace, "[trace] scanner: %d tokens\n", len(toks))
	}
	if collector.HadError() {
		return Outcome{StaticErrors: collector.Errors}
	}

	p := parser.New(toks, collector)
	stmts := p.Parse()
	if trace != nil {
		fmt.Fprintf(trace, "[trace] parser: %d statements\n", len(stmts))
	}
	if collector.HadError() {
		return Outcome{StaticErrors: collector.Errors}
	}

	res := resolver.New(collector)
	locals := res.Resolve(stmts)
	if trace != nil {
		fmt.Fprintf(trace, "[trace] resolver: %d bindings resolved\n", len(locals))
	}
	if collector.HadError() {
		return Outcome{StaticErrors: collector.Errors}
	}
	in.MergeLocals(locals)

	if trace != nil {
		fmt.Fprintf(trace, "[trace] evaluator: executing %d top-level statements\n", len(stmts))
	}
	if err := in.Interpret(stmts); err != nil {
		return Outcome{RuntimeErr: err}
	}
	return Outcome{}
}
