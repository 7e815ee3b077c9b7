// Package interp is pylox's tree-walking evaluator: it executes
// statements and evaluates expressions against a mutable Environment
// chain, implementing calls, control flow, and OO dispatch (spec
// §4.4). It is the generalization of the teacher go-dws's
// internal/interp/evaluator package to a dynamically-typed,
// single-inheritance object model with no static type system.
package interp

import (
	"fmt"
	"io"

	"github.com/BaLiKfromUA/pylox/internal/ast"
	pyloxerrors "github.com/BaLiKfromUA/pylox/internal/errors"
	"github.com/BaLiKfromUA/pylox/internal/resolver"
	"github.com/BaLiKfromUA/pylox/internal/runtime"
)

// Interpreter holds the global environment, the environment currently
// in scope, the resolver's side-table, and the writer `print`
// statements write to.
type Interpreter struct {
	Globals *runtime.Environment
	env     *runtime.Environment
	locals  resolver.Locals
	stdout  io.Writer
}

func New(globals *runtime.Environment, locals resolver.Locals, stdout io.Writer) *Interpreter {
	return &Interpreter{Globals: globals, env: globals, locals: locals, stdout: stdout}
}

// Interpret executes every statement in order, stopping at the first
// runtime error (spec §7: runtime errors abort the current top-level
// unit).
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.Accept(in)
}

func (in *Interpreter) evaluate(expr ast.Expr) (runtime.Value, error) {
	return expr.Accept(in)
}

// ExecuteBlock runs stmts with env activated as the current
// environment, guaranteeing the previous environment is restored on
// every exit path — normal completion, a return/break signal, or a
// runtime error (spec §5).
func (in *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *runtime.Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// MergeLocals folds more into the interpreter's side-table. The REPL
// resolves one line at a time against an ever-growing script, so each
// line's fresh side-table is merged in rather than replacing the
// previous one; NodeIDs are globally unique so this never collides.
func (in *Interpreter) MergeLocals(more resolver.Locals) {
	for id, distance := range more {
		in.locals[id] = distance
	}
}

func (in *Interpreter) lookUpVariable(name string, expr ast.Expr) (runtime.Value, error) {
	if distance, ok := in.locals.Distance(expr); ok {
		return in.env.GetAt(distance, name), nil
	}
	return in.Globals.Get(name)
}

func (in *Interpreter) runtimeErrorf(line int, format string, args ...any) error {
	return &pyloxerrors.RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

var (
	_ ast.ExprVisitor = (*Interpreter)(nil)
	_ ast.StmtVisitor = (*Interpreter)(nil)
)
