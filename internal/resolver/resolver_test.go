package resolver

import (
	"testing"

	"github.com/BaLiKfromUA/pylox/internal/ast"
	pyloxerrors "github.com/BaLiKfromUA/pylox/internal/errors"
	"github.com/BaLiKfromUA/pylox/internal/parser"
	"github.com/BaLiKfromUA/pylox/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSrc(t *testing.T, src string) (Locals, *pyloxerrors.Collector, []ast.Stmt) {
	t.Helper()
	c := &pyloxerrors.Collector{}
	toks := scanner.New(src, c).ScanTokens()
	stmts := parser.New(toks, c).Parse()
	require.False(t, c.HadError(), "fixture must parse cleanly")

	r := New(c)
	locals := r.Resolve(stmts)
	return locals, c, stmts
}

func TestResolve_BlockLocalGetsDistanceZero(t *testing.T) {
	locals, c, stmts := resolveSrc(t, `
		var a = 1;
		{
			var a = 2;
			print a;
		}
	`)
	require.False(t, c.HadError())

	outerBlock := stmts[1].(*ast.Block)
	printStmt := outerBlock.Statements[1].(*ast.PrintStmt)
	variable := printStmt.Expr.(*ast.Variable)

	dist, ok := locals.Distance(variable)
	require.True(t, ok)
	assert.Equal(t, 0, dist)
}

func TestResolve_GlobalReferenceIsUnannotated(t *testing.T) {
	locals, c, stmts := resolveSrc(t, `
		var a = 1;
		print a;
	`)
	require.False(t, c.HadError())

	printStmt := stmts[1].(*ast.PrintStmt)
	variable := printStmt.Expr.(*ast.Variable)

	_, ok := locals.Distance(variable)
	assert.False(t, ok, "a top-level global reference must not get a scope distance")
}

func TestResolve_SelfReferenceInInitializerIsError(t *testing.T) {
	_, c, _ := resolveSrc(t, `
		var a = 1;
		{
			var a = a;
		}
	`)
	assert.True(t, c.HadError())
}

func TestResolve_DuplicateLocalDeclarationIsError(t *testing.T) {
	_, c, _ := resolveSrc(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	assert.True(t, c.HadError())
}

func TestResolve_ReturnOutsideFunctionIsError(t *testing.T) {
	_, c, _ := resolveSrc(t, `return 1;`)
	assert.True(t, c.HadError())
}

func TestResolve_ReturnValueFromInitializerIsError(t *testing.T) {
	_, c, _ := resolveSrc(t, `
		class Thing {
			init() { return 1; }
		}
	`)
	assert.True(t, c.HadError())
}

func TestResolve_BreakOutsideLoopIsError(t *testing.T) {
	_, c, _ := resolveSrc(t, `break;`)
	assert.True(t, c.HadError())
}

func TestResolve_BreakInsideLoopIsFine(t *testing.T) {
	_, c, _ := resolveSrc(t, `while (true) { break; }`)
	assert.False(t, c.HadError())
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	_, c, _ := resolveSrc(t, `print this;`)
	assert.True(t, c.HadError())
}

func TestResolve_SuperWithoutSuperclassIsError(t *testing.T) {
	_, c, _ := resolveSrc(t, `
		class Thing {
			speak() { super.speak(); }
		}
	`)
	assert.True(t, c.HadError())
}

func TestResolve_ClassInheritingFromItselfIsError(t *testing.T) {
	_, c, _ := resolveSrc(t, `class Loop < Loop {}`)
	assert.True(t, c.HadError())
}
