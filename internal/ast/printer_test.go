package ast_test

import (
	"testing"

	"github.com/BaLiKfromUA/pylox/internal/ast"
	pyloxerrors "github.com/BaLiKfromUA/pylox/internal/errors"
	"github.com/BaLiKfromUA/pylox/internal/parser"
	"github.com/BaLiKfromUA/pylox/internal/scanner"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parseOneExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	c := &pyloxerrors.Collector{}
	toks := scanner.New(src, c).ScanTokens()
	stmts := parser.New(toks, c).Parse()
	require.False(t, c.HadError())
	require.Len(t, stmts, 1)
	return stmts[0].(*ast.ExpressionStmt).Expr
}

// TestPrinter_StructurallyEquivalentParsesPrintIdentically checks spec
// §8's round-trip invariant from the printer's side: the printer is a
// pure function of tree shape, so parsing the same source twice (the
// only way to get two structurally-equivalent-but-distinct ASTs,
// since NodeIDs are assigned fresh each parse) must print identically
// both times. The S-expression form itself is a debug rendering, not
// valid Lox — round-tripping it back through this parser isn't
// meaningful, so this checks the printer/parser agreement the
// invariant actually cares about: same shape in, same text out.
func TestPrinter_StructurallyEquivalentParsesPrintIdentically(t *testing.T) {
	sources := []string{
		`1 + 2 * 3;`,
		`-a.b.c();`,
		`(1 + 2) == (3 - 4);`,
		`a = b = 1;`,
		`this.x;`,
	}

	printer := &ast.Printer{}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			first := parseOneExpr(t, src)
			second := parseOneExpr(t, src)

			if diff := cmp.Diff(printer.Print(first), printer.Print(second)); diff != "" {
				t.Errorf("two parses of the same source printed differently (-first +second):\n%s", diff)
			}
		})
	}
}

func TestPrinter_DistinctShapesPrintDistinctly(t *testing.T) {
	printer := &ast.Printer{}
	a := printer.Print(parseOneExpr(t, `1 + 2 * 3;`))
	b := printer.Print(parseOneExpr(t, `(1 + 2) * 3;`))
	if a == b {
		t.Errorf("differently-grouped expressions must not print identically, both rendered %q", a)
	}
}

func TestPrinter_Snapshot(t *testing.T) {
	printer := &ast.Printer{}
	exprs := map[string]string{
		"arithmetic": "1 + 2 * (3 - 4);",
		"call_chain": "a.b().c;",
		"logical":    "a and b or not_a_keyword;",
	}
	for name, src := range exprs {
		e := parseOneExpr(t, src)
		snaps.MatchSnapshot(t, name, printer.Print(e))
	}
}
