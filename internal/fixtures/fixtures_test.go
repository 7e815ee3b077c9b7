// Package fixtures runs the .lox scripts under testdata against the
// full pipeline and checks their stdout against embedded `// expect:`
// comments, generalizing the teacher go-dws's go-snaps-driven
// TestDWScriptFixtures harness (internal/interp/fixture_test.go) to
// the jlox-style inline-expectation format the test harness contract
// calls for instead of golden files.
package fixtures

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/BaLiKfromUA/pylox/internal/driver"
	"github.com/BaLiKfromUA/pylox/internal/errors"
	"github.com/BaLiKfromUA/pylox/internal/interp"
	"github.com/BaLiKfromUA/pylox/internal/resolver"
)

var expectPattern = regexp.MustCompile(`//\s*expect:\s?(.*)$`)

// expectedLines extracts every `// expect: <text>` payload from src,
// in source order.
func expectedLines(src string) []string {
	var want []string
	for _, line := range strings.Split(src, "\n") {
		if m := expectPattern.FindStringSubmatch(line); m != nil {
			want = append(want, m[1])
		}
	}
	return want
}

func TestLoxFixtures(t *testing.T) {
	paths, err := filepath.Glob("../../testdata/*.lox")
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no .lox fixtures found under testdata")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading %s: %v", path, err)
			}

			var out bytes.Buffer
			in := interp.New(interp.NewGlobals(nil), make(resolver.Locals), &out)
			outcome := driver.Run(string(src), in)

			for _, e := range outcome.StaticErrors {
				t.Errorf("unexpected static error: %s", errors.Line(e))
			}
			if outcome.RuntimeErr != nil {
				t.Errorf("unexpected runtime error: %s", errors.Line(outcome.RuntimeErr))
			}

			want := expectedLines(string(src))
			got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
			if len(want) == 0 {
				got = nil
			}

			if len(got) != len(want) {
				t.Fatalf("output line count mismatch\n got: %q\nwant: %q", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}
