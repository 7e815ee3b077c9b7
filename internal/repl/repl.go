// Package repl implements pylox's interactive prompt: read a line,
// run it against a persistent global environment, print nothing but
// what the program itself prints, reset the error flag for the next
// line. It generalizes the teacher go-dws's bufio.Scanner-driven REPL
// loop (spec §6).
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/BaLiKfromUA/pylox/internal/config"
	"github.com/BaLiKfromUA/pylox/internal/driver"
	"github.com/BaLiKfromUA/pylox/internal/errors"
	"github.com/BaLiKfromUA/pylox/internal/interp"
	"github.com/BaLiKfromUA/pylox/internal/resolver"
	"github.com/mattn/go-isatty"
)

// exitLiteral is the REPL's own termination command; it is not part
// of the language grammar.
const exitLiteral = "exit"

// REPL owns the input/output streams and the interpreter the whole
// session shares, so a function or variable defined on one line is
// visible on the next.
type REPL struct {
	in      *bufio.Scanner
	stdin   *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	cfg     config.Config
	isTTY   bool
	verbose bool
}

// New builds a REPL. verbose mirrors the CLI's --verbose flag: when
// set, each line additionally prints a one-line execution trace per
// pipeline stage to stderr (driver.RunTraced).
func New(stdin io.Reader, stdout, stderr io.Writer, cfg config.Config, verbose bool) *REPL {
	reader := bufio.NewReader(stdin)
	tty := false
	if f, ok := stdin.(interface{ Fd() uintptr }); ok {
		tty = isatty.IsTerminal(f.Fd())
	}
	return &REPL{
		in:      bufio.NewScanner(reader),
		stdin:   reader,
		out:     stdout,
		errOut:  stderr,
		cfg:     cfg,
		isTTY:   tty,
		verbose: verbose,
	}
}

// Run reads and executes one line at a time until EOF or the user
// types "exit". It never returns a non-nil error for a bad program —
// only for an I/O failure reading the prompt.
func (r *REPL) Run() error {
	interpreter := interp.New(interp.NewGlobals(r.stdin), make(resolver.Locals), r.out)

	for {
		if r.isTTY {
			fmt.Fprint(r.out, r.cfg.PromptPrefix)
		}
		if !r.in.Scan() {
			return r.in.Err()
		}
		line := r.in.Text()
		if line == exitLiteral {
			return nil
		}
		if line == "" {
			continue
		}

		var outcome driver.Outcome
		if r.verbose {
			outcome = driver.RunTraced(line, interpreter, r.errOut)
		} else {
			outcome = driver.Run(line, interpreter)
		}
		for _, err := range outcome.StaticErrors {
			fmt.Fprintln(r.errOut, errors.Line(err))
		}
		if outcome.RuntimeErr != nil {
			fmt.Fprintln(r.errOut, errors.Line(outcome.RuntimeErr))
		}
		// A bad line never poisons the session: the error flag is
		// local to this iteration, unlike a file run's process exit
		// code (spec §6).
	}
}
