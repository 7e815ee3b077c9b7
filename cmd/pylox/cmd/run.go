package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/BaLiKfromUA/pylox/internal/config"
	"github.com/BaLiKfromUA/pylox/internal/driver"
	"github.com/BaLiKfromUA/pylox/internal/errors"
	"github.com/BaLiKfromUA/pylox/internal/interp"
	"github.com/BaLiKfromUA/pylox/internal/repl"
	"github.com/BaLiKfromUA/pylox/internal/resolver"
	"github.com/spf13/cobra"
)

const (
	exitOK        = 0
	exitDataError = 65 // a syntax, parse, or resolve error
	exitRuntime   = 70 // an uncaught runtime error
)

func runRoot(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := repl.New(os.Stdin, os.Stdout, os.Stderr, cfg, verbose).Run(); err != nil {
			return fmt.Errorf("repl: %w", err)
		}
		return nil
	}
	return runFile(args[0])
}

func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	interpreter := interp.New(interp.NewGlobals(bufio.NewReader(os.Stdin)), make(resolver.Locals), os.Stdout)

	var outcome driver.Outcome
	if verbose {
		outcome = driver.RunTraced(string(src), interpreter, os.Stderr)
	} else {
		outcome = driver.Run(string(src), interpreter)
	}

	for _, e := range outcome.StaticErrors {
		fmt.Fprintln(os.Stderr, errors.Line(e))
	}
	if outcome.HadStaticError() {
		return exitCode(exitDataError)
	}
	if outcome.RuntimeErr != nil {
		fmt.Fprintln(os.Stderr, errors.Line(outcome.RuntimeErr))
		return exitCode(exitRuntime)
	}
	return nil
}
