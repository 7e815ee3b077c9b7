package interp

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/BaLiKfromUA/pylox/internal/runtime"
)

// NewGlobals builds the global environment pre-populated with the
// native functions spec §6 names (clock/input/len), modelled as an
// explicit registry the way the original pylox's builtin_function.py
// FUNCTIONS_MAPPING is, rather than ad hoc Define calls scattered
// through main.
func NewGlobals(stdin *bufio.Reader) *runtime.Environment {
	env := runtime.NewEnvironment()
	for _, fn := range nativeFunctions(stdin) {
		env.Define(fn.Name, fn)
	}
	return env
}

func nativeFunctions(stdin *bufio.Reader) []*runtime.NativeFunction {
	return []*runtime.NativeFunction{
		{
			Name:   "clock",
			ArityN: 0,
			Fn: func(args []runtime.Value) (runtime.Value, error) {
				return float64(time.Now().UnixNano()) / float64(time.Second), nil
			},
		},
		{
			Name:   "input",
			ArityN: 0,
			Fn: func(args []runtime.Value) (runtime.Value, error) {
				line, err := stdin.ReadString('\n')
				if err != nil && err != io.EOF {
					return nil, fmt.Errorf("input: %w", err)
				}
				return trimNewline(line), nil
			},
		},
		{
			Name:   "len",
			ArityN: 1,
			Fn: func(args []runtime.Value) (runtime.Value, error) {
				s, ok := args[0].(string)
				if !ok {
					return nil, fmt.Errorf("len() argument must be a string.")
				}
				return float64(len([]rune(s))), nil
			},
		},
	}
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
