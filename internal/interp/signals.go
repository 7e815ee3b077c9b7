package interp

import "github.com/BaLiKfromUA/pylox/internal/runtime"

// returnSignal and breakSignal are pylox's rendering of spec §9's
// explicit non-local-exit signals ("an enum {Normal, Returned(value),
// Broke}"): rather than a hand-rolled result enum threaded through
// every statement-execution call, they ride Go's existing error-return
// channel as distinguished sentinel types. While (for breakSignal) and
// the user-function call boundary (for returnSignal) are the only
// sites that look for them; everywhere else, Block included (it only
// restores the previous environment), they propagate exactly like any
// other returned error until one of those boundaries unwraps them, so
// they never reach the user as a runtime error.
type returnSignal struct {
	Value runtime.Value
}

func (returnSignal) Error() string { return "return" }

type breakSignal struct{}

func (breakSignal) Error() string { return "break" }
