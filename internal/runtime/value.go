// Package runtime holds the Lox runtime value model: the environment
// chain, callables (native functions, user functions, classes), and
// instances (spec §3). It is the generalization of the teacher
// go-dws's internal/interp/runtime package down to Lox's much smaller,
// dynamically-typed value set.
package runtime

import (
	"fmt"
	"strconv"
)

// Value is any Lox runtime value: nil, bool, float64, string, or a
// Callable/*Instance. There is no dedicated wrapper type — Go's own
// nil/bool/float64/string already model Lox's nil/boolean/number/string,
// matching the teacher's approach of using Go's native types directly
// wherever the guest language's primitive maps cleanly onto one.
type Value any

// Callable is implemented by every value that can appear in call
// position: *NativeFunction, *UserFunction, and *Class. Actually
// invoking one is the evaluator's job (only it knows how to execute
// statement bodies and thread control-flow signals), so Callable only
// exposes the metadata the evaluator needs to validate and describe a
// call; see interp.Interpreter.call for the dispatch.
type Callable interface {
	Value
	Arity() int
	String() string
}

// IsTruthy implements spec §4.4 truthiness: nil and false are falsey;
// everything else, including 0 and "", is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements spec §4.4 equality: nil equals only nil; values
// of different Go dynamic types (i.e. different Lox runtime types)
// are never equal.
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify implements spec §4.4's canonical human-readable rendering.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
