package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypes_FormatLineAndMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"syntax", &SyntaxError{Line: 3, Message: "Unterminated string."}, "line 3: Unterminated string."},
		{"parse", &ParseError{Line: 7, Where: "x", Message: "Expect expression."}, "line 7: Expect expression."},
		{"runtime", &RuntimeError{Line: 12, Message: "Undefined variable 'x'."}, "line 12: Undefined variable 'x'."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.Equal(t, tt.want, Line(tt.err))
		})
	}
}

func TestCollector_AccumulatesAndReportsHadError(t *testing.T) {
	c := &Collector{}
	assert.False(t, c.HadError())

	c.Report(&SyntaxError{Line: 1, Message: "bad token"})
	c.Report(&ParseError{Line: 2, Message: "bad grammar"})

	assert.True(t, c.HadError())
	assert.Len(t, c.Errors, 2)
}
