package scanner

import (
	"strconv"
	"unicode"

	"github.com/BaLiKfromUA/pylox/internal/token"
)

// number scans a numeric literal. Digits optionally followed by '.'
// and at least one further digit form a float; a leading '.' is never
// part of a number, and a trailing '.' with no following digit (e.g.
// "123.") is left for the next scan to tokenize as DOT.
func (s *Scanner) number() {
	for unicode.IsDigit(s.peek()) {
		s.advance()
	}

	isFloat := false
	if s.peek() == '.' && unicode.IsDigit(s.peekNext()) {
		isFloat = true
		s.advance() // consume '.'
		for unicode.IsDigit(s.peek()) {
			s.advance()
		}
	}

	lexeme := string(s.src[s.start:s.current])
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.errorf(s.line, "Invalid number literal: %s", lexeme)
		return
	}
	_ = isFloat // scanner treats both integer and float literals as float64 (spec §9)
	s.addToken(token.NUMBER, value)
}
