package lexer

import "strconv"

// numberResolver reads a run of digits with at most one interior '.'. It
// never consumes a '.' that isn't followed by another digit, so "5.." (a
// range start) and "5." (a trailing dot, rejected downstream by the parser
// grammar rather than the lexer) both leave the dot for the operator
// resolver to see.
type numberResolver struct {
	isFloat bool
}

func (n *numberResolver) Step(s *state, start int) (Result, error) {
	switch {
	case isDigit(s.ch):
		return resOk(), nil
	case s.ch == '.' && !n.isFloat && s.peek() == '.':
		return n.finish(s, start, resChangeChars)
	case s.ch == '.' && !n.isFloat && isDigit(s.peek()):
		n.isFloat = true
		return resOk(), nil
	default:
		return n.finish(s, start, resEnd)
	}
}

func (n *numberResolver) finish(s *state, start int, wrap func(Token, int) Result) (Result, error) {
	text := s.slice(start)
	kind := LiteralInt
	if n.isFloat {
		kind = LiteralFloat
	}
	if kind == LiteralInt {
		if _, err := strconv.ParseInt(text, 10, 64); err != nil {
			return Result{}, &Error{Kind: IntParse, Literal: text, Start: start, End: s.position}
		}
	} else {
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return Result{}, &Error{Kind: FloatParse, Literal: text, Start: start, End: s.position}
		}
	}
	tok := New(kind, text, start, s.position)
	return wrap(tok, s.position), nil
}
