package lexer

// operatorResolver handles every single- and double-character operator.
// Since the two-character forms (.. == != >= <=) are always disambiguated
// by one character of lookahead, the whole token is decided in a single
// Step call.
type operatorResolver struct{}

func (o *operatorResolver) Step(s *state, start int) (Result, error) {
	two := func(kind Kind) (Result, error) {
		return resEnd(New(kind, "", start, start+2), start+2), nil
	}
	one := func(kind Kind) (Result, error) {
		return resEnd(New(kind, "", start, start+1), start+1), nil
	}
	switch s.ch {
	case '=':
		if s.peek() == '=' {
			return two(Eq)
		}
		return one(Assign)
	case '!':
		if s.peek() == '=' {
			return two(NotEq)
		}
		return Result{}, &Error{Kind: InvalidOperatorToken, Literal: "!", Start: start, End: start + 1}
	case '>':
		if s.peek() == '=' {
			return two(GreaterEq)
		}
		return one(Greater)
	case '<':
		if s.peek() == '=' {
			return two(LessEq)
		}
		return one(Less)
	case '.':
		if s.peek() == '.' {
			return two(Range)
		}
		return one(Dot)
	case '+':
		return one(Plus)
	case '-':
		return one(Minus)
	case '*':
		return one(Star)
	case '/':
		return one(Slash)
	case '%':
		return one(Percent)
	case '^':
		return one(Caret)
	case ':':
		return one(Colon)
	case ',':
		return one(Comma)
	default:
		return Result{}, &Error{Kind: InvalidOperatorToken, Literal: string(s.ch), Start: start, End: start + 1}
	}
}
