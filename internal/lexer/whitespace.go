package lexer

// whitespaceResolver consumes runs of spaces, tabs, carriage returns and
// newlines. A '\n' always ends the current logical line and starts a new
// one; the width of leading whitespace on the following line (counted only
// while s.atLineStart) is compared against the indent stack to decide
// whether to emit Indent, Dedent, or nothing. Mid-line runs of spaces (not
// at the start of a logical line) are swallowed with no token at all.
type whitespaceResolver struct {
	width int
}

func (w *whitespaceResolver) Step(s *state, start int) (Result, error) {
	switch s.ch {
	case '\n':
		tok := New(NewLine, "", s.position, s.position+1)
		s.atLineStart = true
		w.width = 0
		return resOkToken(tok), nil
	case '\r':
		return resOk(), nil
	case ' ', '\t':
		if s.atLineStart {
			w.width++
		}
		return resOk(), nil
	default:
		if !s.atLineStart {
			return resChangeWithoutToken(s.position), nil
		}
		s.atLineStart = false
		top := s.indentStack[len(s.indentStack)-1]
		switch {
		case w.width == top:
			return resChangeWithoutToken(s.position), nil
		case w.width > top:
			s.indentStack = append(s.indentStack, w.width)
			return resChangeIndentation(1, s.position), nil
		default:
			n := 0
			for len(s.indentStack) > 1 && s.indentStack[len(s.indentStack)-1] > w.width {
				s.indentStack = s.indentStack[:len(s.indentStack)-1]
				n++
			}
			if s.indentStack[len(s.indentStack)-1] != w.width {
				return Result{}, &Error{Kind: InvalidIndent, Start: start, End: s.position}
			}
			return resChangeIndentation(-n, s.position), nil
		}
	}
}
