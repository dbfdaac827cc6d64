package lexer

// Tokenize turns source text into a Cursor over its token stream. Source is
// normalized (BOM strip + NFC) before scanning, and a synthetic trailing
// newline is fed after the real input so that the final token (whatever
// resolver was mid-run when EOF hit) always gets a terminating character to
// end on, per spec §4.1.
func Tokenize(source string) (*Cursor, error) {
	normalized := string(Normalize([]byte(source)))
	s := newState(normalized + "\n")

	var tokens []Token
	emit := func(t Token) {
		tokens = append(tokens, t)
		if t.Kind != NewLine && t.Kind != Indent && t.Kind != Dedent {
			s.atLineStart = false
		}
	}

	var resolver Resolver
	start := s.position
	for s.ch != 0 {
		if resolver == nil {
			resolver = dispatch(s.ch)
			start = s.position
		}
		res, err := resolver.Step(s, start)
		if err != nil {
			return nil, err
		}
		switch res.Action {
		case actOk:
			s.advance()
		case actOkToken:
			emit(res.Token)
			s.advance()
		case actEnd, actChange, actChangeChars:
			emit(res.Token)
			s.syncTo(res.EndPos)
			resolver = nil
		case actChangeWithoutToken:
			s.syncTo(res.EndPos)
			resolver = nil
		case actChangeIndentation:
			kind := Indent
			n := res.IndentDelta
			if n < 0 {
				kind = Dedent
				n = -n
			}
			for i := 0; i < n; i++ {
				emit(New(kind, "", s.position, s.position))
			}
			s.syncTo(res.EndPos)
			resolver = nil
		}
	}

	// A string literal still open when the input runs out never reached
	// its closing quote.
	if _, open := resolver.(*stringResolver); open {
		return nil, &Error{Kind: InvalidStringLiteral, Start: start, End: s.position}
	}

	for len(s.indentStack) > 1 {
		s.indentStack = s.indentStack[:len(s.indentStack)-1]
		emit(New(Dedent, "", s.position, s.position))
	}
	emit(New(EOF, "", s.position, s.position))

	return NewCursor(tokens), nil
}
