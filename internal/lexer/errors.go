package lexer

import "fmt"

// ErrorKind is the closed set of ways tokenizing can fail (spec §4.1).
type ErrorKind int

const (
	FloatParse ErrorKind = iota
	IntParse
	InvalidOperatorToken
	InvalidStringLiteral
	InvalidIndent
)

func (k ErrorKind) String() string {
	switch k {
	case FloatParse:
		return "FloatParse"
	case IntParse:
		return "IntParse"
	case InvalidOperatorToken:
		return "InvalidOperatorToken"
	case InvalidStringLiteral:
		return "InvalidStringLiteral"
	case InvalidIndent:
		return "InvalidIndent"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a tokenizer failure. It always carries the byte span at which it
// occurred so that a caller can format it against the original source
// without the lexer needing to know about line/column at all.
type Error struct {
	Kind    ErrorKind
	Literal string
	Start   int
	End     int
}

func (e *Error) Error() string {
	if e.Literal != "" {
		return fmt.Sprintf("%s: %q", e.Kind, e.Literal)
	}
	return e.Kind.String()
}

// Span returns the [start,end) byte range of the failure.
func (e *Error) Span() (int, int) {
	return e.Start, e.End
}
