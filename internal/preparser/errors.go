// Package preparser discovers a module's top-level declarations without
// descending into any function or variable initializer body: every body is
// recorded as a lexer.Snapshot to rewind to later, during the body pass
// (spec §4.3's "two-phase parse").
package preparser

import (
	"fmt"

	"github.com/rainlang/rainc/internal/lexer"
)

// ErrorKind is the closed set of ways pre-parsing a declaration can fail,
// grounded on `original_source/common/src/errors.rs`'s `ParserErrorKind`
// variants that the pre-parser actually raises.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEndOfFile
	ParametersExpectedComma
	ParametersExpectedParam
	UnsupportedFeature
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEndOfFile:
		return "UnexpectedEndOfFile"
	case ParametersExpectedComma:
		return "ParametersExpectedComma"
	case ParametersExpectedParam:
		return "ParametersExpectedParam"
	case UnsupportedFeature:
		return "UnsupportedFeature"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a pre-parse failure. Token is the offending token (the zero
// Token for UnexpectedEndOfFile); Detail carries free text for
// UnsupportedFeature.
type Error struct {
	Kind   ErrorKind
	Token  lexer.Token
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Detail, e.Token)
	}
	return fmt.Sprintf("%s (at %s)", e.Kind, e.Token)
}

func unexpectedToken(tok lexer.Token) error {
	return &Error{Kind: UnexpectedToken, Token: tok}
}

func unexpectedEOF() error {
	return &Error{Kind: UnexpectedEndOfFile}
}
