// Package parser is the body pass: for every pre-parsed module it builds a
// module scope, rewinds each declaration's snapshot, and runs parseStatement
// over the tokens to produce a fully typed Module (spec §4.5/§4.6).
package parser

import (
	"fmt"

	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/types"
)

// ErrorKind is the closed ParserErrorKind sum (spec §4.5).
type ErrorKind int

const (
	UnexpectedError ErrorKind = iota
	Unsupported
	UnexpectedToken
	UnexpectedEndOfFile
	WrongType
	ParametersExpectedComma
	ParametersExpectedParam
	VarNotFound
	InvalidFieldAccess
	FieldDoesntExist
	NotCallable
	NotIndexable
	InvalidArgCount
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedError:
		return "UnexpectedError"
	case Unsupported:
		return "Unsupported"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEndOfFile:
		return "UnexpectedEndOfFile"
	case WrongType:
		return "WrongType"
	case ParametersExpectedComma:
		return "ParametersExpectedComma"
	case ParametersExpectedParam:
		return "ParametersExpectedParam"
	case VarNotFound:
		return "VarNotFound"
	case InvalidFieldAccess:
		return "InvalidFieldAccess"
	case FieldDoesntExist:
		return "FieldDoesntExist"
	case NotCallable:
		return "NotCallable"
	case NotIndexable:
		return "NotIndexable"
	case InvalidArgCount:
		return "InvalidArgCount"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a body-pass failure. Expected/Found are only meaningful for
// WrongType; ExpectedCount only for InvalidArgCount. Detail carries free
// text (a feature name for Unsupported, a field/var name for lookups).
type Error struct {
	Kind          ErrorKind
	Token         lexer.Token
	Expected      types.Type
	Found         types.Type
	ExpectedCount int
	Detail        string
}

func (e *Error) Error() string {
	switch e.Kind {
	case WrongType:
		return fmt.Sprintf("WrongType: expected %s, found %s (at %s)", e.Expected, e.Found, e.Token)
	case InvalidArgCount:
		return fmt.Sprintf("InvalidArgCount: expected %d (at %s)", e.ExpectedCount, e.Token)
	case Unsupported, VarNotFound, FieldDoesntExist, InvalidFieldAccess, NotCallable, NotIndexable:
		if e.Detail != "" {
			return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Detail, e.Token)
		}
		return fmt.Sprintf("%s (at %s)", e.Kind, e.Token)
	default:
		return fmt.Sprintf("%s (at %s)", e.Kind, e.Token)
	}
}

func errUnexpectedToken(tok lexer.Token) error {
	return &Error{Kind: UnexpectedToken, Token: tok}
}

func errUnexpectedEOF() error {
	return &Error{Kind: UnexpectedEndOfFile}
}

func errWrongType(tok lexer.Token, expected, found types.Type) error {
	return &Error{Kind: WrongType, Token: tok, Expected: expected, Found: found}
}

func errVarNotFound(tok lexer.Token, name string) error {
	return &Error{Kind: VarNotFound, Token: tok, Detail: name}
}
