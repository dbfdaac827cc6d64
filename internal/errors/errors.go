// Package errors is the boundary error type every compilation entry point
// returns: a single closed LangError sum (spec §7) wrapping whichever
// phase-local error a pipeline stage actually raised, tagged with a stable
// code and a byte span so the report formatter never needs to know which
// phase produced it.
package errors

import (
	"fmt"

	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/module"
	"github.com/rainlang/rainc/internal/preparser"

	parsepkg "github.com/rainlang/rainc/internal/parser"
)

// Phase tags which pipeline stage produced a LangError (spec §7's
// Tokenizer/Parser/Build/Load/Runtime variants).
type Phase int

const (
	Tokenizer Phase = iota
	Parser
	Build
	Load
	Runtime
)

func (p Phase) String() string {
	switch p {
	case Tokenizer:
		return "Tokenizer"
	case Parser:
		return "Parser"
	case Build:
		return "Build"
	case Load:
		return "Load"
	case Runtime:
		return "Runtime"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// LangError is the single sum type every compilation call can fail with
// (spec §7). It always carries a Code (see codes.go) and, except for
// Load-phase errors and a handful of Build-phase errors that have no single
// offending token, a [Start,End) byte span so Format can show the offending
// source excerpt.
type LangError struct {
	Phase   Phase
	Code    string
	Start   int
	End     int
	HasSpan bool
	Err     error
}

func (e *LangError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Phase, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Phase, e.Code, e.Err.Error())
}

// Unwrap exposes the phase-local error so errors.As/errors.Is keep working
// against the concrete kinds (lexer.Error, preparser.Error, parser.Error,
// module.LoadError) a caller may still want to switch on.
func (e *LangError) Unwrap() error {
	return e.Err
}

// Span returns the byte range the error should be reported against.
func (e *LangError) Span() (int, int, bool) {
	return e.Start, e.End, e.HasSpan
}

// Wrap classifies err (returned by Tokenize, preparser.Preparse,
// parser.ParseModule, or a Loader method) into a LangError carrying the
// right Phase, Code, and span. Unrecognized errors are wrapped as a
// spanless Build/UnexpectedError — this should not happen for any error
// actually produced by this module's own packages, but keeps Wrap total.
func Wrap(err error) *LangError {
	if err == nil {
		return nil
	}
	if le, ok := err.(*LangError); ok {
		return le
	}

	switch e := err.(type) {
	case *lexer.Error:
		start, end := e.Span()
		return &LangError{Phase: Tokenizer, Code: lexerCode(e.Kind), Start: start, End: end, HasSpan: true, Err: err}

	case *preparser.Error:
		return &LangError{Phase: Parser, Code: preparserCode(e.Kind), Start: e.Token.Start, End: e.Token.End, HasSpan: true, Err: err}

	case *parsepkg.Error:
		return &LangError{Phase: Parser, Code: parserCode(e.Kind), Start: e.Token.Start, End: e.Token.End, HasSpan: true, Err: err}

	case *module.LoadError:
		return &LangError{Phase: Load, Code: loadCode(e.Kind), HasSpan: false, Err: err}

	default:
		return &LangError{Phase: Build, Code: BLD001, HasSpan: false, Err: err}
	}
}
