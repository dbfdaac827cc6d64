package errors

import (
	"testing"

	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/module"
	"github.com/rainlang/rainc/internal/preparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parsepkg "github.com/rainlang/rainc/internal/parser"
)

func TestWrapNilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil))
}

func TestWrapIdempotentOnLangError(t *testing.T) {
	original := &LangError{Phase: Parser, Code: PAR005}
	assert.Same(t, original, Wrap(original))
}

func TestWrapLexerError(t *testing.T) {
	_, err := lexer.Tokenize(`"unterminated`)
	require.Error(t, err)

	le := Wrap(err)
	require.NotNil(t, le)
	assert.Equal(t, Tokenizer, le.Phase)
	assert.Equal(t, LEX004, le.Code)
	start, end, ok := le.Span()
	assert.True(t, ok)
	assert.True(t, end >= start)
}

func TestWrapPreparserError(t *testing.T) {
	cur, err := lexer.Tokenize("func broken(\n")
	require.NoError(t, err)
	_, perr := preparser.Preparse(cur, "m", module.ComputeUID("m"))
	require.Error(t, perr)

	le := Wrap(perr)
	assert.Equal(t, Parser, le.Phase)
	assert.True(t, le.HasSpan)
}

func TestWrapParserError(t *testing.T) {
	inner := &parsepkg.Error{Kind: parsepkg.VarNotFound, Detail: "nope"}
	le := Wrap(inner)
	assert.Equal(t, Parser, le.Phase)
	assert.Equal(t, PAR008, le.Code)
	assert.Same(t, inner, le.Unwrap())
}

func TestWrapLoadError(t *testing.T) {
	inner := &module.LoadError{Kind: module.ImportCycleError, ID: "x"}
	le := Wrap(inner)
	assert.Equal(t, Load, le.Phase)
	assert.Equal(t, LDR003, le.Code)
	assert.False(t, le.HasSpan)
}

func TestWrapUnknownErrorFallsBackToBuild(t *testing.T) {
	le := Wrap(assertErr{})
	assert.Equal(t, Build, le.Phase)
	assert.Equal(t, BLD001, le.Code)
	assert.False(t, le.HasSpan)
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Tokenizer", Tokenizer.String())
	assert.Equal(t, "Runtime", Runtime.String())
	assert.Contains(t, Phase(99).String(), "Phase(99)")
}

func TestIsParserAndLoaderError(t *testing.T) {
	assert.True(t, IsParserError(PAR005))
	assert.False(t, IsParserError(LDR001))
	assert.True(t, IsLoaderError(LDR002))
	assert.False(t, IsLoaderError(PAR005))
	assert.False(t, IsParserError("NOPE999"))
}
