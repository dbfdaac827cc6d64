package parser

import (
	"testing"

	"github.com/rainlang/rainc/internal/ast"
	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/types"
	"github.com/stretchr/testify/require"
)

// noResolve is a ClassResolver that never finds a custom type name, for
// tests whose source never names a class in signature position.
func noResolve(string) (*types.ClassType, bool) { return nil, false }

// newModuleScope starts an empty ModuleScope for module UID 1 with a
// resolver that never resolves a custom name, for tests that declare
// everything directly rather than through a pre-parsed module.
func newModuleScope() *ModuleScope {
	return NewModuleScope(1, noResolve)
}

func mustTokenize(t *testing.T, source string) *lexer.Cursor {
	t.Helper()
	cur, err := lexer.Tokenize(source)
	require.NoError(t, err)
	return cur
}

// parseExpr tokenizes source and parses exactly one maximal statement
// against scope, failing the test on any error.
func parseExpr(t *testing.T, source string, scope *Scope) ast.Node {
	t.Helper()
	cur := mustTokenize(t, source)
	node, err := parseStatement(cur, scope)
	require.NoError(t, err)
	return node
}

// parseExprErr tokenizes source and parses one statement against scope,
// asserting it fails and returning the *Error.
func parseExprErr(t *testing.T, source string, scope *Scope) *Error {
	t.Helper()
	cur := mustTokenize(t, source)
	_, err := parseStatement(cur, scope)
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok, "expected *parser.Error, got %T", err)
	return perr
}
