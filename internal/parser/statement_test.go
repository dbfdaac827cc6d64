package parser

import (
	"testing"

	"github.com/rainlang/rainc/internal/ast"
	"github.com/rainlang/rainc/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVarDeclWithDeclaredType(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	node := parseExpr(t, "var x int = 5\n", scope)
	decl, ok := node.(*ast.VariableDeclNode)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, types.Int, decl.EvalType())

	result := scope.Get("x")
	assert.Equal(t, GetRef, result.Kind)
	assert.Equal(t, types.Int, result.Type)
}

func TestParseVarDeclInfersTypeWhenOmitted(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	node := parseExpr(t, "var x = 5\n", scope)
	decl := node.(*ast.VariableDeclNode)
	assert.Equal(t, types.Int, decl.EvalType())
}

func TestParseVarDeclTypeMismatchFails(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	perr := parseExprErr(t, "var x int = \"a\"\n", scope)
	assert.Equal(t, WrongType, perr.Kind)
	assert.Equal(t, types.Int, perr.Expected)
	assert.Equal(t, types.String, perr.Found)
}

func TestParseNamedFunctionLiteralDeclaresInEnclosingScope(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	node := parseExpr(t, "func double(a int) int {\n  return a + a\n}\n", scope)
	decl, ok := node.(*ast.VariableDeclNode)
	require.True(t, ok)
	assert.Equal(t, "double", decl.Name)

	lit, ok := decl.Value.(*ast.FunctionLiteralNode)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, lit.Handle.Parameters)
	assert.Equal(t, types.KindFunction, lit.EvalType().Kind)

	result := scope.Get("double")
	assert.Equal(t, GetRef, result.Kind)
	assert.Equal(t, types.KindFunction, result.Type.Kind)
}

func TestParseAnonymousFunctionLiteralDeclaresNothing(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	node := parseExpr(t, "func(a int) int {\n  return a\n}\n", scope)
	lit, ok := node.(*ast.FunctionLiteralNode)
	require.True(t, ok)
	assert.Equal(t, types.KindFunction, lit.EvalType().Kind)
}

func TestParseFunctionLiteralWrongReturnTypeFails(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	perr := parseExprErr(t, "func bad() int {\n  return \"x\"\n}\n", scope)
	assert.Equal(t, WrongType, perr.Kind)
}

func TestParseIfStatement(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	node := parseExpr(t, "if true {\n  return 1\n}\n", scope)
	ifNode, ok := node.(*ast.IfStatementNode)
	require.True(t, ok)
	require.Len(t, ifNode.Body, 1)
	_, ok = ifNode.Body[0].(*ast.ReturnStatementNode)
	assert.True(t, ok)
}

func TestParseWhileStatement(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	node := parseExpr(t, "while true {\n  break\n}\n", scope)
	whileNode, ok := node.(*ast.WhileStatementNode)
	require.True(t, ok)
	require.Len(t, whileNode.Body, 1)
	ret, ok := whileNode.Body[0].(*ast.ReturnStatementNode)
	require.True(t, ok)
	assert.Equal(t, ast.ReturnKindBreak, ret.StmtKind)
}

func TestParseForStatementDeclaresIterAsInt(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	node := parseExpr(t, "for i in 0 .. 5 {\n  i\n}\n", scope)
	forNode, ok := node.(*ast.ForStatementNode)
	require.True(t, ok)
	assert.Equal(t, "i", forNode.IterName)
	require.Len(t, forNode.Body, 1)
	ref, ok := forNode.Body[0].(*ast.VariableRefNode)
	require.True(t, ok)
	assert.Equal(t, types.Int, ref.EvalType())
}

// TestParseBareReturnBeforeCurlyClose is the fix for parseReturnStatement
// treating only NewLine as the "no value" terminator: a brace body can
// place `}` immediately after a bare return/break on one line.
func TestParseBareReturnBeforeCurlyClose(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	node := parseExpr(t, "if true { return }\n", scope)
	ifNode := node.(*ast.IfStatementNode)
	require.Len(t, ifNode.Body, 1)
	ret, ok := ifNode.Body[0].(*ast.ReturnStatementNode)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
	assert.Equal(t, ast.ReturnKindReturn, ret.StmtKind)
}

func TestParseBareBreakBeforeCurlyClose(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	node := parseExpr(t, "while true { break }\n", scope)
	whileNode := node.(*ast.WhileStatementNode)
	require.Len(t, whileNode.Body, 1)
	ret, ok := whileNode.Body[0].(*ast.ReturnStatementNode)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
	assert.Equal(t, ast.ReturnKindBreak, ret.StmtKind)
}

func TestParseReturnWithValueStillParses(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	node := parseExpr(t, "return 1\n", scope)
	ret, ok := node.(*ast.ReturnStatementNode)
	require.True(t, ok)
	require.NotNil(t, ret.Value)
	assert.Equal(t, types.Int, ret.Value.EvalType())
}

func TestParseVectorLiteral(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	node := parseExpr(t, "[1, 2, 3]\n", scope)
	vec, ok := node.(*ast.VectorLiteralNode)
	require.True(t, ok)
	require.Len(t, vec.Items, 3)
	assert.Equal(t, types.NewVector(types.Int), vec.EvalType())
}

func TestParseVectorLiteralMixedTypesFails(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	perr := parseExprErr(t, "[1, \"a\"]\n", scope)
	assert.Equal(t, WrongType, perr.Kind)
}

func TestParseSymbolConstructClassWithInit(t *testing.T) {
	class := &types.ClassType{
		Name: "Point", Module: 1,
		Methods: map[string]types.FunctionType{
			"init": {Params: []types.Type{types.Int, types.Int}, Return: types.Nothing},
		},
	}
	modScope := newModuleScope()
	modScope.DeclareClass("Point", class)
	scope := NewModuleChildScope(modScope)

	node := parseExpr(t, "Point(1, 2)\n", scope)
	ctor, ok := node.(*ast.ConstructClassNode)
	require.True(t, ok)
	assert.True(t, ctor.Class.Equals(class))
	assert.Len(t, ctor.Args, 2)
}

func TestParseSymbolConstructClassArityMismatch(t *testing.T) {
	class := &types.ClassType{
		Name: "Point", Module: 1,
		Methods: map[string]types.FunctionType{
			"init": {Params: []types.Type{types.Int, types.Int}, Return: types.Nothing},
		},
	}
	modScope := newModuleScope()
	modScope.DeclareClass("Point", class)
	scope := NewModuleChildScope(modScope)

	perr := parseExprErr(t, "Point(1)\n", scope)
	assert.Equal(t, InvalidArgCount, perr.Kind)
	assert.Equal(t, 2, perr.ExpectedCount)
}

func TestParseSymbolConstructClassNoInitRejectsAnyArgs(t *testing.T) {
	class := &types.ClassType{Name: "Empty", Module: 1}
	modScope := newModuleScope()
	modScope.DeclareClass("Empty", class)
	scope := NewModuleChildScope(modScope)

	node := parseExpr(t, "Empty()\n", scope)
	ctor := node.(*ast.ConstructClassNode)
	assert.Empty(t, ctor.Args)

	perr := parseExprErr(t, "Empty(1)\n", scope)
	assert.Equal(t, InvalidArgCount, perr.Kind)
	assert.Equal(t, 0, perr.ExpectedCount)
}

func TestParseSymbolRefUnknownFails(t *testing.T) {
	scope := NewModuleChildScope(newModuleScope())

	perr := parseExprErr(t, "nope\n", scope)
	assert.Equal(t, VarNotFound, perr.Kind)
}
