package compiler

import (
	"testing"

	"github.com/rainlang/rainc/internal/ast"
	"github.com/rainlang/rainc/internal/errors"
	"github.com/rainlang/rainc/internal/module"
	"github.com/rainlang/rainc/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memImporter resolves textual identifiers against an in-memory source
// map — the same role a CLI driver's file-backed Importer plays, kept
// in-memory here since file I/O is outside this module's scope (spec §1).
type memImporter struct {
	sources map[string]string
}

func (m *memImporter) GetUniqueIdentifier(id string) (module.UID, bool) {
	if _, ok := m.sources[id]; !ok {
		return 0, false
	}
	return module.ComputeUID(id), true
}

func (m *memImporter) LoadModule(id string) (string, bool) {
	src, ok := m.sources[id]
	return src, ok
}

func compileOne(t *testing.T, source string) *module.Module {
	t.Helper()
	importer := &memImporter{sources: map[string]string{"main": source}}
	result, err := Compile("main", importer)
	require.NoError(t, err)
	mod, ok := result.Modules[result.Root]
	require.True(t, ok)
	return mod
}

// TestScenarioA_Arithmetic is spec §8 Scenario A: `init` returns the int
// 2 + 3 * 4 — this language has no operator precedence, and each math
// operator's right operand is itself a full recursive parseStatement, so
// the result is parsed right-associatively as 2 + (3 * 4) = 14.
func TestScenarioA_Arithmetic(t *testing.T) {
	mod := compileOne(t, "func init() int {\n  return 2 + 3 * 4\n}\n")
	fn, ok := mod.FindFunction("init")
	require.True(t, ok)
	assert.Equal(t, types.Int, fn.Signature.Return)
	require.Len(t, fn.Handle.Body, 1)
	ret, ok := fn.Handle.Body[0].(*ast.ReturnStatementNode)
	require.True(t, ok)
	assert.Equal(t, types.Int, ret.Value.EvalType())
}

// TestScenarioB_FunctionCall is spec §8 Scenario B.
func TestScenarioB_FunctionCall(t *testing.T) {
	mod := compileOne(t, "func sum(a int, b int) int {\n  return a + b\n}\nfunc init() int {\n  return sum(10, 5)\n}\n")
	fn, ok := mod.FindFunction("init")
	require.True(t, ok)
	ret := fn.Handle.Body[0].(*ast.ReturnStatementNode)
	invok, ok := ret.Value.(*ast.FunctionInvokNode)
	require.True(t, ok)
	assert.Len(t, invok.Args, 2)
	assert.Equal(t, types.Int, invok.EvalType())
}

// TestScenarioC_ControlFlow is spec §8 Scenario C: a var, a for-range loop
// reassigning it, then returning it.
func TestScenarioC_ControlFlow(t *testing.T) {
	mod := compileOne(t, "func init() int {\n  var s int = 0\n  for i in 0 .. 5 {\n    s = s + i\n  }\n  return s\n}\n")
	fn, ok := mod.FindFunction("init")
	require.True(t, ok)
	require.Len(t, fn.Handle.Body, 3)
	_, ok = fn.Handle.Body[0].(*ast.VariableDeclNode)
	require.True(t, ok)
	forNode, ok := fn.Handle.Body[1].(*ast.ForStatementNode)
	require.True(t, ok)
	assert.Equal(t, "i", forNode.IterName)
	require.Len(t, forNode.Body, 1)
	_, ok = forNode.Body[0].(*ast.VariableAsgnNode)
	require.True(t, ok)
}

// TestScenarioD_TypeError is spec §8 Scenario D: returning a string from a
// function declared to return int fails with WrongType.
func TestScenarioD_TypeError(t *testing.T) {
	importer := &memImporter{sources: map[string]string{
		"main": "func init() int {\n  return \"x\"\n}\n",
	}}
	_, err := Compile("main", importer)
	require.Error(t, err)
	langErr := errors.Wrap(err)
	assert.Equal(t, errors.PAR005, langErr.Code)
}

// TestScenarioE_UnknownIdentifier is spec §8 Scenario E: referencing an
// undeclared name fails with VarNotFound.
func TestScenarioE_UnknownIdentifier(t *testing.T) {
	importer := &memImporter{sources: map[string]string{
		"main": "func init() int {\n  return nope\n}\n",
	}}
	_, err := Compile("main", importer)
	require.Error(t, err)
	langErr := errors.Wrap(err)
	assert.Equal(t, errors.PAR008, langErr.Code)
}

// TestScenarioF_Import is spec §8 Scenario F: a two-module program where
// main imports util and calls one of its functions.
func TestScenarioF_Import(t *testing.T) {
	importer := &memImporter{sources: map[string]string{
		"util": "func triple(x int) int {\n  return x * 3\n}\n",
		"main": "import \"util\"\nfunc init() int {\n  return triple(4)\n}\n",
	}}
	result, err := Compile("main", importer)
	require.NoError(t, err)
	assert.Len(t, result.Modules, 2)

	mainUID, _ := importer.GetUniqueIdentifier("main")
	mainMod := result.Modules[mainUID]
	fn, ok := mainMod.FindFunction("init")
	require.True(t, ok)
	ret := fn.Handle.Body[0].(*ast.ReturnStatementNode)
	invok := ret.Value.(*ast.FunctionInvokNode)
	callee := invok.Callee.(*ast.VariableRefNode)

	utilUID, _ := importer.GetUniqueIdentifier("util")
	assert.Equal(t, uint64(utilUID), callee.Module)

	require.Len(t, result.Order, 2)
	assert.Equal(t, utilUID, result.Order[0], "util has no imports of its own and must precede main in the topological order")
	assert.Equal(t, mainUID, result.Order[1])
}

func TestCompileUnknownRootFails(t *testing.T) {
	importer := &memImporter{sources: map[string]string{}}
	_, err := Compile("missing", importer)
	require.Error(t, err)
	langErr := errors.Wrap(err)
	assert.Equal(t, errors.Load, langErr.Phase)
}

// declImporter additionally marks some identifiers as declaration modules
// (spec §4.4/§6.3), rejecting a body on their var/func forms.
type declImporter struct {
	memImporter
	declarations map[string]bool
}

func (d *declImporter) IsDeclaration(id string) bool {
	return d.declarations[id]
}

func TestDeclarationModuleAcceptsSignatureOnly(t *testing.T) {
	importer := &declImporter{
		memImporter:  memImporter{sources: map[string]string{"host": "func log(msg str)\n"}},
		declarations: map[string]bool{"host": true},
	}
	_, err := Compile("host", importer)
	require.NoError(t, err)
}

func TestDeclarationModuleWithBodyFails(t *testing.T) {
	importer := &declImporter{
		memImporter: memImporter{sources: map[string]string{
			"host": "func log(msg str) {\n  return\n}\n",
		}},
		declarations: map[string]bool{"host": true},
	}
	_, err := Compile("host", importer)
	require.Error(t, err)
}
