package module

import (
	"github.com/rainlang/rainc/internal/ast"
	"github.com/rainlang/rainc/internal/types"
)

// VariableEntry is a fully resolved module-level variable: its declared
// type and its initializer, type-checked against that type.
type VariableEntry struct {
	Type  types.Type
	Value ast.Node
}

// FunctionEntry is a fully resolved module-level (or method) function: its
// signature plus a shared handle to the body the parser built.
type FunctionEntry struct {
	Signature types.FunctionType
	Handle    *ast.Function
}

// NamedVariable pairs a name with its resolved entry, preserving
// declaration order.
type NamedVariable struct {
	Name  string
	Entry VariableEntry
}

// NamedFunction pairs a name with its resolved entry.
type NamedFunction struct {
	Name  string
	Entry FunctionEntry
}

// NamedClass pairs a name with its shared ClassType handle plus the
// compiled bodies of its methods. ClassType itself only carries method
// *signatures* (types.FunctionType) so that it stays a plain comparable-by-
// name metadata record shareable from field/parameter/variable types without
// pulling a method's AST along for the ride (spec §3's ClassType vs. the
// fuller per-module "Class" record that also holds method bodies); Methods
// here is that fuller record's body-holding half, keyed by method name.
type NamedClass struct {
	Name    string
	Class   *types.ClassType
	Methods []NamedFunction
}

// FindMethod looks up a compiled method body by name.
func (c *NamedClass) FindMethod(name string) (FunctionEntry, bool) {
	for _, m := range c.Methods {
		if m.Name == name {
			return m.Entry, true
		}
	}
	return FunctionEntry{}, false
}

// Module is a fully compiled source file: every declaration's signature is
// resolved and every body has been parsed and type-checked (spec §3's
// "Module" terminal state, reached after the Loader, pre-parser and body
// pass have all run over it). Declarations are kept as ordered
// (name, entry) slices rather than maps, mirroring the pre-parse stage and
// keeping iteration order deterministic for diagnostics.
type Module struct {
	ID  string
	UID UID

	Imports   []UID
	Variables []NamedVariable
	Functions []NamedFunction
	Classes   []NamedClass
}

// NewModule starts an empty, fully-formed Module shell; the compiler fills
// in its declaration slices as the body pass resolves each one.
func NewModule(id string, uid UID) *Module {
	return &Module{ID: id, UID: uid}
}

// FindVariable looks up a module-level variable by name within this
// module only.
func (m *Module) FindVariable(name string) (VariableEntry, bool) {
	for _, v := range m.Variables {
		if v.Name == name {
			return v.Entry, true
		}
	}
	return VariableEntry{}, false
}

// FindFunction looks up a module-level function by name within this
// module only.
func (m *Module) FindFunction(name string) (FunctionEntry, bool) {
	for _, f := range m.Functions {
		if f.Name == name {
			return f.Entry, true
		}
	}
	return FunctionEntry{}, false
}

// FindClass looks up a declared class by name within this module only.
func (m *Module) FindClass(name string) (*types.ClassType, bool) {
	for _, c := range m.Classes {
		if c.Name == name {
			return c.Class, true
		}
	}
	return nil, false
}
