package parser

import (
	"github.com/rainlang/rainc/internal/ast"
	"github.com/rainlang/rainc/internal/module"
	"github.com/rainlang/rainc/internal/types"
)

// ParseModule runs the body pass over one pre-parsed module: it builds the
// module scope (spec §4.5's "every top-level declaration of this module ...
// of each import"), then rewinds to every declaration's snapshot and
// type-checks its body, producing the immutable terminal Module (spec
// §4.6). imports must already be fully compiled Modules, keyed by UID — the
// caller (the compiler driving the Loader's topological order) guarantees
// this per spec §5's "imports of a module are processed before its body
// pass begins".
func ParseModule(pm *module.ParsableModule, imports map[module.UID]*module.Module) (*module.Module, error) {
	classShells := make(map[string]*types.ClassType, len(pm.Classes))
	for _, c := range pm.Classes {
		classShells[c.Name] = &types.ClassType{
			Name:    c.Name,
			Module:  uint64(pm.UID),
			Kind:    c.Class.Kind,
			Methods: make(map[string]types.FunctionType),
		}
	}

	resolve := buildClassResolver(classShells, imports)

	for _, c := range pm.Classes {
		shell := classShells[c.Name]
		for _, f := range c.Class.Fields {
			t, ok := f.Type.Resolve(resolve)
			if !ok {
				return nil, errVarNotFound(f.Type.Token, f.Type.String())
			}
			shell.Fields = append(shell.Fields, types.Field{Name: f.Name, Type: t})
		}
		for _, m := range c.Class.Methods {
			sig, ok := m.Func.Signature.Resolve(resolve)
			if !ok {
				return nil, errVarNotFound(m.Func.Signature.Return.Token, m.Func.Signature.Return.String())
			}
			shell.Methods[m.Name] = sig
		}
	}

	varTypes := make(map[string]types.Type, len(pm.Variables))
	for _, v := range pm.Variables {
		t, ok := v.Var.Type.Resolve(resolve)
		if !ok {
			return nil, errVarNotFound(v.Var.Type.Token, v.Var.Type.String())
		}
		varTypes[v.Name] = t
	}

	funcSigs := make(map[string]types.FunctionType, len(pm.Functions))
	for _, f := range pm.Functions {
		sig, ok := f.Func.Signature.Resolve(resolve)
		if !ok {
			return nil, errVarNotFound(f.Func.Signature.Return.Token, f.Func.Signature.Return.String())
		}
		funcSigs[f.Name] = sig
	}

	modScope := NewModuleScope(uint64(pm.UID), resolve)
	for _, v := range pm.Variables {
		modScope.DeclareVar(v.Name, varTypes[v.Name])
	}
	for _, f := range pm.Functions {
		modScope.DeclareFunc(f.Name, types.NewFunction(funcSigs[f.Name]))
	}
	for _, c := range pm.Classes {
		modScope.DeclareClass(c.Name, classShells[c.Name])
	}
	for uid, imp := range imports {
		for _, v := range imp.Variables {
			modScope.DeclareExternalVar(v.Name, uint64(uid), v.Entry.Type)
		}
		for _, f := range imp.Functions {
			modScope.DeclareExternalFunc(f.Name, uint64(uid), types.NewFunction(f.Entry.Signature))
		}
		for _, c := range imp.Classes {
			modScope.DeclareExternalClass(c.Name, uint64(uid), c.Class)
		}
	}

	result := module.NewModule(pm.ID, pm.UID)
	for uid := range imports {
		result.Imports = append(result.Imports, uid)
	}

	for _, v := range pm.Variables {
		if v.Var.Body == module.NoBody {
			continue
		}
		bodyCur := pm.Cur.Clone()
		bodyCur.Rollback(v.Var.Body)
		bodyScope := NewModuleChildScope(modScope)
		value, err := parseStatement(bodyCur, bodyScope)
		if err != nil {
			return nil, err
		}
		declared := varTypes[v.Name]
		if !value.EvalType().Compatible(declared) {
			return nil, errWrongType(v.Var.Type.Token, declared, value.EvalType())
		}
		result.Variables = append(result.Variables, module.NamedVariable{
			Name:  v.Name,
			Entry: module.VariableEntry{Type: declared, Value: value},
		})
	}

	for _, f := range pm.Functions {
		entry, err := parseFunctionBody(pm, modScope, f.Func, funcSigs[f.Name], nil)
		if err != nil {
			return nil, err
		}
		result.Functions = append(result.Functions, module.NamedFunction{Name: f.Name, Entry: entry})
	}

	for _, c := range pm.Classes {
		shell := classShells[c.Name]
		named := module.NamedClass{Name: c.Name, Class: shell}
		for _, m := range c.Class.Methods {
			entry, err := parseFunctionBody(pm, modScope, m.Func, shell.Methods[m.Name], shell)
			if err != nil {
				return nil, err
			}
			named.Methods = append(named.Methods, module.NamedFunction{Name: m.Name, Entry: entry})
		}
		result.Classes = append(result.Classes, named)
	}

	return result, nil
}

// parseFunctionBody rewinds to fn's body snapshot (if any — a NoBody
// signature is a declaration-only function, per spec §6.3's declaration
// modules) and type-checks it against sig, pre-declaring `this` typed as
// Class(method) first when method is non-nil (spec §4.5's "pre-declares ...
// the class's implicit this (for methods, typed as Class(ownerClassType))").
func parseFunctionBody(pm *module.ParsableModule, modScope *ModuleScope, fn module.ParsableFunction, sig types.FunctionType, method *types.ClassType) (module.FunctionEntry, error) {
	if fn.Body == module.NoBody {
		return module.FunctionEntry{Signature: sig}, nil
	}

	bodyCur := pm.Cur.Clone()
	bodyCur.Rollback(fn.Body)
	bodyTok, ok := bodyCur.Peek()
	if !ok {
		return module.FunctionEntry{}, errUnexpectedEOF()
	}
	scope := NewModuleChildScope(modScope)

	if method != nil {
		scope.Declare("this", types.NewClass(method))
	}
	for i, name := range fn.Params {
		scope.Declare(name, sig.Params[i])
	}

	stmts, err := parseBody(bodyCur, scope)
	if err != nil {
		return module.FunctionEntry{}, err
	}
	if !scope.EvalType.Compatible(sig.Return) {
		return module.FunctionEntry{}, errWrongType(bodyTok, sig.Return, scope.EvalType)
	}

	handle := ast.NewFunction(fn.Params, stmts)
	handle.Method = method
	return module.FunctionEntry{Signature: sig, Handle: handle}, nil
}

// buildClassResolver resolves a custom type name against this module's own
// (possibly-forward-referenced) classes first, then each import's, per
// spec §4.5's "ParsableType resolution": own module's classes, then its
// imports.
func buildClassResolver(own map[string]*types.ClassType, imports map[module.UID]*module.Module) module.ClassResolver {
	return func(name string) (*types.ClassType, bool) {
		if c, ok := own[name]; ok {
			return c, true
		}
		for _, imp := range imports {
			if c, ok := imp.FindClass(name); ok {
				return c, true
			}
		}
		return nil, false
	}
}
