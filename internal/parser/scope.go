package parser

import (
	"github.com/rainlang/rainc/internal/module"
	"github.com/rainlang/rainc/internal/types"
)

// globalKind tags what a ModuleScope entry names, mirroring the Rust
// original's `ScopeGetResult`/module-scope global enum
// (parser_module_scope.rs).
type globalKind int

const (
	globalVar globalKind = iota
	globalFunc
	globalClass
)

type globalEntry struct {
	kind  globalKind
	owner uint64 // owning module's UID
	typ   types.Type
	class *types.ClassType
}

// GetResultKind tags what ModuleScope.Get / Scope.Get found.
type GetResultKind int

const (
	GetNone GetResultKind = iota
	GetClass
	GetRef
)

// GetResult is the outcome of a name lookup: GetClass carries the class
// handle, GetRef carries the owning module's UID and the bound type, GetNone
// means the name is undeclared (spec §4.5: module-scope get returns one of
// Class(uid,classType) | Ref(uid,type) | None).
type GetResult struct {
	Kind  GetResultKind
	Owner uint64
	Type  types.Type
	Class *types.ClassType
}

// ModuleScope is the root frame of a module's scope tree: every declaration
// of the module itself plus every declaration of each of its imports, each
// tagged with its owning module's UID (spec §4.5's module-scope
// pre-population). Declarations and imports share one name space, so a
// second declare under the same name is a caller bug, not handled here.
type ModuleScope struct {
	uid     uint64
	globals map[string]globalEntry
	resolve module.ClassResolver
}

// NewModuleScope starts an empty ModuleScope for the module identified by
// uid. resolve is consulted for every custom type name an inline signature
// (a function literal's parameters, a `var`'s declared type) names during
// the body pass (spec §4.5's "ParsableType resolution").
func NewModuleScope(uid uint64, resolve module.ClassResolver) *ModuleScope {
	return &ModuleScope{uid: uid, globals: make(map[string]globalEntry), resolve: resolve}
}

// ResolveClass looks up a custom type name against the resolver the
// ModuleScope was built with.
func (m *ModuleScope) ResolveClass(name string) (*types.ClassType, bool) {
	return m.resolve(name)
}

// DeclareVar registers a variable owned by this module.
func (m *ModuleScope) DeclareVar(name string, t types.Type) {
	m.globals[name] = globalEntry{kind: globalVar, owner: m.uid, typ: t}
}

// DeclareFunc registers a function owned by this module.
func (m *ModuleScope) DeclareFunc(name string, t types.Type) {
	m.globals[name] = globalEntry{kind: globalFunc, owner: m.uid, typ: t}
}

// DeclareClass registers a class owned by this module.
func (m *ModuleScope) DeclareClass(name string, class *types.ClassType) {
	m.globals[name] = globalEntry{kind: globalClass, owner: m.uid, class: class}
}

// DeclareExternalVar registers a variable owned by an imported module.
func (m *ModuleScope) DeclareExternalVar(name string, owner uint64, t types.Type) {
	m.globals[name] = globalEntry{kind: globalVar, owner: owner, typ: t}
}

// DeclareExternalFunc registers a function owned by an imported module.
func (m *ModuleScope) DeclareExternalFunc(name string, owner uint64, t types.Type) {
	m.globals[name] = globalEntry{kind: globalFunc, owner: owner, typ: t}
}

// DeclareExternalClass registers a class owned by an imported module.
func (m *ModuleScope) DeclareExternalClass(name string, owner uint64, class *types.ClassType) {
	m.globals[name] = globalEntry{kind: globalClass, owner: owner, class: class}
}

// Get resolves name against the module's globals only (no parent: this is
// the root frame).
func (m *ModuleScope) Get(name string) GetResult {
	e, ok := m.globals[name]
	if !ok {
		return GetResult{Kind: GetNone}
	}
	if e.kind == globalClass {
		return GetResult{Kind: GetClass, Owner: e.owner, Class: e.class}
	}
	return GetResult{Kind: GetRef, Owner: e.owner, Type: e.typ}
}

// Scope is a child lexical frame: parallel names/types slices searched
// newest-shadows-oldest, falling back to its parent frame (another Scope)
// or, at the root, the ModuleScope (spec §4.5/§9's "parallel small vectors"
// note). EvalType is the mutable cell that records the type produced by the
// last return/break statement seen in this frame, per spec §9's "model
// interior mutability as part of the scope struct".
type Scope struct {
	parent   *Scope
	module   *ModuleScope
	names    []string
	types    []types.Type
	EvalType types.Type
}

// NewModuleChildScope starts a Scope whose parent is the module's root
// frame.
func NewModuleChildScope(m *ModuleScope) *Scope {
	return &Scope{module: m, EvalType: types.Nothing}
}

// NewChildScope starts a Scope nested under an existing Scope. EvalType
// starts at Nothing and is never inherited from the parent: a return/break
// parsed inside an if/for/while body sets only that nested scope's own
// EvalType, never the enclosing function scope's — only a return/break
// parsed directly in a scope's own parseStatement call reaches its
// coherence check, mirroring the Rust original's per-frame RefCell.
func (s *Scope) NewChildScope() *Scope {
	return &Scope{parent: s, module: s.module, EvalType: types.Nothing}
}

// Declare adds name/t to this frame, shadowing any outer declaration of the
// same name.
func (s *Scope) Declare(name string, t types.Type) {
	s.names = append(s.names, name)
	s.types = append(s.types, t)
}

// Get resolves name: this frame (newest first), then parent frames, then
// the module scope.
func (s *Scope) Get(name string) GetResult {
	for i := len(s.names) - 1; i >= 0; i-- {
		if s.names[i] == name {
			return GetResult{Kind: GetRef, Owner: s.module.uid, Type: s.types[i]}
		}
	}
	if s.parent != nil {
		return s.parent.Get(name)
	}
	return s.module.Get(name)
}

// ResolveClass delegates to the owning module's resolver, used by inline
// signatures parsed mid-body (a `func` literal's parameter types, a `var`'s
// declared type).
func (s *Scope) ResolveClass(name string) (*types.ClassType, bool) {
	return s.module.ResolveClass(name)
}

// SetEvalType records t as the type produced by a return/break in this
// frame. Callers that need the value to be visible to an enclosing
// function's coherence check must propagate it themselves (e.g. by reading
// the innermost child scope's EvalType back into the function scope after
// parseBody returns), since Go has no shared mutable cell across distinct
// struct values.
func (s *Scope) SetEvalType(t types.Type) {
	s.EvalType = t
}
