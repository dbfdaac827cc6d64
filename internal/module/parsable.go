package module

import (
	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/types"
)

// NoBody is the sentinel Body value for a declaration with no initializer
// or function body (a declaration-only `var`/`func`, or — per the Rust
// original's `Option<TokenSnapshot>` — any signature the source never gave
// a body to).
const NoBody lexer.Snapshot = -1

// ParsableVariable is a module-level `var` declaration as the pre-parser
// leaves it: its declared type is already known, but its initializer body
// is only a snapshot to rewind to during the body pass (spec §4.3). Body
// is NoBody when the declaration has no initializer.
type ParsableVariable struct {
	Type ParsableType
	Body lexer.Snapshot
}

// ParsableFunction is a module-level (or method) function declaration in
// pre-parsed form: signature and parameter names are known; the body is a
// snapshot, or NoBody for a declaration-only signature.
type ParsableFunction struct {
	Signature ParsableFunctionType
	Params    []string
	Body      lexer.Snapshot
}

// ParsableField is one `name: Type` field slot of a ParsableClass.
type ParsableField struct {
	Name string
	Type ParsableType
}

// ParsableClass is a module-level class declaration in pre-parsed form:
// field types are known immediately (a field's type must be written, never
// inferred, per spec §4.3), and each method is itself a ParsableFunction.
type ParsableClass struct {
	Kind    types.ClassKind
	Fields  []ParsableField
	Methods []NamedParsableFunction
}

// NamedParsableFunction pairs a method name with its pre-parsed body, used
// in ParsableClass.Methods to preserve declaration order (spec keeps
// declarations as ordered (name, entry) pairs rather than a map, so that
// diagnostics and re-emission are deterministic).
type NamedParsableFunction struct {
	Name string
	Func ParsableFunction
}

// NamedParsableVariable pairs a variable name with its pre-parsed entry.
type NamedParsableVariable struct {
	Name string
	Var  ParsableVariable
}

// NamedParsableFunctionDecl pairs a top-level function name with its entry.
type NamedParsableFunctionDecl struct {
	Name string
	Func ParsableFunction
}

// NamedParsableClass pairs a class name with its pre-parsed entry.
type NamedParsableClass struct {
	Name  string
	Class ParsableClass
}

// ParsableModule is the pre-parser's output for one source file: every
// top-level declaration has been discovered and its signature fully
// parsed, but no body has been descended into (spec §4.3's "discovers
// declarations, does not parse bodies"). A ParsableModule still owns the
// full token buffer so the body pass can rewind to any snapshot it holds.
type ParsableModule struct {
	ID   string
	UID  UID
	Cur  *lexer.Cursor

	Imports   []string
	Variables []NamedParsableVariable
	Functions []NamedParsableFunctionDecl
	Classes   []NamedParsableClass
}

// NewParsableModule starts an empty ParsableModule bound to its source's
// token cursor.
func NewParsableModule(id string, uid UID, cur *lexer.Cursor) *ParsableModule {
	return &ParsableModule{ID: id, UID: uid, Cur: cur}
}

// FindClass looks up a declared class by name within this module only
// (own-module resolution; imports are checked separately by the caller per
// spec §4.5's "own-module classes then imports" order).
func (m *ParsableModule) FindClass(name string) (ParsableClass, bool) {
	for _, c := range m.Classes {
		if c.Name == name {
			return c.Class, true
		}
	}
	return ParsableClass{}, false
}
