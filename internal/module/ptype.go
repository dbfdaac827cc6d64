package module

import (
	"fmt"

	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/types"
)

// PKind is the closed tag of a ParsableType, mirroring
// `original_source/common/src/ast/parsing_types.rs`'s `ParsableType` enum.
type PKind int

const (
	PUnknown PKind = iota
	PNothing
	PInt
	PFloat
	PString
	PBool
	PVector
	PFunction
	PCustom
)

// ParsableType is the pre-parser's surface-level type syntax: every
// primitive keyword resolves immediately to PKind, but a bare symbol in
// type position is recorded as PCustom(name) per spec §4.3, to be resolved
// against the current module's classes (then its imports) once the module
// scope exists — a custom class name may not have been declared yet at the
// point its use is pre-parsed.
type ParsableType struct {
	Kind   PKind
	Elem   *ParsableType // set when Kind == PVector
	Func   *ParsableFunctionType
	Custom string      // set when Kind == PCustom
	Token  lexer.Token // for error reporting when resolution fails
}

// ParsableFunctionType is a function signature still in surface form.
type ParsableFunctionType struct {
	Params []ParsableType
	Return ParsableType
}

// FromPrimitive maps a primitive-type lexer token kind to its ParsableType.
func FromPrimitive(k lexer.Kind, tok lexer.Token) (ParsableType, bool) {
	switch k {
	case lexer.TypeNone:
		return ParsableType{Kind: PNothing, Token: tok}, true
	case lexer.TypeInt:
		return ParsableType{Kind: PInt, Token: tok}, true
	case lexer.TypeFloat:
		return ParsableType{Kind: PFloat, Token: tok}, true
	case lexer.TypeBool:
		return ParsableType{Kind: PBool, Token: tok}, true
	case lexer.TypeStr:
		return ParsableType{Kind: PString, Token: tok}, true
	default:
		return ParsableType{}, false
	}
}

// Custom builds a PCustom surface type naming an unresolved class symbol.
func Custom(name string, tok lexer.Token) ParsableType {
	return ParsableType{Kind: PCustom, Custom: name, Token: tok}
}

func (p ParsableType) String() string {
	switch p.Kind {
	case PUnknown:
		return "Unknown"
	case PNothing:
		return "none"
	case PInt:
		return "int"
	case PFloat:
		return "float"
	case PString:
		return "str"
	case PBool:
		return "bool"
	case PVector:
		if p.Elem == nil {
			return "Vector"
		}
		return fmt.Sprintf("Vector(%s)", p.Elem)
	case PFunction:
		return "Function"
	case PCustom:
		return p.Custom
	default:
		return fmt.Sprintf("PKind(%d)", int(p.Kind))
	}
}

// ClassResolver looks up a declared class by name, used to resolve a
// PCustom surface type into a concrete types.Type during the body pass
// (spec §4.5's "ParsableType resolution": "against the current module's
// classes then its imports").
type ClassResolver func(name string) (*types.ClassType, bool)

// Resolve turns a surface ParsableType into a concrete types.Type. Custom
// names are looked up via resolve; an unresolved name reports ok=false so
// the caller can raise VarNotFound with the original token's span.
func (p ParsableType) Resolve(resolve ClassResolver) (types.Type, bool) {
	switch p.Kind {
	case PUnknown:
		return types.Unknown, true
	case PNothing:
		return types.Nothing, true
	case PInt:
		return types.Int, true
	case PFloat:
		return types.Float, true
	case PString:
		return types.String, true
	case PBool:
		return types.Bool, true
	case PVector:
		if p.Elem == nil {
			return types.Type{}, false
		}
		elem, ok := p.Elem.Resolve(resolve)
		if !ok {
			return types.Type{}, false
		}
		return types.NewVector(elem), true
	case PFunction:
		if p.Func == nil {
			return types.Type{}, false
		}
		sig, ok := p.Func.Resolve(resolve)
		if !ok {
			return types.Type{}, false
		}
		return types.NewFunction(sig), true
	case PCustom:
		class, ok := resolve(p.Custom)
		if !ok {
			return types.Type{}, false
		}
		return types.NewClass(class), true
	default:
		return types.Type{}, false
	}
}

// Resolve turns a ParsableFunctionType into a concrete types.FunctionType.
func (f ParsableFunctionType) Resolve(resolve ClassResolver) (types.FunctionType, bool) {
	params := make([]types.Type, len(f.Params))
	for i, p := range f.Params {
		t, ok := p.Resolve(resolve)
		if !ok {
			return types.FunctionType{}, false
		}
		params[i] = t
	}
	ret, ok := f.Return.Resolve(resolve)
	if !ok {
		return types.FunctionType{}, false
	}
	return types.FunctionType{Params: params, Return: ret}, true
}
