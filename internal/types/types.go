// Package types models the closed, inference-free type system the parser
// checks against as it walks a function body: every expression's type is
// decided the moment it is parsed, never solved for afterward.
package types

import "fmt"

// Kind is the closed set of shapes a Type can take (spec §3's TypeKind).
// Unlike the teacher's Hindley-Milner Type interface (TVar/TCon/TFunc/
// TRecord/TApp with unification and substitution), there is no inference
// here: every variant is either a concrete primitive, a parameterized
// Vector/Function/Class shape, or Unknown.
type Kind int

const (
	// KindUnknown marks a type that could not be determined (e.g. a
	// forward reference not yet resolved, or deliberately erased). It is
	// compatible with everything, in either position: Unknown.Compatible(Int)
	// and Int.Compatible(Unknown) both hold, but that does not make
	// Unknown equal to Int.
	KindUnknown Kind = iota
	KindNothing
	KindInt
	KindFloat
	KindString
	KindBool
	KindVector
	KindFunction
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindNothing:
		return "Nothing"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "str"
	case KindBool:
		return "bool"
	case KindVector:
		return "Vector"
	case KindFunction:
		return "Function"
	case KindClass:
		return "Class"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type is a fully realized type: a Kind tag plus whatever payload that kind
// carries — Vector's element type, Function's signature, Class's shared
// handle — per spec §3's `Vector(TypeKind)`, `Function(Vec<TypeKind> ->
// TypeKind)`, and `Class(shared handle to ClassType)` variants. Primitive
// kinds carry no payload and compare by Kind alone.
type Type struct {
	Kind  Kind
	Elem  *Type         // set when Kind == KindVector
	Func  *FunctionType // set when Kind == KindFunction
	Class *ClassType    // set when Kind == KindClass
}

// The primitive types are plain values of their Kind with no payload.
var (
	Unknown = Type{Kind: KindUnknown}
	Nothing = Type{Kind: KindNothing}
	Int     = Type{Kind: KindInt}
	Float   = Type{Kind: KindFloat}
	String  = Type{Kind: KindString}
	Bool    = Type{Kind: KindBool}
)

// NewVector builds a Vector(elem) type.
func NewVector(elem Type) Type {
	e := elem
	return Type{Kind: KindVector, Elem: &e}
}

// NewFunction builds a Function(sig) type.
func NewFunction(sig FunctionType) Type {
	return Type{Kind: KindFunction, Func: &sig}
}

// NewClass builds a Class(handle) type referring to the given shared
// ClassType.
func NewClass(c *ClassType) Type {
	return Type{Kind: KindClass, Class: c}
}

func (t Type) String() string {
	switch t.Kind {
	case KindVector:
		if t.Elem == nil {
			return "Vector"
		}
		return fmt.Sprintf("Vector(%s)", t.Elem.String())
	case KindFunction:
		if t.Func == nil {
			return "Function"
		}
		return t.Func.String()
	case KindClass:
		if t.Class == nil {
			return "Class"
		}
		return t.Class.Name
	default:
		return t.Kind.String()
	}
}

// Compatible reports whether a value of type t may be used where want is
// expected. Unknown is compatible in either position — it never fails a
// check, it just declines to make one. Vector/Function/Class compare their
// payload recursively once the outer Kind matches.
func (t Type) Compatible(want Type) bool {
	if t.Kind == KindUnknown || want.Kind == KindUnknown {
		return true
	}
	if t.Kind != want.Kind {
		return false
	}
	switch t.Kind {
	case KindVector:
		if t.Elem == nil || want.Elem == nil {
			return true
		}
		return t.Elem.Compatible(*want.Elem)
	case KindFunction:
		if t.Func == nil || want.Func == nil {
			return true
		}
		return t.Func.Equals(*want.Func)
	case KindClass:
		return t.Class.Equals(want.Class)
	default:
		return true
	}
}

// Equals is Compatible's strict sibling: Unknown is only equal to Unknown.
// Used where structural identity, not backend-facing widening, is wanted.
func (t Type) Equals(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindVector:
		if t.Elem == nil || other.Elem == nil {
			return t.Elem == other.Elem
		}
		return t.Elem.Equals(*other.Elem)
	case KindFunction:
		if t.Func == nil || other.Func == nil {
			return t.Func == other.Func
		}
		return t.Func.Equals(*other.Func)
	case KindClass:
		return t.Class.Equals(other.Class)
	default:
		return true
	}
}

// IsNumeric reports whether t is int or float, the two types that widen
// against each other in a math expression (int widens to float, never the
// reverse) per spec §4.5.
func (t Type) IsNumeric() bool {
	return t.Kind == KindInt || t.Kind == KindFloat
}

// Widen returns the type a math operation between a and b produces: if
// either side is float, the result is float; otherwise int. Callers must
// only call Widen once both sides have already been checked IsNumeric.
func Widen(a, b Type) Type {
	if a.Kind == KindFloat || b.Kind == KindFloat {
		return Float
	}
	return Int
}
