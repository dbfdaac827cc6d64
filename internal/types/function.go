package types

import "strings"

// FunctionType is a function's signature: the parameter types in
// declaration order and the declared return type. Grounded on the
// teacher's TFunc, stripped of the effect row (this language has no
// algebraic effects).
type FunctionType struct {
	Params []Type
	Return Type
}

func (f FunctionType) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") " + f.Return.String()
}

// Equals reports whether f and other have the same arity, parameter types,
// and return type.
func (f FunctionType) Equals(other FunctionType) bool {
	if len(f.Params) != len(other.Params) || !f.Return.Equals(other.Return) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equals(other.Params[i]) {
			return false
		}
	}
	return true
}
