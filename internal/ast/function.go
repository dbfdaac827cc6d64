package ast

import "github.com/rainlang/rainc/internal/types"

// Function is the shared handle a function literal — named or anonymous —
// parses into (spec §3: `{ body:[ASTNode], parameters:[name], method:
// ClassType? }`). Every `FunctionLiteralNode` and every class method slot
// points at the same Function by reference; there is no copying of body
// subtrees between sites.
type Function struct {
	Body       []Node
	Parameters []string

	// Method is the owning class's shared ClassType handle when this
	// Function was parsed as a method body, or nil for a free function.
	// This is a non-owning back-pointer: per spec §9's cycle-breaking
	// note, a class's ClassType.Methods table holds only FunctionType
	// signatures, never a *Function pointing back into the class, so the
	// only cycle in the graph is this one pointer, and it never needs to
	// be followed to reconstruct a ClassType — callers that need "all
	// methods of a class" walk ClassType.Methods, not Function.Method.
	Method *types.ClassType
}

// NewFunction constructs a Function with the given body and parameter
// names. Method is left nil; set it directly when parsing a method body.
func NewFunction(parameters []string, body []Node) *Function {
	return &Function{Parameters: parameters, Body: body}
}
