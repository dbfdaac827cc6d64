// Package ast is the typed abstract syntax tree the parser builds as it
// type-checks a module's bodies. Every node is typed the moment it is
// constructed — there is no separate inference pass over an untyped tree.
package ast

import (
	"fmt"

	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/types"
)

// NodeKind is the closed set of AST node shapes (spec §3).
type NodeKind int

const (
	VariableDecl NodeKind = iota
	VariableRef
	VariableAsgn
	FunctionInvok
	LiteralExpr
	MathOperation
	BoolOperation
	ReturnStatement
	IfStatement
	ForStatement
	WhileStatement
	FieldAccess
	FieldAsgn
	VectorLiteral
	ObjectLiteral
	FunctionLiteral
	ValueFieldAccess
	ConstructClass
)

func (k NodeKind) String() string {
	switch k {
	case VariableDecl:
		return "VariableDecl"
	case VariableRef:
		return "VariableRef"
	case VariableAsgn:
		return "VariableAsgn"
	case FunctionInvok:
		return "FunctionInvok"
	case LiteralExpr:
		return "Literal"
	case MathOperation:
		return "MathOperation"
	case BoolOperation:
		return "BoolOperation"
	case ReturnStatement:
		return "ReturnStatement"
	case IfStatement:
		return "IfStatement"
	case ForStatement:
		return "ForStatement"
	case WhileStatement:
		return "WhileStatement"
	case FieldAccess:
		return "FieldAccess"
	case FieldAsgn:
		return "FieldAsgn"
	case VectorLiteral:
		return "VectorLiteral"
	case ObjectLiteral:
		return "ObjectLiteral"
	case FunctionLiteral:
		return "FunctionLiteral"
	case ValueFieldAccess:
		return "ValueFieldAccess"
	case ConstructClass:
		return "ConstructClass"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// Node is implemented by every concrete AST node. Kind/EvalType/Span are
// the (kind, eval_type) pair spec §3 requires on every node, plus the byte
// span needed to format an error against the original source later.
type Node interface {
	Kind() NodeKind
	EvalType() types.Type
	SetEvalType(types.Type)
	Span() (int, int)
	String() string
}

// base is embedded by every concrete node; it carries the fields common to
// all of them so each concrete type only declares its own data.
type base struct {
	kind       NodeKind
	evalType   types.Type
	start, end int
}

func (b *base) Kind() NodeKind               { return b.kind }
func (b *base) EvalType() types.Type     { return b.evalType }
func (b *base) SetEvalType(t types.Type) { b.evalType = t }
func (b *base) Span() (int, int)             { return b.start, b.end }

func newBase(kind NodeKind, start, end int) base {
	return base{kind: kind, evalType: types.Unknown, start: start, end: end}
}

// VariableDeclNode is `var name [type] = value`.
type VariableDeclNode struct {
	base
	Name  string
	Value Node
}

func NewVariableDecl(name string, value Node, start, end int) *VariableDeclNode {
	return &VariableDeclNode{base: newBase(VariableDecl, start, end), Name: name, Value: value}
}

func (n *VariableDeclNode) String() string { return fmt.Sprintf("var %s = %s", n.Name, n.Value) }

// VariableRefNode is a reference to a declaration owned by Module (self or
// an import), carried per spec §3's invariant that every reference names
// its owning module explicitly.
type VariableRefNode struct {
	base
	Module uint64
	Name   string
}

func NewVariableRef(module uint64, name string, start, end int) *VariableRefNode {
	return &VariableRefNode{base: newBase(VariableRef, start, end), Module: module, Name: name}
}

func (n *VariableRefNode) String() string { return n.Name }

// VariableAsgnNode is `name = value` where name already resolves to a ref.
type VariableAsgnNode struct {
	base
	Name  string
	Value Node
}

func NewVariableAsgn(name string, value Node, start, end int) *VariableAsgnNode {
	return &VariableAsgnNode{base: newBase(VariableAsgn, start, end), Name: name, Value: value}
}

func (n *VariableAsgnNode) String() string { return fmt.Sprintf("%s = %s", n.Name, n.Value) }

// FunctionInvokNode is a call `callee(args...)`.
type FunctionInvokNode struct {
	base
	Callee Node
	Args   []Node
}

func NewFunctionInvok(callee Node, args []Node, start, end int) *FunctionInvokNode {
	return &FunctionInvokNode{base: newBase(FunctionInvok, start, end), Callee: callee, Args: args}
}

func (n *FunctionInvokNode) String() string { return fmt.Sprintf("%s(...)", n.Callee) }

// LiteralExprNode wraps a literal value (spec §3's Literal(LiteralKind)).
type LiteralExprNode struct {
	base
	Value Literal
}

func NewLiteralExpr(value Literal, start, end int) *LiteralExprNode {
	return &LiteralExprNode{base: newBase(LiteralExpr, start, end), Value: value}
}

func (n *LiteralExprNode) String() string { return n.Value.String() }

// MathOperationNode is `l op r` for a math operator.
type MathOperationNode struct {
	base
	Op          lexer.Kind
	Left, Right Node
}

func NewMathOperation(op lexer.Kind, left, right Node, start, end int) *MathOperationNode {
	return &MathOperationNode{base: newBase(MathOperation, start, end), Op: op, Left: left, Right: right}
}

func (n *MathOperationNode) String() string { return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right) }

// BoolOperationNode is `l op r` for a boolean comparison operator.
type BoolOperationNode struct {
	base
	Op          lexer.Kind
	Left, Right Node
}

func NewBoolOperation(op lexer.Kind, left, right Node, start, end int) *BoolOperationNode {
	return &BoolOperationNode{base: newBase(BoolOperation, start, end), Op: op, Left: left, Right: right}
}

func (n *BoolOperationNode) String() string { return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right) }

// ReturnKind distinguishes the three ways a body can unwind.
type ReturnKind int

const (
	ReturnKindReturn ReturnKind = iota
	ReturnKindBreak
	ReturnKindPanic
)

func (k ReturnKind) String() string {
	switch k {
	case ReturnKindBreak:
		return "break"
	case ReturnKindPanic:
		return "panic"
	default:
		return "return"
	}
}

// ReturnStatementNode is `return`/`break` with an optional value.
type ReturnStatementNode struct {
	base
	Value    Node // nil if bare
	StmtKind ReturnKind
}

func NewReturnStatement(value Node, kind ReturnKind, start, end int) *ReturnStatementNode {
	return &ReturnStatementNode{base: newBase(ReturnStatement, start, end), Value: value, StmtKind: kind}
}

func (n *ReturnStatementNode) String() string {
	if n.Value == nil {
		return n.StmtKind.String()
	}
	return fmt.Sprintf("%s %s", n.StmtKind, n.Value)
}

// IfStatementNode is `if cond { body }`.
type IfStatementNode struct {
	base
	Cond Node
	Body []Node
}

func NewIfStatement(cond Node, body []Node, start, end int) *IfStatementNode {
	return &IfStatementNode{base: newBase(IfStatement, start, end), Cond: cond, Body: body}
}

func (n *IfStatementNode) String() string { return fmt.Sprintf("if %s { ... }", n.Cond) }

// ForStatementNode is `iterName in from .. to { body }`.
type ForStatementNode struct {
	base
	From, To Node
	IterName string
	Body     []Node
}

func NewForStatement(from, to Node, iterName string, body []Node, start, end int) *ForStatementNode {
	return &ForStatementNode{base: newBase(ForStatement, start, end), From: from, To: to, IterName: iterName, Body: body}
}

func (n *ForStatementNode) String() string {
	return fmt.Sprintf("for %s in %s .. %s { ... }", n.IterName, n.From, n.To)
}

// WhileStatementNode is `while cond { body }`.
type WhileStatementNode struct {
	base
	Cond Node
	Body []Node
}

func NewWhileStatement(cond Node, body []Node, start, end int) *WhileStatementNode {
	return &WhileStatementNode{base: newBase(WhileStatement, start, end), Cond: cond, Body: body}
}

func (n *WhileStatementNode) String() string { return fmt.Sprintf("while %s { ... }", n.Cond) }

// FieldAccessNode is `obj.field` where field resolves to a declared field
// or method of obj's class.
type FieldAccessNode struct {
	base
	Obj   Node
	Field string
}

func NewFieldAccess(obj Node, field string, start, end int) *FieldAccessNode {
	return &FieldAccessNode{base: newBase(FieldAccess, start, end), Obj: obj, Field: field}
}

func (n *FieldAccessNode) String() string { return fmt.Sprintf("%s.%s", n.Obj, n.Field) }

// FieldAsgnNode is `obj.field = value`.
type FieldAsgnNode struct {
	base
	Obj   Node
	Field string
	Value Node
}

func NewFieldAsgn(obj Node, field string, value Node, start, end int) *FieldAsgnNode {
	return &FieldAsgnNode{base: newBase(FieldAsgn, start, end), Obj: obj, Field: field, Value: value}
}

func (n *FieldAsgnNode) String() string { return fmt.Sprintf("%s.%s = %s", n.Obj, n.Field, n.Value) }

// VectorLiteralNode is `[a, b, c]`; every item must share a single type.
type VectorLiteralNode struct {
	base
	Items []Node
}

func NewVectorLiteral(items []Node, start, end int) *VectorLiteralNode {
	return &VectorLiteralNode{base: newBase(VectorLiteral, start, end), Items: items}
}

func (n *VectorLiteralNode) String() string { return fmt.Sprintf("[%d items]", len(n.Items)) }

// ObjectField is one `name: value` pair in an ObjectLiteralNode.
type ObjectField struct {
	Name  string
	Value Node
}

// ObjectLiteralNode is `{ name: value, ... }`.
type ObjectLiteralNode struct {
	base
	Fields []ObjectField
}

func NewObjectLiteral(fields []ObjectField, start, end int) *ObjectLiteralNode {
	return &ObjectLiteralNode{base: newBase(ObjectLiteral, start, end), Fields: fields}
}

func (n *ObjectLiteralNode) String() string { return fmt.Sprintf("{%d fields}", len(n.Fields)) }

// FunctionLiteralNode holds a shared handle to the Function it parsed,
// per spec §3's "handle -> Function".
type FunctionLiteralNode struct {
	base
	Handle *Function
}

func NewFunctionLiteral(handle *Function, start, end int) *FunctionLiteralNode {
	return &FunctionLiteralNode{base: newBase(FunctionLiteral, start, end), Handle: handle}
}

func (n *FunctionLiteralNode) String() string { return "func(...) { ... }" }

// ValueFieldAccessNode is `obj[index]`, i.e. vector indexing.
type ValueFieldAccessNode struct {
	base
	Obj   Node
	Index Node
}

func NewValueFieldAccess(obj, index Node, start, end int) *ValueFieldAccessNode {
	return &ValueFieldAccessNode{base: newBase(ValueFieldAccess, start, end), Obj: obj, Index: index}
}

func (n *ValueFieldAccessNode) String() string { return fmt.Sprintf("%s[%s]", n.Obj, n.Index) }

// ConstructClassNode is `ClassName(args...)`, constructing an instance.
type ConstructClassNode struct {
	base
	Args  []Node
	Class *types.ClassType
}

func NewConstructClass(args []Node, class *types.ClassType, start, end int) *ConstructClassNode {
	return &ConstructClassNode{base: newBase(ConstructClass, start, end), Args: args, Class: class}
}

func (n *ConstructClassNode) String() string { return fmt.Sprintf("%s(...)", n.Class.Name) }
