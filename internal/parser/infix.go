package parser

import (
	"github.com/rainlang/rainc/internal/ast"
	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/types"
)

// nodeStart returns the start of node's span, for stamping an extending
// node's own span as (left's start, just-consumed token's end).
func nodeStart(node ast.Node) int {
	start, _ := node.Span()
	return start
}

// parseInfix inspects the next token and, if it extends node into a larger
// expression, consumes it and returns the extended node with matched=true.
// The loop in parseStatement calls this repeatedly until matched is false,
// yielding a maximal expression (spec §4.5's Pratt-style extension table).
func parseInfix(cur *lexer.Cursor, scope *Scope, node ast.Node) (ast.Node, bool, error) {
	tok, ok := cur.Peek()
	if !ok {
		return node, false, nil
	}

	switch {
	case tok.Kind.IsMathOp():
		cur.Pop()
		right, err := parseStatement(cur, scope)
		if err != nil {
			return nil, false, err
		}
		evalType := predictMathResult(tok.Kind, node.EvalType(), right.EvalType())
		n := ast.NewMathOperation(tok.Kind, node, right, nodeStart(node), prevEnd(cur))
		n.SetEvalType(evalType)
		return n, true, nil

	case tok.Kind.IsBoolOp():
		cur.Pop()
		right, err := parseStatement(cur, scope)
		if err != nil {
			return nil, false, err
		}
		n := ast.NewBoolOperation(tok.Kind, node, right, nodeStart(node), prevEnd(cur))
		n.SetEvalType(types.Bool)
		return n, true, nil

	case tok.Kind == lexer.SquareOpen:
		cur.Pop()
		index, err := parseStatement(cur, scope)
		if err != nil {
			return nil, false, err
		}
		if err := expect(cur, lexer.SquareClose); err != nil {
			return nil, false, err
		}
		if node.EvalType().Kind != types.KindVector || node.EvalType().Elem == nil {
			return nil, false, &Error{Kind: NotIndexable, Token: tok}
		}
		n := ast.NewValueFieldAccess(node, index, nodeStart(node), prevEnd(cur))
		n.SetEvalType(*node.EvalType().Elem)
		return n, true, nil

	case tok.Kind == lexer.RoundOpen:
		cur.Pop()
		args, err := parseParameterValues(cur, scope)
		if err != nil {
			return nil, false, err
		}
		if node.EvalType().Kind != types.KindFunction || node.EvalType().Func == nil {
			return nil, false, &Error{Kind: NotCallable, Token: tok}
		}
		sig := node.EvalType().Func
		if len(args) != len(sig.Params) {
			return nil, false, &Error{Kind: InvalidArgCount, Token: tok, ExpectedCount: len(sig.Params)}
		}
		for i, a := range args {
			if !a.EvalType().Compatible(sig.Params[i]) {
				return nil, false, errWrongType(tok, sig.Params[i], a.EvalType())
			}
		}
		n := ast.NewFunctionInvok(node, args, nodeStart(node), prevEnd(cur))
		n.SetEvalType(sig.Return)
		return n, true, nil

	case tok.Kind == lexer.Dot:
		cur.Pop()
		fieldTok, ok := cur.Pop()
		if !ok {
			return nil, false, errUnexpectedEOF()
		}
		if fieldTok.Kind != lexer.Symbol {
			return nil, false, errUnexpectedToken(fieldTok)
		}
		if node.EvalType().Kind != types.KindClass {
			return nil, false, &Error{Kind: InvalidFieldAccess, Token: fieldTok}
		}
		class := node.EvalType().Class
		fieldType, ok := class.FieldType(fieldTok.Literal)
		if !ok {
			sig, ok := class.Method(fieldTok.Literal)
			if !ok {
				return nil, false, &Error{Kind: FieldDoesntExist, Token: fieldTok, Detail: fieldTok.Literal}
			}
			fieldType = types.NewFunction(sig)
		}
		n := ast.NewFieldAccess(node, fieldTok.Literal, nodeStart(node), prevEnd(cur))
		n.SetEvalType(fieldType)
		return n, true, nil

	case tok.Kind == lexer.Assign:
		switch target := node.(type) {
		case *ast.VariableRefNode:
			cur.Pop()
			value, err := parseStatement(cur, scope)
			if err != nil {
				return nil, false, err
			}
			n := ast.NewVariableAsgn(target.Name, value, nodeStart(node), prevEnd(cur))
			n.SetEvalType(types.Nothing)
			return n, true, nil
		case *ast.FieldAccessNode:
			cur.Pop()
			value, err := parseStatement(cur, scope)
			if err != nil {
				return nil, false, err
			}
			n := ast.NewFieldAsgn(target.Obj, target.Field, value, nodeStart(node), prevEnd(cur))
			n.SetEvalType(types.Nothing)
			return n, true, nil
		default:
			return node, false, nil
		}

	default:
		return node, false, nil
	}
}

// predictMathResult implements the numeric widening table a math operator
// between two already-typed operands produces (spec §4.5, NOT the
// superseded per-operator table in the original type-checking pass this
// parser replaced): int+int is int; any other pairing of int/float is
// float; '+' with either side a string is string; division always yields
// float regardless of operand types; anything else is Nothing, left for a
// backend to reject at runtime.
func predictMathResult(op lexer.Kind, left, right types.Type) types.Type {
	if op == lexer.Slash {
		return types.Float
	}
	if op == lexer.Plus && (left.Kind == types.KindString || right.Kind == types.KindString) {
		return types.String
	}
	if left.Kind == types.KindInt && right.Kind == types.KindInt {
		return types.Int
	}
	if left.IsNumeric() && right.IsNumeric() {
		return types.Float
	}
	return types.Nothing
}
