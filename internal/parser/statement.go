package parser

import (
	"strconv"

	"github.com/rainlang/rainc/internal/ast"
	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/types"
)

// prevEnd returns the End of the token just consumed, for stamping a just-
// built node's byte span.
func prevEnd(cur *lexer.Cursor) int {
	if tok, ok := cur.PeekAt(-1); ok {
		return tok.End
	}
	return 0
}

// parseBody parses statements until the matching close brace (already
// expected to be reached — the '{' itself must have been consumed by the
// caller), consuming that close brace. Structural NewLine/Indent/Dedent
// tokens between statements are skipped: braces are this language's live
// nesting surface (spec §9's open question, resolved in the pre-parser the
// same way).
func parseBody(cur *lexer.Cursor, scope *Scope) ([]ast.Node, error) {
	var body []ast.Node
	for {
		tok, ok := cur.Peek()
		if !ok {
			return nil, errUnexpectedEOF()
		}
		switch tok.Kind {
		case lexer.CurlyClose:
			cur.Pop()
			return body, nil
		case lexer.NewLine, lexer.Indent, lexer.Dedent:
			cur.Pop()
		default:
			node, err := parseStatement(cur, scope)
			if err != nil {
				return nil, err
			}
			body = append(body, node)
		}
	}
}

// parseStatement parses one maximal expression/statement starting at the
// current token, dispatching on its lead token (spec §4.5), then extends it
// through parseInfix until no further extension applies.
func parseStatement(cur *lexer.Cursor, scope *Scope) (ast.Node, error) {
	tok, ok := cur.Pop()
	if !ok {
		return nil, errUnexpectedEOF()
	}
	for tok.Kind == lexer.NewLine || tok.Kind == lexer.Indent || tok.Kind == lexer.Dedent {
		tok, ok = cur.Pop()
		if !ok {
			return nil, errUnexpectedEOF()
		}
	}

	node, err := parseStatementHead(cur, scope, tok)
	if err != nil {
		return nil, err
	}

	for {
		extended, matched, err := parseInfix(cur, scope, node)
		if err != nil {
			return nil, err
		}
		if !matched {
			return node, nil
		}
		node = extended
	}
}

func parseStatementHead(cur *lexer.Cursor, scope *Scope, tok lexer.Token) (ast.Node, error) {
	switch tok.Kind {
	case lexer.Func:
		return parseFunctionLiteral(cur, scope, tok)

	case lexer.Var:
		return parseVarDecl(cur, scope, tok)

	case lexer.Symbol:
		return parseSymbolStatement(cur, scope, tok)

	case lexer.LiteralInt:
		v, err := strconv.ParseInt(tok.Literal, 10, 32)
		if err != nil {
			return nil, errUnexpectedToken(tok)
		}
		n := ast.NewLiteralExpr(ast.NewIntLiteral(int32(v)), tok.Start, tok.End)
		n.SetEvalType(types.Int)
		return n, nil

	case lexer.LiteralFloat:
		v, err := strconv.ParseFloat(tok.Literal, 32)
		if err != nil {
			return nil, errUnexpectedToken(tok)
		}
		n := ast.NewLiteralExpr(ast.NewFloatLiteral(float32(v)), tok.Start, tok.End)
		n.SetEvalType(types.Float)
		return n, nil

	case lexer.LiteralBool:
		n := ast.NewLiteralExpr(ast.NewBoolLiteral(tok.Literal == "true"), tok.Start, tok.End)
		n.SetEvalType(types.Bool)
		return n, nil

	case lexer.LiteralString:
		n := ast.NewLiteralExpr(ast.NewStringLiteral(tok.Literal), tok.Start, tok.End)
		n.SetEvalType(types.String)
		return n, nil

	case lexer.TypeNone:
		n := ast.NewLiteralExpr(ast.NewNothingLiteral(), tok.Start, tok.End)
		n.SetEvalType(types.Nothing)
		return n, nil

	case lexer.RoundOpen:
		inner, err := parseStatement(cur, scope)
		if err != nil {
			return nil, err
		}
		if err := expect(cur, lexer.RoundClose); err != nil {
			return nil, err
		}
		return inner, nil

	case lexer.SquareOpen:
		elemType, items, err := parseVectorValues(cur, scope)
		if err != nil {
			return nil, err
		}
		n := ast.NewVectorLiteral(items, tok.Start, prevEnd(cur))
		n.SetEvalType(types.NewVector(elemType))
		return n, nil

	case lexer.Return, lexer.Break:
		return parseReturnStatement(cur, scope, tok)

	case lexer.If:
		return parseIfStatement(cur, scope, tok)

	case lexer.For:
		return parseForStatement(cur, scope, tok)

	case lexer.While:
		return parseWhileStatement(cur, scope, tok)

	default:
		return nil, errUnexpectedToken(tok)
	}
}

func parseFunctionLiteral(cur *lexer.Cursor, scope *Scope, tok lexer.Token) (ast.Node, error) {
	next, ok := cur.Pop()
	if !ok {
		return nil, errUnexpectedEOF()
	}

	var name string
	named := false
	switch next.Kind {
	case lexer.Symbol:
		name = next.Literal
		named = true
		if err := expect(cur, lexer.RoundOpen); err != nil {
			return nil, err
		}
	case lexer.RoundOpen:
		// anonymous
	default:
		return nil, errUnexpectedToken(next)
	}

	paramNames, paramTypes, err := parseParameterNames(cur, scope)
	if err != nil {
		return nil, err
	}

	retType, hasRet, err := parseTypeOptional(cur, scope)
	if err != nil {
		return nil, err
	}
	if !hasRet {
		retType = types.Nothing
	}

	if err := expect(cur, lexer.CurlyOpen); err != nil {
		return nil, err
	}

	body := scope.NewChildScope()
	for i, n := range paramNames {
		body.Declare(n, paramTypes[i])
	}
	stmts, err := parseBody(cur, body)
	if err != nil {
		return nil, err
	}
	if !body.EvalType.Compatible(retType) {
		return nil, errWrongType(tok, retType, body.EvalType)
	}

	sig := types.FunctionType{Params: paramTypes, Return: retType}
	fn := ast.NewFunction(paramNames, stmts)
	literal := ast.NewFunctionLiteral(fn, tok.Start, prevEnd(cur))
	literal.SetEvalType(types.NewFunction(sig))

	if !named {
		return literal, nil
	}

	scope.Declare(name, types.NewFunction(sig))
	decl := ast.NewVariableDecl(name, literal, tok.Start, prevEnd(cur))
	decl.SetEvalType(types.Nothing)
	return decl, nil
}

func parseVarDecl(cur *lexer.Cursor, scope *Scope, tok lexer.Token) (ast.Node, error) {
	nameTok, ok := cur.Pop()
	if !ok {
		return nil, errUnexpectedEOF()
	}
	if nameTok.Kind != lexer.Symbol {
		return nil, errUnexpectedToken(nameTok)
	}

	declType, hasType, err := parseTypeOptional(cur, scope)
	if err != nil {
		return nil, err
	}

	if err := expect(cur, lexer.Assign); err != nil {
		return nil, err
	}

	value, err := parseStatement(cur, scope)
	if err != nil {
		return nil, err
	}

	evalType := value.EvalType()
	if hasType {
		if !declType.Compatible(value.EvalType()) {
			return nil, errWrongType(tok, declType, value.EvalType())
		}
		evalType = declType
	}

	scope.Declare(nameTok.Literal, evalType)
	n := ast.NewVariableDecl(nameTok.Literal, value, tok.Start, prevEnd(cur))
	n.SetEvalType(evalType)
	return n, nil
}

func parseSymbolStatement(cur *lexer.Cursor, scope *Scope, tok lexer.Token) (ast.Node, error) {
	result := scope.Get(tok.Literal)

	switch result.Kind {
	case GetClass:
		if err := expect(cur, lexer.RoundOpen); err != nil {
			return nil, err
		}
		args, err := parseParameterValues(cur, scope)
		if err != nil {
			return nil, err
		}

		ctor, hasCtor := result.Class.Method(constructorMethodName)
		switch {
		case hasCtor:
			if len(args) != len(ctor.Params) {
				return nil, &Error{Kind: InvalidArgCount, Token: tok, ExpectedCount: len(ctor.Params)}
			}
			for i, a := range args {
				if !a.EvalType().Compatible(ctor.Params[i]) {
					return nil, errWrongType(tok, ctor.Params[i], a.EvalType())
				}
			}
		default:
			if len(args) != 0 {
				return nil, &Error{Kind: InvalidArgCount, Token: tok, ExpectedCount: 0}
			}
		}

		n := ast.NewConstructClass(args, result.Class, tok.Start, prevEnd(cur))
		n.SetEvalType(types.NewClass(result.Class))
		return n, nil

	case GetRef:
		n := ast.NewVariableRef(result.Owner, tok.Literal, tok.Start, tok.End)
		n.SetEvalType(result.Type)
		return n, nil

	default:
		return nil, errVarNotFound(tok, tok.Literal)
	}
}

// constructorMethodName is the reserved method name a class's constructor
// is declared under, checked by ConstructClass when present (spec §4.5's
// "the class's init method if present").
const constructorMethodName = "init"

func parseReturnStatement(cur *lexer.Cursor, scope *Scope, tok lexer.Token) (ast.Node, error) {
	kind := ast.ReturnKindReturn
	if tok.Kind == lexer.Break {
		kind = ast.ReturnKindBreak
	}

	var value ast.Node
	if peek, ok := cur.Peek(); ok && peek.Kind != lexer.NewLine && peek.Kind != lexer.CurlyClose && peek.Kind != lexer.Dedent && peek.Kind != lexer.EOF {
		v, err := parseStatement(cur, scope)
		if err != nil {
			return nil, err
		}
		value = v
	}

	valueType := types.Nothing
	if value != nil {
		valueType = value.EvalType()
	}
	scope.SetEvalType(valueType)

	n := ast.NewReturnStatement(value, kind, tok.Start, prevEnd(cur))
	n.SetEvalType(types.Nothing)
	return n, nil
}

func parseIfStatement(cur *lexer.Cursor, scope *Scope, tok lexer.Token) (ast.Node, error) {
	cond, err := parseStatement(cur, scope)
	if err != nil {
		return nil, err
	}
	if err := expect(cur, lexer.CurlyOpen); err != nil {
		return nil, err
	}
	body, err := parseBody(cur, scope.NewChildScope())
	if err != nil {
		return nil, err
	}
	n := ast.NewIfStatement(cond, body, tok.Start, prevEnd(cur))
	n.SetEvalType(types.Nothing)
	return n, nil
}

func parseForStatement(cur *lexer.Cursor, scope *Scope, tok lexer.Token) (ast.Node, error) {
	nameTok, ok := cur.Pop()
	if !ok {
		return nil, errUnexpectedEOF()
	}
	if nameTok.Kind != lexer.Symbol {
		return nil, errUnexpectedToken(nameTok)
	}

	if err := expect(cur, lexer.In); err != nil {
		return nil, err
	}

	from, err := parseStatement(cur, scope)
	if err != nil {
		return nil, err
	}
	if err := expect(cur, lexer.Range); err != nil {
		return nil, err
	}
	to, err := parseStatement(cur, scope)
	if err != nil {
		return nil, err
	}

	if err := expect(cur, lexer.CurlyOpen); err != nil {
		return nil, err
	}

	loopScope := scope.NewChildScope()
	loopScope.Declare(nameTok.Literal, types.Int)
	body, err := parseBody(cur, loopScope)
	if err != nil {
		return nil, err
	}

	n := ast.NewForStatement(from, to, nameTok.Literal, body, tok.Start, prevEnd(cur))
	n.SetEvalType(types.Nothing)
	return n, nil
}

func parseWhileStatement(cur *lexer.Cursor, scope *Scope, tok lexer.Token) (ast.Node, error) {
	cond, err := parseStatement(cur, scope)
	if err != nil {
		return nil, err
	}
	if err := expect(cur, lexer.CurlyOpen); err != nil {
		return nil, err
	}
	body, err := parseBody(cur, scope.NewChildScope())
	if err != nil {
		return nil, err
	}
	n := ast.NewWhileStatement(cond, body, tok.Start, prevEnd(cur))
	n.SetEvalType(types.Nothing)
	return n, nil
}

// parseParameterValues reads comma-separated expressions until a matching
// ')' (already expected to be reached by the caller, which must have
// consumed the opening '('), consuming that ')'. Used for both call
// arguments and class construction arguments.
func parseParameterValues(cur *lexer.Cursor, scope *Scope) ([]ast.Node, error) {
	var args []ast.Node
	nextIsArgument := true

	for {
		tok, ok := cur.Peek()
		if !ok {
			return nil, errUnexpectedEOF()
		}
		switch tok.Kind {
		case lexer.RoundClose:
			cur.Pop()
			return args, nil
		case lexer.Comma:
			if nextIsArgument {
				return nil, &Error{Kind: ParametersExpectedParam, Token: tok}
			}
			cur.Pop()
			nextIsArgument = true
		case lexer.NewLine, lexer.Indent, lexer.Dedent:
			cur.Pop()
		default:
			if !nextIsArgument {
				return nil, &Error{Kind: ParametersExpectedComma, Token: tok}
			}
			nextIsArgument = false
			node, err := parseStatement(cur, scope)
			if err != nil {
				return nil, err
			}
			args = append(args, node)
		}
	}
}

// parseVectorValues reads comma-separated expressions until a matching ']'
// (the caller has already consumed the opening '['), checking every element
// shares the first element's exact type (spec §4.5: "all elements must
// share a type").
func parseVectorValues(cur *lexer.Cursor, scope *Scope) (types.Type, []ast.Node, error) {
	var items []ast.Node
	elemType := types.Unknown
	nextIsArgument := true

	for {
		tok, ok := cur.Peek()
		if !ok {
			return types.Type{}, nil, errUnexpectedEOF()
		}
		switch tok.Kind {
		case lexer.SquareClose:
			cur.Pop()
			return elemType, items, nil
		case lexer.Comma:
			if nextIsArgument {
				return types.Type{}, nil, &Error{Kind: ParametersExpectedParam, Token: tok}
			}
			cur.Pop()
			nextIsArgument = true
		case lexer.NewLine, lexer.Indent, lexer.Dedent:
			cur.Pop()
		default:
			if !nextIsArgument {
				return types.Type{}, nil, &Error{Kind: ParametersExpectedComma, Token: tok}
			}
			nextIsArgument = false
			node, err := parseStatement(cur, scope)
			if err != nil {
				return types.Type{}, nil, err
			}
			if len(items) == 0 {
				elemType = node.EvalType()
			} else if !node.EvalType().Equals(elemType) {
				return types.Type{}, nil, errWrongType(tok, elemType, node.EvalType())
			}
			items = append(items, node)
		}
	}
}

func expect(cur *lexer.Cursor, kind lexer.Kind) error {
	tok, ok := cur.Pop()
	if !ok {
		return errUnexpectedEOF()
	}
	if tok.Kind != kind {
		return errUnexpectedToken(tok)
	}
	return nil
}
