package preparser

import (
	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/module"
	"github.com/rainlang/rainc/internal/types"
)

// Preparse discovers every top-level declaration in cur's token stream and
// returns a ParsableModule: imports resolved to plain identifier strings,
// variable/function/class signatures fully parsed, every body left as an
// unvisited lexer.Snapshot (spec §4.3). cur is consumed; callers that need
// the original positions back should pass a lexer.Cursor.Clone().
func Preparse(cur *lexer.Cursor, id string, uid module.UID) (*module.ParsableModule, error) {
	return preparse(cur, id, uid, modeValue)
}

// PreparseDeclaration discovers the same top-level grammar as Preparse but
// in the dedicated declaration-module mode spec §4.4/§6.3 describes: a
// `var` or `func` body is forbidden outright (raising UnsupportedFeature)
// rather than merely skipped, since a declaration module only describes
// host-provided symbols and was never meant to carry an initializer or
// implementation for this compiler to skip over.
func PreparseDeclaration(cur *lexer.Cursor, id string, uid module.UID) (*module.ParsableModule, error) {
	return preparse(cur, id, uid, modeDeclaration)
}

// mode distinguishes an ordinary module's pre-parse (bodies are skipped
// via a snapshot, to be parsed later) from a declaration module's
// (bodies are rejected outright).
type mode int

const (
	modeValue mode = iota
	modeDeclaration
)

func preparse(cur *lexer.Cursor, id string, uid module.UID, m mode) (*module.ParsableModule, error) {
	pm := module.NewParsableModule(id, uid, cur)

	for cur.HasNext() {
		action, err := parseDeclaration(cur, m)
		if err != nil {
			return nil, err
		}
		switch action.kind {
		case actionImport:
			pm.Imports = append(pm.Imports, action.importPath)
		case actionVariable:
			pm.Variables = append(pm.Variables, module.NamedParsableVariable{Name: action.name, Var: action.variable})
		case actionFunction:
			pm.Functions = append(pm.Functions, module.NamedParsableFunctionDecl{Name: action.name, Func: action.function})
		case actionClass:
			pm.Classes = append(pm.Classes, module.NamedParsableClass{Name: action.name, Class: action.class})
		case actionNothing:
		}
	}

	return pm, nil
}

type declActionKind int

const (
	actionNothing declActionKind = iota
	actionImport
	actionVariable
	actionFunction
	actionClass
)

type declAction struct {
	kind       declActionKind
	importPath string
	name       string
	variable   module.ParsableVariable
	function   module.ParsableFunction
	class      module.ParsableClass
}

func parseDeclaration(cur *lexer.Cursor, m mode) (declAction, error) {
	tok, ok := cur.Pop()
	if !ok {
		return declAction{}, unexpectedEOF()
	}

	switch tok.Kind {
	case lexer.Import:
		path, ok := cur.Pop()
		if !ok {
			return declAction{}, unexpectedEOF()
		}
		if path.Kind != lexer.LiteralString {
			return declAction{}, unexpectedToken(path)
		}
		skipNewline(cur)
		return declAction{kind: actionImport, importPath: path.Literal}, nil

	case lexer.Var:
		name, v, err := parseVariable(cur, m)
		if err != nil {
			return declAction{}, err
		}
		return declAction{kind: actionVariable, name: name, variable: v}, nil

	case lexer.Func:
		name, f, err := parseFunction(cur, m)
		if err != nil {
			return declAction{}, err
		}
		return declAction{kind: actionFunction, name: name, function: f}, nil

	case lexer.Class:
		kind := types.NormalClass
		if peek, ok := cur.Peek(); ok && peek.Kind == lexer.Data {
			cur.Pop()
			kind = types.DataClass
		}

		nameTok, ok := cur.Pop()
		if !ok {
			return declAction{}, unexpectedEOF()
		}
		if nameTok.Kind != lexer.Symbol {
			return declAction{}, unexpectedToken(nameTok)
		}

		if err := expect(cur, lexer.CurlyOpen); err != nil {
			return declAction{}, err
		}

		class, err := parseClassDeclaration(cur, kind, m)
		if err != nil {
			return declAction{}, err
		}
		return declAction{kind: actionClass, name: nameTok.Literal, class: class}, nil

	case lexer.NewLine, lexer.Indent, lexer.Dedent, lexer.EOF:
		// Braces are this language's live nesting surface; Indent/Dedent
		// tokens are never required to balance against them here. EOF is
		// the terminal token Tokenize always appends.
		return declAction{kind: actionNothing}, nil

	default:
		return declAction{}, unexpectedToken(tok)
	}
}

func parseClassDeclaration(cur *lexer.Cursor, kind types.ClassKind, m mode) (module.ParsableClass, error) {
	class := module.ParsableClass{Kind: kind}

	for {
		tok, ok := cur.Pop()
		if !ok {
			break
		}

		switch tok.Kind {
		case lexer.Symbol:
			fieldType, err := preparseTypeError(cur)
			if err != nil {
				return module.ParsableClass{}, err
			}
			class.Fields = append(class.Fields, module.ParsableField{Name: tok.Literal, Type: fieldType})

		case lexer.Func:
			if kind == types.DataClass {
				return module.ParsableClass{}, &Error{
					Kind:   UnsupportedFeature,
					Token:  tok,
					Detail: "methods in data classes are not supported",
				}
			}
			name, f, err := parseFunction(cur, m)
			if err != nil {
				return module.ParsableClass{}, err
			}
			class.Methods = append(class.Methods, module.NamedParsableFunction{Name: name, Func: f})

		case lexer.NewLine, lexer.Indent, lexer.Dedent:
			// between-member blank lines / indentation noise; braces, not
			// indentation, delimit a class body here.

		case lexer.CurlyClose:
			return class, nil

		default:
			return module.ParsableClass{}, unexpectedToken(tok)
		}
	}

	return class, nil
}

func parseVariable(cur *lexer.Cursor, m mode) (string, module.ParsableVariable, error) {
	nameTok, ok := cur.Pop()
	if !ok {
		return "", module.ParsableVariable{}, unexpectedEOF()
	}
	if nameTok.Kind != lexer.Symbol {
		return "", module.ParsableVariable{}, unexpectedToken(nameTok)
	}

	typ, err := preparseTypeError(cur)
	if err != nil {
		return "", module.ParsableVariable{}, err
	}

	v := module.ParsableVariable{Type: typ, Body: module.NoBody}

	peek, ok := cur.Peek()
	if !ok {
		return "", module.ParsableVariable{}, unexpectedEOF()
	}
	if peek.Kind == lexer.Assign {
		if m == modeDeclaration {
			return "", module.ParsableVariable{}, &Error{
				Kind:   UnsupportedFeature,
				Token:  peek,
				Detail: "a declaration module's var may not have an initializer",
			}
		}
		cur.Pop()
		v.Body = cur.Snapshot()
		popUntilNewline(cur)
	}

	return nameTok.Literal, v, nil
}

func parseFunction(cur *lexer.Cursor, m mode) (string, module.ParsableFunction, error) {
	nameTok, ok := cur.Pop()
	if !ok {
		return "", module.ParsableFunction{}, unexpectedEOF()
	}
	if nameTok.Kind != lexer.Symbol {
		return "", module.ParsableFunction{}, unexpectedToken(nameTok)
	}

	if err := expect(cur, lexer.RoundOpen); err != nil {
		return "", module.ParsableFunction{}, err
	}

	names, paramTypes, err := preparseParameterNames(cur)
	if err != nil {
		return "", module.ParsableFunction{}, err
	}

	retType, ok := preparseTypeOption(cur)
	if !ok {
		retType = module.ParsableType{Kind: module.PNothing}
	}
	sig := module.ParsableFunctionType{Params: paramTypes, Return: retType}

	f := module.ParsableFunction{Signature: sig, Params: names, Body: module.NoBody}

	peek, ok := cur.Peek()
	if ok && peek.Kind == lexer.CurlyOpen {
		if m == modeDeclaration {
			return "", module.ParsableFunction{}, &Error{
				Kind:   UnsupportedFeature,
				Token:  peek,
				Detail: "a declaration module's func may not have a body",
			}
		}
		cur.Pop()
		f.Body = cur.Snapshot()
		if err := popBody(cur); err != nil {
			return "", module.ParsableFunction{}, err
		}
	}

	return nameTok.Literal, f, nil
}

// preparseParameterNames reads "(arg0 type0, arg1 type1)" having already
// consumed the opening '(' — it consumes up to and including the closing
// ')'.
func preparseParameterNames(cur *lexer.Cursor) ([]string, []module.ParsableType, error) {
	var names []string
	var paramTypes []module.ParsableType
	nextIsArgument := true

	for {
		tok, ok := cur.Pop()
		if !ok {
			return nil, nil, unexpectedEOF()
		}

		switch tok.Kind {
		case lexer.RoundClose:
			return names, paramTypes, nil

		case lexer.Symbol:
			if !nextIsArgument {
				return nil, nil, &Error{Kind: ParametersExpectedComma, Token: tok}
			}
			nextIsArgument = false

			t, err := preparseTypeError(cur)
			if err != nil {
				return nil, nil, err
			}
			names = append(names, tok.Literal)
			paramTypes = append(paramTypes, t)

		case lexer.Comma:
			if nextIsArgument {
				return nil, nil, &Error{Kind: ParametersExpectedParam, Token: tok}
			}
			nextIsArgument = true

		default:
			return nil, nil, unexpectedToken(tok)
		}
	}
}

// preparseTypeError reads a single mandatory type token (a primitive
// keyword or a bare symbol naming a not-yet-resolved class).
func preparseTypeError(cur *lexer.Cursor) (module.ParsableType, error) {
	tok, ok := cur.Pop()
	if !ok {
		return module.ParsableType{}, unexpectedEOF()
	}

	if tok.Kind.IsPrimitiveType() {
		pt, _ := module.FromPrimitive(tok.Kind, tok)
		return pt, nil
	}
	if tok.Kind == lexer.Symbol {
		return module.Custom(tok.Literal, tok), nil
	}
	return module.ParsableType{}, unexpectedToken(tok)
}

// preparseTypeOption reads an optional type token without consuming
// anything if the next token isn't one, used for a function's optional
// return type.
func preparseTypeOption(cur *lexer.Cursor) (module.ParsableType, bool) {
	tok, ok := cur.Peek()
	if !ok {
		return module.ParsableType{}, false
	}

	if tok.Kind.IsPrimitiveType() {
		cur.Pop()
		pt, _ := module.FromPrimitive(tok.Kind, tok)
		return pt, true
	}
	if tok.Kind == lexer.Symbol {
		cur.Pop()
		return module.Custom(tok.Literal, tok), true
	}
	return module.ParsableType{}, false
}

// popBody skips tokens until the matching close brace for a '{' already
// consumed by the caller, counting nested curly depth.
func popBody(cur *lexer.Cursor) error {
	depth := 1
	for {
		tok, ok := cur.Pop()
		if !ok {
			return nil
		}
		switch tok.Kind {
		case lexer.CurlyOpen:
			depth++
		case lexer.CurlyClose:
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
}

func popUntilNewline(cur *lexer.Cursor) {
	for {
		tok, ok := cur.Pop()
		if !ok || tok.Kind == lexer.NewLine {
			return
		}
	}
}

func skipNewline(cur *lexer.Cursor) {
	if peek, ok := cur.Peek(); ok && peek.Kind == lexer.NewLine {
		cur.Pop()
	}
}

func expect(cur *lexer.Cursor, kind lexer.Kind) error {
	tok, ok := cur.Pop()
	if !ok {
		return unexpectedEOF()
	}
	if tok.Kind != kind {
		return unexpectedToken(tok)
	}
	return nil
}
