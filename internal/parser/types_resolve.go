package parser

import (
	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/module"
	"github.com/rainlang/rainc/internal/types"
)

// parseTypeRequired reads one mandatory type token — a primitive keyword or
// a symbol naming a class — resolving custom names immediately against
// scope (spec §4.5's "ParsableType resolution": own module's classes then
// its imports; failure is VarNotFound). Used for inline signatures parsed
// mid-body (a `func` literal's parameters/return type), as opposed to
// module-level signatures, which are resolved once up front from the
// ParsableModule by the module driver.
func parseTypeRequired(cur *lexer.Cursor, scope *Scope) (types.Type, error) {
	tok, ok := cur.Pop()
	if !ok {
		return types.Type{}, errUnexpectedEOF()
	}
	if tok.Kind.IsPrimitiveType() {
		pt, _ := module.FromPrimitive(tok.Kind, tok)
		t, _ := pt.Resolve(nil)
		return t, nil
	}
	if tok.Kind == lexer.Symbol {
		class, ok := scope.ResolveClass(tok.Literal)
		if !ok {
			return types.Type{}, errVarNotFound(tok, tok.Literal)
		}
		return types.NewClass(class), nil
	}
	return types.Type{}, errUnexpectedToken(tok)
}

// parseTypeOptional reads an optional type token without consuming anything
// if the next token isn't one (used for a function literal's optional
// return type).
func parseTypeOptional(cur *lexer.Cursor, scope *Scope) (types.Type, bool, error) {
	tok, ok := cur.Peek()
	if !ok {
		return types.Type{}, false, nil
	}
	if tok.Kind.IsPrimitiveType() {
		cur.Pop()
		pt, _ := module.FromPrimitive(tok.Kind, tok)
		t, _ := pt.Resolve(nil)
		return t, true, nil
	}
	if tok.Kind == lexer.Symbol {
		cur.Pop()
		class, ok := scope.ResolveClass(tok.Literal)
		if !ok {
			return types.Type{}, false, errVarNotFound(tok, tok.Literal)
		}
		return types.NewClass(class), true, nil
	}
	return types.Type{}, false, nil
}

// parseParameterNames reads "(name type, name type, ...)" having already
// consumed the opening '(', resolving every parameter type immediately.
func parseParameterNames(cur *lexer.Cursor, scope *Scope) ([]string, []types.Type, error) {
	var names []string
	var paramTypes []types.Type
	nextIsArgument := true

	for {
		tok, ok := cur.Pop()
		if !ok {
			return nil, nil, errUnexpectedEOF()
		}

		switch tok.Kind {
		case lexer.RoundClose:
			return names, paramTypes, nil

		case lexer.Symbol:
			if !nextIsArgument {
				return nil, nil, &Error{Kind: ParametersExpectedComma, Token: tok}
			}
			nextIsArgument = false

			t, err := parseTypeRequired(cur, scope)
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
			return nil, nil, errUnexpectedToken(tok)
		}
	}
}
