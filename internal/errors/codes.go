package errors

import (
	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/module"
	parsepkg "github.com/rainlang/rainc/internal/parser"
	"github.com/rainlang/rainc/internal/preparser"
)

// Error codes are grouped per phase, matching the teacher's
// internal/errors/codes.go PAR###/LDR###/RT### table shape but renumbered
// for this module's own phase set (spec §7): LEX### (tokenizer),
// PRE### (pre-parser), PAR### (body-pass parser/type checker),
// LDR### (module loader), BLD### (backend-surface errors), RUN### (an
// external backend's runtime errors, carried here only as a closed set a
// host can tag its own errors with — this module never raises one itself).
const (
	LEX001 = "LEX001" // FloatParse
	LEX002 = "LEX002" // IntParse
	LEX003 = "LEX003" // InvalidOperatorToken
	LEX004 = "LEX004" // InvalidStringLiteral
	LEX005 = "LEX005" // InvalidIndent

	PRE001 = "PRE001" // UnexpectedToken
	PRE002 = "PRE002" // UnexpectedEndOfFile
	PRE003 = "PRE003" // ParametersExpectedComma
	PRE004 = "PRE004" // ParametersExpectedParam
	PRE005 = "PRE005" // UnsupportedFeature

	PAR001 = "PAR001" // UnexpectedError
	PAR002 = "PAR002" // Unsupported
	PAR003 = "PAR003" // UnexpectedToken
	PAR004 = "PAR004" // UnexpectedEndOfFile
	PAR005 = "PAR005" // WrongType
	PAR006 = "PAR006" // ParametersExpectedComma
	PAR007 = "PAR007" // ParametersExpectedParam
	PAR008 = "PAR008" // VarNotFound
	PAR009 = "PAR009" // InvalidFieldAccess
	PAR010 = "PAR010" // FieldDoesntExist
	PAR011 = "PAR011" // NotCallable
	PAR012 = "PAR012" // NotIndexable
	PAR013 = "PAR013" // InvalidArgCount

	LDR001 = "LDR001" // UniqueIDError
	LDR002 = "LDR002" // LoadModuleError
	LDR003 = "LDR003" // ImportCycleError

	BLD001 = "BLD001" // UnexpectedError (unclassified)
	BLD002 = "BLD002" // Unsupported(feature)
	BLD003 = "BLD003" // FuncNotFound(name)
	BLD004 = "BLD004" // ModuleNotFound(uid)
	BLD005 = "BLD005" // InvalidStackType
	BLD006 = "BLD006" // InvalidStackSize(exp,found)

	RUN001 = "RUN001" // CantConvertValue
	RUN002 = "RUN002" // VarNotFound
	RUN003 = "RUN003" // ArityMismatch
	RUN004 = "RUN004" // TypeMismatch
)

// CodeInfo describes one stable error code, mirroring the teacher's
// ErrorInfo{Code,Phase,Category,Description} registry shape.
type CodeInfo struct {
	Code        string
	Phase       string
	Description string
}

// Registry maps every code this module can produce to its description.
var Registry = map[string]CodeInfo{
	LEX001: {LEX001, "tokenizer", "invalid float literal"},
	LEX002: {LEX002, "tokenizer", "invalid int literal"},
	LEX003: {LEX003, "tokenizer", "invalid operator token"},
	LEX004: {LEX004, "tokenizer", "invalid string literal"},
	LEX005: {LEX005, "tokenizer", "invalid indentation"},

	PRE001: {PRE001, "preparser", "unexpected token"},
	PRE002: {PRE002, "preparser", "unexpected end of file"},
	PRE003: {PRE003, "preparser", "expected comma between parameters"},
	PRE004: {PRE004, "preparser", "expected a parameter"},
	PRE005: {PRE005, "preparser", "unsupported declaration feature"},

	PAR001: {PAR001, "parser", "unexpected error"},
	PAR002: {PAR002, "parser", "unsupported expression"},
	PAR003: {PAR003, "parser", "unexpected token"},
	PAR004: {PAR004, "parser", "unexpected end of file"},
	PAR005: {PAR005, "parser", "type mismatch"},
	PAR006: {PAR006, "parser", "expected comma between parameters"},
	PAR007: {PAR007, "parser", "expected a parameter"},
	PAR008: {PAR008, "parser", "name not found"},
	PAR009: {PAR009, "parser", "invalid field access"},
	PAR010: {PAR010, "parser", "field does not exist"},
	PAR011: {PAR011, "parser", "value is not callable"},
	PAR012: {PAR012, "parser", "value is not indexable"},
	PAR013: {PAR013, "parser", "wrong number of arguments"},

	LDR001: {LDR001, "loader", "could not resolve a unique module identifier"},
	LDR002: {LDR002, "loader", "could not load module source"},
	LDR003: {LDR003, "loader", "import cycle at value level"},

	BLD001: {BLD001, "build", "unexpected error"},
	BLD002: {BLD002, "build", "unsupported feature"},
	BLD003: {BLD003, "build", "function not found"},
	BLD004: {BLD004, "build", "module not found"},
	BLD005: {BLD005, "build", "invalid stack type"},
	BLD006: {BLD006, "build", "invalid stack size"},

	RUN001: {RUN001, "runtime", "cannot convert value"},
	RUN002: {RUN002, "runtime", "variable not found"},
	RUN003: {RUN003, "runtime", "arity mismatch"},
	RUN004: {RUN004, "runtime", "type mismatch"},
}

func lexerCode(k lexer.ErrorKind) string {
	switch k {
	case lexer.FloatParse:
		return LEX001
	case lexer.IntParse:
		return LEX002
	case lexer.InvalidOperatorToken:
		return LEX003
	case lexer.InvalidStringLiteral:
		return LEX004
	case lexer.InvalidIndent:
		return LEX005
	default:
		return LEX003
	}
}

func preparserCode(k preparser.ErrorKind) string {
	switch k {
	case preparser.UnexpectedToken:
		return PRE001
	case preparser.UnexpectedEndOfFile:
		return PRE002
	case preparser.ParametersExpectedComma:
		return PRE003
	case preparser.ParametersExpectedParam:
		return PRE004
	case preparser.UnsupportedFeature:
		return PRE005
	default:
		return PRE001
	}
}

func parserCode(k parsepkg.ErrorKind) string {
	switch k {
	case parsepkg.UnexpectedError:
		return PAR001
	case parsepkg.Unsupported:
		return PAR002
	case parsepkg.UnexpectedToken:
		return PAR003
	case parsepkg.UnexpectedEndOfFile:
		return PAR004
	case parsepkg.WrongType:
		return PAR005
	case parsepkg.ParametersExpectedComma:
		return PAR006
	case parsepkg.ParametersExpectedParam:
		return PAR007
	case parsepkg.VarNotFound:
		return PAR008
	case parsepkg.InvalidFieldAccess:
		return PAR009
	case parsepkg.FieldDoesntExist:
		return PAR010
	case parsepkg.NotCallable:
		return PAR011
	case parsepkg.NotIndexable:
		return PAR012
	case parsepkg.InvalidArgCount:
		return PAR013
	default:
		return PAR001
	}
}

func loadCode(k module.LoadErrorKind) string {
	switch k {
	case module.UniqueIDError:
		return LDR001
	case module.LoadModuleError:
		return LDR002
	case module.ImportCycleError:
		return LDR003
	default:
		return LDR001
	}
}

// IsParserError reports whether code names a body-pass parser error.
func IsParserError(code string) bool {
	info, ok := Registry[code]
	return ok && info.Phase == "parser"
}

// IsLoaderError reports whether code names a module loader error.
func IsLoaderError(code string) bool {
	info, ok := Registry[code]
	return ok && info.Phase == "loader"
}
