// Package compiler is the single entry point spec §2 implies but never
// names: it ties the Module Loader's import-closure pre-parse together
// with the body-pass parser/type-checker, running the body pass in
// imports-before-dependents order, and returns either a set of fully
// compiled Modules or the single LangError that stopped compilation.
package compiler

import (
	"github.com/rainlang/rainc/internal/errors"
	"github.com/rainlang/rainc/internal/lexer"
	"github.com/rainlang/rainc/internal/module"
	"github.com/rainlang/rainc/internal/parser"
	"github.com/rainlang/rainc/internal/preparser"
)

// DeclarationImporter is an Importer that can also tell the compiler a
// given textual identifier names a declaration module (spec §4.4/§6.3):
// one describing only host-provided signatures, whose `var`/`func` forms
// may never carry a body. An Importer that doesn't implement this is
// treated as never serving declaration modules.
type DeclarationImporter interface {
	module.Importer
	IsDeclaration(id string) bool
}

// Result is the terminal output of one compilation run: every module
// reachable from Root, keyed by UID, each one a fully typed Module ready
// for a backend (spec §4.6/§6.5). Order is the same imports-before-
// dependents topological order the body pass itself was driven by (spec
// §5(c)); a backend that must initialize modules in dependency order
// reads it straight off the Result instead of recomputing it.
type Result struct {
	Root    module.UID
	Modules map[module.UID]*module.Module
	Order   []module.UID
}

// Compile runs the full front end over rootID and the transitive closure
// of its imports, resolved through importer (spec §2's five-stage
// pipeline minus the external backend stage): tokenize, pre-parse, load,
// then body-pass-parse every module in an order where a module's imports
// are always fully compiled before its own body pass starts (spec §5's
// ordering guarantee (a)).
func Compile(rootID string, importer module.Importer) (*Result, error) {
	loader := module.NewLoader(importer, preparseFor(importer))

	rootUID, err := loader.Load(rootID)
	if err != nil {
		return nil, errors.Wrap(err)
	}

	order, err := loader.TopologicalOrder()
	if err != nil {
		return nil, errors.Wrap(err)
	}

	pending := loader.Modules()
	compiled := make(map[module.UID]*module.Module, len(pending))

	for _, uid := range order {
		pm, ok := pending[uid]
		if !ok {
			continue
		}

		imports := make(map[module.UID]*module.Module, len(pm.Imports))
		for _, importID := range pm.Imports {
			importUID, ok := importer.GetUniqueIdentifier(importID)
			if !ok {
				return nil, errors.Wrap(&module.LoadError{Kind: module.UniqueIDError, ID: importID})
			}
			imp, ok := compiled[importUID]
			if !ok {
				// A module's import must already be fully compiled by the
				// time we reach it here, courtesy of TopologicalOrder; a
				// missing one is reported as an import cycle.
				return nil, errors.Wrap(&module.LoadError{Kind: module.ImportCycleError, ID: importID})
			}
			imports[importUID] = imp
		}

		mod, err := parser.ParseModule(pm, imports)
		if err != nil {
			return nil, errors.Wrap(err)
		}
		compiled[uid] = mod
	}

	return &Result{Root: rootUID, Modules: compiled, Order: order}, nil
}

// preparseFor builds the module.PreparseFunc the Loader drives: tokenize,
// then pre-parse in declaration mode when importer identifies id as a
// declaration module, ordinary mode otherwise.
func preparseFor(importer module.Importer) module.PreparseFunc {
	declImporter, _ := importer.(DeclarationImporter)

	return func(id string, uid module.UID, source string) (*module.ParsableModule, error) {
		cur, err := lexer.Tokenize(source)
		if err != nil {
			return nil, err
		}
		if declImporter != nil && declImporter.IsDeclaration(id) {
			return preparser.PreparseDeclaration(cur, id, uid)
		}
		return preparser.Preparse(cur, id, uid)
	}
}
