package module

import (
	"fmt"
	"sync"
)

// LoadErrorKind is the closed set of ways loading a module can fail,
// independent of what goes wrong tokenizing or pre-parsing it (spec §4.4,
// grounded on `original_source/parser/src/modules/module_loader.rs`'s
// `UNIQUE_ID_ERROR`/`LOAD_MODULE_ERROR`).
type LoadErrorKind int

const (
	UniqueIDError LoadErrorKind = iota
	LoadModuleError
	ImportCycleError
)

func (k LoadErrorKind) String() string {
	switch k {
	case UniqueIDError:
		return "UniqueIDError"
	case LoadModuleError:
		return "LoadModuleError"
	case ImportCycleError:
		return "ImportCycleError"
	default:
		return fmt.Sprintf("LoadErrorKind(%d)", int(k))
	}
}

// LoadError is a Loader failure. ID names the textual identifier being
// loaded when the failure occurred.
type LoadError struct {
	Kind LoadErrorKind
	ID   string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.ID)
}

// PreparseFunc pre-parses a tokenized source into a ParsableModule. It is
// injected rather than called directly so this package does not import
// internal/preparser (which itself imports internal/module) — breaking
// what would otherwise be an import cycle between the two packages.
type PreparseFunc func(id string, uid UID, source string) (*ParsableModule, error)

// Loader recursively pre-parses a module and the full transitive closure
// of its imports, deduplicating by UID exactly as
// `original_source/parser/src/modules/module_loader.rs`'s `ModuleLoader`
// does: a UID already present in the map is never re-fetched or
// re-pre-parsed, which is also what makes import cycles harmless at this
// stage — the second time a cycle's back-edge is reached, its target is
// already loaded and recursion stops. The cycle itself is still rejected
// later, by TopologicalOrder.
//
// Loader is safe for concurrent use; a single mutex guards the module map
// since pre-parsing one module never blocks on another.
type Loader struct {
	importer  Importer
	preparse  PreparseFunc

	mu      sync.Mutex
	modules map[UID]*ParsableModule
}

// NewLoader builds a Loader that fetches sources through importer and
// pre-parses them with preparse.
func NewLoader(importer Importer, preparse PreparseFunc) *Loader {
	return &Loader{
		importer: importer,
		preparse: preparse,
		modules:  make(map[UID]*ParsableModule),
	}
}

// Load pre-parses the module named by id, and recursively every module it
// (transitively) imports, returning the id's own UID. Already-loaded UIDs
// are returned immediately without re-fetching their source.
func (l *Loader) Load(id string) (UID, error) {
	uid, ok := l.importer.GetUniqueIdentifier(id)
	if !ok {
		return 0, &LoadError{Kind: UniqueIDError, ID: id}
	}

	l.mu.Lock()
	if _, loaded := l.modules[uid]; loaded {
		l.mu.Unlock()
		return uid, nil
	}
	// Reserve the slot before recursing into imports, so that a cycle
	// back-edge sees this module as already-in-progress and stops instead
	// of looping forever.
	l.modules[uid] = nil
	l.mu.Unlock()

	source, ok := l.importer.LoadModule(id)
	if !ok {
		return 0, &LoadError{Kind: LoadModuleError, ID: id}
	}

	pm, err := l.preparse(id, uid, source)
	if err != nil {
		return 0, err
	}

	l.mu.Lock()
	l.modules[uid] = pm
	l.mu.Unlock()

	for _, importID := range pm.Imports {
		if _, err := l.Load(importID); err != nil {
			return 0, err
		}
	}

	return uid, nil
}

// Modules returns every pre-parsed module loaded so far, keyed by UID.
func (l *Loader) Modules() map[UID]*ParsableModule {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[UID]*ParsableModule, len(l.modules))
	for uid, pm := range l.modules {
		if pm != nil {
			out[uid] = pm
		}
	}
	return out
}

// DependencyGraph returns each loaded module's UID mapped to the UIDs of
// the modules it imports, resolved through the Loader's own UID table —
// used by TopologicalOrder to drive body-pass compilation in
// imports-before-dependents order (spec §4.5's compile-order resolution).
func (l *Loader) DependencyGraph() (map[UID][]UID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	graph := make(map[UID][]UID, len(l.modules))
	for uid, pm := range l.modules {
		if pm == nil {
			continue
		}
		deps := make([]UID, 0, len(pm.Imports))
		for _, importID := range pm.Imports {
			depUID, ok := l.importer.GetUniqueIdentifier(importID)
			if !ok {
				return nil, &LoadError{Kind: UniqueIDError, ID: importID}
			}
			deps = append(deps, depUID)
		}
		graph[uid] = deps
	}
	return graph, nil
}

// TopologicalOrder returns every loaded module's UID ordered so that every
// module appears after all modules it imports (Kahn's algorithm), which is
// the order the compiler must run the body pass in: an import's Module
// must be fully compiled before its dependent's body pass resolves names
// against it (spec §4.5). Every import cycle among the loaded modules is
// reported as ImportCycleError, including one whose modules only use each
// other's signatures: DependencyGraph keeps every import edge, so no module
// on a cycle can be ordered.
func (l *Loader) TopologicalOrder() ([]UID, error) {
	graph, err := l.DependencyGraph()
	if err != nil {
		return nil, err
	}

	// remaining[uid] counts how many of uid's own imports have not yet been
	// placed in order; Kahn's algorithm releases uid once that hits zero.
	remaining := make(map[UID]int, len(graph))
	for uid, deps := range graph {
		remaining[uid] = len(deps)
	}

	var ready []UID
	for uid, n := range remaining {
		if n == 0 {
			ready = append(ready, uid)
		}
	}

	dependents := make(map[UID][]UID)
	for uid, deps := range graph {
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], uid)
		}
	}

	var order []UID
	for len(ready) > 0 {
		uid := ready[0]
		ready = ready[1:]
		order = append(order, uid)
		for _, dependent := range dependents[uid] {
			remaining[dependent]--
			if remaining[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	if len(order) != len(graph) {
		return nil, &LoadError{Kind: ImportCycleError, ID: ""}
	}
	return order, nil
}
