package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeImporter resolves textual identifiers against an in-memory source
// map, used to exercise Loader without any real file I/O.
type fakeImporter struct {
	sources map[string]string
}

func (f *fakeImporter) GetUniqueIdentifier(id string) (UID, bool) {
	if _, ok := f.sources[id]; !ok {
		return 0, false
	}
	return ComputeUID(id), true
}

func (f *fakeImporter) LoadModule(id string) (string, bool) {
	src, ok := f.sources[id]
	return src, ok
}

func fakePreparse(imports map[string][]string) PreparseFunc {
	return func(id string, uid UID, source string) (*ParsableModule, error) {
		pm := NewParsableModule(id, uid, nil)
		pm.Imports = imports[id]
		return pm, nil
	}
}

func TestLoaderLoadsTransitiveClosure(t *testing.T) {
	importer := &fakeImporter{sources: map[string]string{
		"main": "",
		"util": "",
		"leaf": "",
	}}
	imports := map[string][]string{
		"main": {"util"},
		"util": {"leaf"},
		"leaf": {},
	}
	loader := NewLoader(importer, fakePreparse(imports))

	uid, err := loader.Load("main")
	require.NoError(t, err)
	assert.Equal(t, ComputeUID("main"), uid)

	mods := loader.Modules()
	assert.Len(t, mods, 3)
	assert.Contains(t, mods, ComputeUID("leaf"))
}

func TestLoaderDedupsByUID(t *testing.T) {
	calls := 0
	importer := &fakeImporter{sources: map[string]string{
		"main": "", "shared": "",
	}}
	imports := map[string][]string{
		"main":   {"shared", "shared"},
		"shared": {},
	}
	preparse := func(id string, uid UID, source string) (*ParsableModule, error) {
		calls++
		pm := NewParsableModule(id, uid, nil)
		pm.Imports = imports[id]
		return pm, nil
	}
	loader := NewLoader(importer, preparse)

	_, err := loader.Load("main")
	require.NoError(t, err)
	assert.Equal(t, 2, calls) // "shared" pre-parsed once despite two import edges
}

func TestLoaderToleratesImportCycleAtPreparseLevel(t *testing.T) {
	importer := &fakeImporter{sources: map[string]string{"a": "", "b": ""}}
	imports := map[string][]string{
		"a": {"b"},
		"b": {"a"},
	}
	loader := NewLoader(importer, fakePreparse(imports))

	_, err := loader.Load("a")
	require.NoError(t, err)
	assert.Len(t, loader.Modules(), 2)
}

func TestLoaderUnknownIdentifierFails(t *testing.T) {
	importer := &fakeImporter{sources: map[string]string{}}
	loader := NewLoader(importer, fakePreparse(nil))

	_, err := loader.Load("missing")
	require.Error(t, err)
	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, UniqueIDError, loadErr.Kind)
}

func TestTopologicalOrderPutsImportsBeforeDependents(t *testing.T) {
	importer := &fakeImporter{sources: map[string]string{
		"main": "", "util": "", "leaf": "",
	}}
	imports := map[string][]string{
		"main": {"util"},
		"util": {"leaf"},
		"leaf": {},
	}
	loader := NewLoader(importer, fakePreparse(imports))
	_, err := loader.Load("main")
	require.NoError(t, err)

	order, err := loader.TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, 3)

	pos := make(map[UID]int, len(order))
	for i, uid := range order {
		pos[uid] = i
	}
	assert.Less(t, pos[ComputeUID("leaf")], pos[ComputeUID("util")])
	assert.Less(t, pos[ComputeUID("util")], pos[ComputeUID("main")])
}

func TestTopologicalOrderDetectsGenuineCycle(t *testing.T) {
	graph := &Loader{
		importer: &fakeImporter{sources: map[string]string{"a": "", "b": ""}},
		modules: map[UID]*ParsableModule{
			ComputeUID("a"): {ID: "a", UID: ComputeUID("a"), Imports: []string{"b"}},
			ComputeUID("b"): {ID: "b", UID: ComputeUID("b"), Imports: []string{"a"}},
		},
	}

	_, err := graph.TopologicalOrder()
	require.Error(t, err)
	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ImportCycleError, loadErr.Kind)
}
