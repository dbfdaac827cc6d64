package module

// Importer is the injected capability the Loader drives to turn a textual
// module identifier into a UID and source text (spec §4.4/§6.2). File I/O
// and path resolution are deliberately NOT implemented in this module —
// spec §1 places them outside the core — so Importer is an interface
// rather than the teacher's owned file-reading Loader, grounded on
// `original_source/parser/src/modules/module_importer.rs`'s `ModuleImporter`
// trait (`get_unique_identifier`/`load_module`).
type Importer interface {
	// GetUniqueIdentifier maps a textual identifier (e.g. a relative
	// import path) to a stable UID, or reports ok=false if the identifier
	// cannot be resolved.
	GetUniqueIdentifier(id string) (UID, bool)

	// LoadModule returns the source text for a textual identifier, or
	// ok=false if it cannot be found.
	LoadModule(id string) (string, bool)
}
