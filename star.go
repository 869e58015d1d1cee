// MetaData document type and programmatic construction.
package star

// MetaData is one parsed star file: the mandatory particle table plus,
// for modern-layout files, the optics group table. Whether Optics is
// present is decided once at load time — it is a structural property
// of the source file and never changes over the value's lifetime.
//
// Path records where the data was loaded from. It is advisory only and
// empty for programmatically built or projected metadata.
type MetaData struct {
	Particles *Table
	Optics    *Table // nil for legacy (RELION 2.x/3.0) layout
	Path      string
}

// New builds metadata from already-parsed tables, e.g. a derived
// subset produced by a selection tool. optics may be nil.
func New(particles, optics *Table, path string) *MetaData {
	return &MetaData{Particles: particles, Optics: optics, Path: path}
}

// HasOptics reports whether the source used the modern two-block
// layout.
func (m *MetaData) HasOptics() bool { return m.Optics != nil }
