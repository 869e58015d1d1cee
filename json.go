// JSON interchange for tables and metadata.
//
// Downstream selection tools consume metadata as JSON rather than
// re-parsing star files. Marshalling is lossless: column order and row
// order are preserved and values stay strings. Unmarshalling re-checks
// the arity invariant, so a Table obtained from JSON is as trustworthy
// as one decoded from a star file.
package star

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// jsonTable is the wire shape of a Table.
type jsonTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// MarshalJSON encodes the table as {"columns":[...],"rows":[[...]]}.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonTable{Columns: t.Columns, Rows: t.Rows})
}

// UnmarshalJSON decodes the wire shape and enforces the arity
// invariant.
func (t *Table) UnmarshalJSON(data []byte) error {
	var jt jsonTable
	if err := json.Unmarshal(data, &jt); err != nil {
		return err
	}
	nt, err := NewTable(jt.Columns, jt.Rows)
	if err != nil {
		return err
	}
	*t = *nt
	return nil
}

// jsonMetaData is the wire shape of MetaData. The optics key is absent
// for legacy-layout documents, mirroring layout fidelity on disk. The
// advisory source path is deliberately not serialized.
type jsonMetaData struct {
	Optics    *Table `json:"optics,omitempty"`
	Particles *Table `json:"particles"`
}

// MarshalJSON encodes the document's table pair.
func (m *MetaData) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMetaData{Optics: m.Optics, Particles: m.Particles})
}

// UnmarshalJSON decodes a document; the particles table is mandatory.
func (m *MetaData) UnmarshalJSON(data []byte) error {
	var jm jsonMetaData
	if err := json.Unmarshal(data, &jm); err != nil {
		return err
	}
	if jm.Particles == nil {
		return fmt.Errorf("%w: no particles table in JSON document", ErrUnknownLayout)
	}
	m.Particles = jm.Particles
	m.Optics = jm.Optics
	m.Path = ""
	return nil
}
