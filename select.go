// Row projection.
package star

import "fmt"

// Select returns new metadata whose particle table holds exactly the
// rows named by idxs, in the given order. Indices may repeat and need
// not be sorted. The optics table is shared with the receiver — it is
// layout-level metadata and never mutated — while the particle table
// is a fresh, independently owned copy. The result carries no source
// path.
func (m *MetaData) Select(idxs []int) (*MetaData, error) {
	n := m.Particles.RowCount()
	rows := make([][]string, 0, len(idxs))
	for _, i := range idxs {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: index %d, table has %d rows", ErrIndexRange, i, n)
		}
		row := make([]string, len(m.Particles.Rows[i]))
		copy(row, m.Particles.Rows[i])
		rows = append(rows, row)
	}

	columns := make([]string, len(m.Particles.Columns))
	copy(columns, m.Particles.Columns)

	return &MetaData{
		Particles: &Table{Columns: columns, Rows: rows},
		Optics:    m.Optics,
	}, nil
}
