// Table type and the arity invariant.
package star

import "fmt"

// Table is the parsed form of one data block: column labels in their
// on-disk order and rows of field values, all raw strings. Column
// order is semantically significant and preserved everywhere.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable builds a Table, enforcing that every row has exactly one
// field per column. Constructing a Table literal directly bypasses
// this check; decoded and unmarshalled tables always pass through it.
func NewTable(columns []string, rows [][]string) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d",
				ErrColumnMismatch, i, len(row), len(columns))
		}
	}
	return &Table{Columns: columns, Rows: rows}, nil
}

// ColumnCount returns the number of column labels.
func (t *Table) ColumnCount() int { return len(t.Columns) }

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return len(t.Rows) }
