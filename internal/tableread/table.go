package tableread

import "strings"

// Table is a raw tabular dataset: named columns over untyped string cells.
// Column names keep their original whitespace; lookups trim both sides, per
// the normalizer's header-cleaning contract.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if strings.TrimSpace(c) == name {
			return i
		}
	}
	return -1
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Cell returns the value at (row, name), or "" when the column is absent or
// the row is ragged.
func (t *Table) Cell(row int, name string) string {
	i := t.Index(name)
	if i < 0 || row < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][i]
}
