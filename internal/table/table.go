package table

import "fmt"

// Table is an in-memory record table: an ordered sequence of rows sharing a
// fixed column set established at construction time. Cells are strings; the
// empty string stands in for a missing value. Tables are never mutated after
// construction — transforms return new tables.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]string
}

// New builds a table from a header and rows. Every row must have exactly one
// cell per column.
func New(cols []string, rows [][]string) (*Table, error) {
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c] = i
	}
	for i, r := range rows {
		if len(r) != len(cols) {
			return nil, &MalformedInputError{Line: i + 2, Want: len(cols), Got: len(r)}
		}
	}
	return &Table{cols: cols, index: index, rows: rows}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) { return len(t.rows), len(t.cols) }

// Columns returns a copy of the column names in table order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &ColumnNotFoundError{Column: name}
	}
	out := make([]string, len(t.rows))
	for j, r := range t.rows {
		out[j] = r[i]
	}
	return out, nil
}

// Cell returns the value at (row, column).
func (t *Table) Cell(row int, name string) (string, error) {
	i, ok := t.index[name]
	if !ok {
		return "", &ColumnNotFoundError{Column: name}
	}
	if row < 0 || row >= len(t.rows) {
		return "", fmt.Errorf("row %d out of range (%d rows)", row, len(t.rows))
	}
	return t.rows[row][i], nil
}

// Select returns a new table narrowed to the named columns. Columns that do
// not exist are skipped rather than reported: selection is advisory, and the
// column sets of the source files vary. Aggregation entry points still
// validate their required columns explicitly.
func (t *Table) Select(names ...string) *Table {
	var keep []int
	var cols []string
	for _, n := range names {
		if i, ok := t.index[n]; ok {
			keep = append(keep, i)
			cols = append(cols, n)
		}
	}
	rows := make([][]string, len(t.rows))
	for j, r := range t.rows {
		nr := make([]string, len(keep))
		for k, i := range keep {
			nr[k] = r[i]
		}
		rows[j] = nr
	}
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c] = i
	}
	return &Table{cols: cols, index: index, rows: rows}
}

// Filter returns a new table containing the rows for which keep returns true
// on the named column's value.
func (t *Table) Filter(name string, keep func(string) bool) (*Table, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &ColumnNotFoundError{Column: name}
	}
	var rows [][]string
	for _, r := range t.rows {
		if keep(r[i]) {
			rows = append(rows, r)
		}
	}
	return &Table{cols: t.cols, index: t.index, rows: rows}, nil
}

// Head returns up to n rows for previewing.
func (t *Table) Head(n int) [][]string {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		r := make([]string, len(t.rows[i]))
		copy(r, t.rows[i])
		out[i] = r
	}
	return out
}
