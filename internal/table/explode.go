package table

import "strings"

// MultiValueDelimiter separates logical values inside a single cell in the
// CARD reference tables ("fluoroquinolone antibiotic; glycopeptide ...").
const MultiValueDelimiter = ";"

// Explode splits the named column's cells on MultiValueDelimiter and emits
// one row per trimmed segment, all other columns copied unchanged. A cell
// with no value still yields one row, so no record disappears from the
// table. Empty segments produced by a trailing or doubled delimiter are kept
// as empty strings. Exploding two columns in sequence gives the cartesian
// expansion of both.
func Explode(t *Table, column string) (*Table, error) {
	i, ok := t.index[column]
	if !ok {
		return nil, &ColumnNotFoundError{Column: column}
	}
	rows := make([][]string, 0, len(t.rows))
	for _, r := range t.rows {
		cell := r[i]
		if strings.TrimSpace(cell) == "" {
			nr := make([]string, len(r))
			copy(nr, r)
			nr[i] = ""
			rows = append(rows, nr)
			continue
		}
		for _, seg := range strings.Split(cell, MultiValueDelimiter) {
			nr := make([]string, len(r))
			copy(nr, r)
			nr[i] = strings.TrimSpace(seg)
			rows = append(rows, nr)
		}
	}
	return &Table{cols: t.cols, index: t.index, rows: rows}, nil
}
