package table

import "strings"

// ColumnSummary captures per-column exploratory statistics.
type ColumnSummary struct {
	Name     string
	NonNull  int
	Missing  int
	Distinct int
	Numeric  bool     // every non-null value parses as a number
	Samples  []string // up to three distinct example values
}

// Describe computes a per-column summary of the table: non-null and missing
// counts, distinct value counts and a few example values. It is the engine
// behind the explore command's shape/dtype/null report.
func Describe(t *Table) []ColumnSummary {
	out := make([]ColumnSummary, len(t.cols))
	for i, c := range t.cols {
		s := ColumnSummary{Name: c, Numeric: true}
		seen := make(map[string]struct{})
		for _, r := range t.rows {
			v := strings.TrimSpace(r[i])
			if v == "" {
				s.Missing++
				continue
			}
			s.NonNull++
			if s.Numeric && !isNumeric(v) {
				s.Numeric = false
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				if len(s.Samples) < 3 {
					s.Samples = append(s.Samples, v)
				}
			}
		}
		if s.NonNull == 0 {
			s.Numeric = false
		}
		s.Distinct = len(seen)
		out[i] = s
	}
	return out
}

func isNumeric(v string) bool {
	dot := false
	for j, ch := range v {
		switch {
		case ch >= '0' && ch <= '9':
		case ch == '-' && j == 0:
		case ch == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return true
}
