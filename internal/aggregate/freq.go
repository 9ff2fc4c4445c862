// Package aggregate derives frequency summaries from record tables. All
// functions are pure: they read a table and return a fresh result, never
// touching the input.
package aggregate

import (
	"sort"
	"strings"

	"github.com/cardtools/cardex/internal/table"
)

// ValueCount is one row of a frequency table.
type ValueCount struct {
	Value string
	Count int
}

// FrequencyTable is an ordered (value, count) sequence, counts descending.
// It is regenerated on every query and never mutated in place.
type FrequencyTable []ValueCount

// TopN counts the distinct trimmed values of the named column and returns
// the n most frequent, ordered by count descending. Ties keep the order in
// which the values first appear in the table. n = 0 yields an empty result;
// n larger than the number of distinct values returns them all.
func TopN(t *table.Table, column string, n int) (FrequencyTable, error) {
	values, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	ft := make(FrequencyTable, 0, len(order))
	for _, v := range order {
		ft = append(ft, ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(ft, func(i, j int) bool { return ft[i].Count > ft[j].Count })
	if n < 0 {
		n = 0
	}
	if n < len(ft) {
		ft = ft[:n]
	}
	return ft, nil
}
