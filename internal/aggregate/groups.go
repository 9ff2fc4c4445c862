package aggregate

import (
	"sort"
	"strings"

	"github.com/cardtools/cardex/internal/table"
)

// GroupCount is one row of a grouped frequency summary: the count of value
// within group.
type GroupCount struct {
	Group string
	Value string
	Count int
}

// TopGroups ranks the groups of groupCol by row count, keeps the topGroups
// largest, and within each of those counts the values of valueCol, keeping
// the topPerGroup most frequent. Output rows are ordered by group rank, then
// by count descending with first-seen tie-break, the same policy as TopN.
// Both columns must exist.
func TopGroups(t *table.Table, groupCol, valueCol string, topGroups, topPerGroup int) ([]GroupCount, error) {
	groups, err := t.Column(groupCol)
	if err != nil {
		return nil, err
	}
	values, err := t.Column(valueCol)
	if err != nil {
		return nil, err
	}

	ranked, err := TopN(t, groupCol, topGroups)
	if err != nil {
		return nil, err
	}

	// Per-group value counts, preserving first-seen order for ties.
	type acc struct {
		counts map[string]int
		order  []string
	}
	byGroup := make(map[string]*acc, len(ranked))
	for _, g := range ranked {
		byGroup[g.Value] = &acc{counts: make(map[string]int)}
	}
	for i := range groups {
		g := strings.TrimSpace(groups[i])
		a, ok := byGroup[g]
		if !ok {
			continue
		}
		v := strings.TrimSpace(values[i])
		if _, seen := a.counts[v]; !seen {
			a.order = append(a.order, v)
		}
		a.counts[v]++
	}

	var out []GroupCount
	for _, g := range ranked {
		a := byGroup[g.Value]
		sub := make([]GroupCount, 0, len(a.order))
		for _, v := range a.order {
			sub = append(sub, GroupCount{Group: g.Value, Value: v, Count: a.counts[v]})
		}
		sort.SliceStable(sub, func(i, j int) bool { return sub[i].Count > sub[j].Count })
		if topPerGroup < 0 {
			topPerGroup = 0
		}
		if topPerGroup < len(sub) {
			sub = sub[:topPerGroup]
		}
		out = append(out, sub...)
	}
	return out, nil
}
