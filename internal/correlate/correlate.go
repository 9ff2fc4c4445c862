// Package correlate classifies the members of one identifier set by their
// presence in another. It is how gene records from the ARO index are matched
// against the mutation list to split resistance determinants into gene-based
// and SNP-based categories.
package correlate

import (
	"errors"
	"strings"
)

// AccessionPrefix is the canonical form of an ARO accession identifier. The
// ARO index stores the prefixed form ("ARO:3003923") while the mutation list
// stores bare digits ("3003923"); both must be normalized before comparison.
const AccessionPrefix = "ARO:"

// ErrEmptyInput is returned when the primary identifier set is empty and
// there is nothing to partition.
var ErrEmptyInput = errors.New("empty primary identifier set")

// NormalizeAccession trims an identifier and ensures it carries the ARO
// prefix. Already-prefixed identifiers pass through unchanged; empty input
// stays empty.
func NormalizeAccession(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, AccessionPrefix) {
		return id
	}
	return AccessionPrefix + id
}

// Set builds a normalized identifier set, dropping empty identifiers.
func Set(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if n := NormalizeAccession(id); n != "" {
			out[n] = struct{}{}
		}
	}
	return out
}

// Partition is the result of classifying a primary identifier set against a
// secondary one. Matched + Unmatched always equals the size of the primary
// set: every identifier lands in exactly one category.
type Partition struct {
	Matched   int
	Unmatched int
}

// Correlate intersects primary with secondary and partitions primary into
// matched and unmatched counts. The identifiers are assumed to be already
// normalized (use Set).
func Correlate(primary, secondary map[string]struct{}) (Partition, error) {
	if len(primary) == 0 {
		return Partition{}, ErrEmptyInput
	}
	var p Partition
	for id := range primary {
		if _, ok := secondary[id]; ok {
			p.Matched++
		}
	}
	p.Unmatched = len(primary) - p.Matched
	return p, nil
}
