package filter

import (
	"fmt"
	"strings"
)

// ColumnIndexResolver maps trimmed header names to their 0-based position.
// Grounded on ColumnIndexResolver.java; duplicate names resolve to the last
// occurrence, matching the Header invariant in SPEC_FULL.md §3.
type ColumnIndexResolver struct {
	indexByName map[string]int
}

// NewColumnIndexResolver builds a resolver from a header row.
func NewColumnIndexResolver(header []string) *ColumnIndexResolver {
	m := make(map[string]int, len(header))
	for i, name := range header {
		m[strings.TrimSpace(name)] = i
	}
	return &ColumnIndexResolver{indexByName: m}
}

// IndexOf returns the 0-based position of name, or an error if name is
// blank or unknown (the column-not-found error kind).
func (r *ColumnIndexResolver) IndexOf(name string) (int, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, fmt.Errorf("column name is blank")
	}
	idx, ok := r.indexByName[trimmed]
	if !ok {
		return 0, fmt.Errorf("unknown column %q", trimmed)
	}
	return idx, nil
}

// HasColumn reports whether name is known to the resolver.
func (r *ColumnIndexResolver) HasColumn(name string) bool {
	_, ok := r.indexByName[strings.TrimSpace(name)]
	return ok
}
