// Package columns parses a user-supplied column-selection spec into 0-based
// indices, grounded on the original CsvUtils.parseColumnSelection.
package columns

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSelection interprets spec against a header of totalColumns fields.
// An empty spec, or exactly "*" after trimming, selects every column in
// order. Otherwise spec is a comma-separated list of 1-based column numbers.
func ParseSelection(spec string, totalColumns int) ([]int, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" || trimmed == "*" {
		all := make([]int, totalColumns)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	tokens := strings.Split(trimmed, ",")
	indices := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("bad column spec %q: not an integer", tok)
		}
		if n < 1 || n > totalColumns {
			return nil, fmt.Errorf("bad column spec %q: out of range [1,%d]", tok, totalColumns)
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}
