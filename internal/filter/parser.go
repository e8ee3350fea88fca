package filter

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var orSplitter = regexp.MustCompile(`(?i)\s+OR\s+`)
var andSplitter = regexp.MustCompile(`(?i)\s+AND\s+`)

// operators is scanned in this order so that two-character operators are
// matched before their one-character prefixes; grounded on
// CsvFilterConditionFactory.OPERATORS.
var operators = []string{"<=", ">=", "!=", "=", "<", ">"}

// Parse compiles an expression against resolver into a Filter, or nil if the
// expression is empty/blank or reduces to no valid conditions (the
// absent-filter case: every row passes). Malformed fragments and unknown
// columns are reported to stderr and dropped rather than aborting
// compilation, per the warn-and-continue policy in SPEC_FULL.md §7.
func Parse(expression string, resolver *ColumnIndexResolver) (Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, nil
	}

	orParts := orSplitter.Split(expression, -1)
	var orChildren []Filter
	for _, part := range orParts {
		child := buildAndGroup(part, resolver)
		if child != nil {
			orChildren = append(orChildren, child)
		}
	}

	switch len(orChildren) {
	case 0:
		return nil, nil
	case 1:
		return orChildren[0], nil
	default:
		return &orFilter{children: orChildren}, nil
	}
}

// buildAndGroup splits expr on AND and compiles each fragment into a
// condition, dropping any that fail to parse; grounded on
// CsvAndGroupBuilder.buildAndGroup.
func buildAndGroup(expr string, resolver *ColumnIndexResolver) Filter {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	fragments := andSplitter.Split(expr, -1)
	var andChildren []Filter
	for _, frag := range fragments {
		c := parseCondition(frag, resolver)
		if c != nil {
			andChildren = append(andChildren, c)
		}
	}
	switch len(andChildren) {
	case 0:
		return nil
	case 1:
		return andChildren[0]
	default:
		return &andFilter{children: andChildren}
	}
}

// parseCondition compiles a single "column OP literal" fragment; grounded on
// CsvFilterConditionFactory.parseCondition. Unrecognized operators and
// unknown columns are reported and result in a nil condition (dropped).
func parseCondition(frag string, resolver *ColumnIndexResolver) Filter {
	if strings.TrimSpace(frag) == "" {
		return nil
	}

	var op string
	var opIdx int = -1
	for _, candidate := range operators {
		if idx := strings.Index(frag, candidate); idx >= 0 {
			op = candidate
			opIdx = idx
			break
		}
	}
	if opIdx < 0 {
		fmt.Fprintf(os.Stderr, "unrecognized condition: %s\n", frag)
		return nil
	}

	left := strings.TrimSpace(frag[:opIdx])
	right := strings.TrimSpace(frag[opIdx+len(op):])

	idx, err := resolver.IndexOf(left)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return nil
	}

	return &condition{
		columnIndex: idx,
		op:          op,
		literal:     right,
		numeric:     looksNumeric(right),
	}
}
