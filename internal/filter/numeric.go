package filter

import (
	"strconv"
	"strings"
)

// looksNumeric reports whether s should be treated as a numeric literal.
// A quoted string ("...") is never numeric regardless of its contents;
// grounded on CsvFilterNumberUtils.looksNumeric.
func looksNumeric(s string) bool {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) {
		return false
	}
	_, err := strconv.ParseFloat(trimmed, 64)
	return err == nil
}

// stripQuotes removes a single layer of surrounding double quotes after
// trimming whitespace; grounded on CsvFilterStringUtils.stripQuotes.
func stripQuotes(s string) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) {
		return trimmed[1 : len(trimmed)-1]
	}
	return trimmed
}
