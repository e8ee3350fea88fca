// Package procctx builds the immutable per-run plan shared read-only by
// every engine and worker; grounded on CsvProcessingContext.java and
// BaseCsvProcessor.buildContext.
package procctx

import (
	"csvtab/internal/columns"
	"csvtab/internal/filter"
	"csvtab/internal/rowio"
)

// Context is the compiled plan for a single run: header, total column
// count, selected output indices, and the compiled predicate (nil means no
// filtering, every row passes).
type Context struct {
	Header       []string
	TotalColumns int
	Selected     []int
	Filter       filter.Filter
}

// Build parses headerLine, resolves columnsSpec into indices, and compiles
// filterExpression against the header, in that order. headerLine is always
// the raw, unprojected header (see DESIGN.md Open Question 2).
func Build(headerLine, columnsSpec, filterExpression, separator string) (*Context, error) {
	header := rowio.SplitColumns(headerLine, separator)
	total := len(header)

	selected, err := columns.ParseSelection(columnsSpec, total)
	if err != nil {
		return nil, err
	}

	resolver := filter.NewColumnIndexResolver(header)
	compiled, err := filter.Parse(filterExpression, resolver)
	if err != nil {
		return nil, err
	}

	return &Context{
		Header:       header,
		TotalColumns: total,
		Selected:     selected,
		Filter:       compiled,
	}, nil
}

// FilteredHeader projects the header row through Selected, the same way any
// data row is projected.
func (c *Context) FilteredHeader(separator string) string {
	return rowio.BuildFilteredLine(c.Header, c.Selected, separator)
}
