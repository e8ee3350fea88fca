// Package memory implements the in-memory batch concurrent engine: stream
// lines into fixed-size batches, dispatch to a bounded worker pool, and
// collect results in submission order so output order matches input order.
// Grounded on CsvConcurrentProcessorInMemory.java, CsvManagerInMemory.java,
// ConcurrentBatchProcessor.java, BatchWorker.java, and BatchResult.java —
// with the column-count check added per DESIGN.md Open Question 2.
package memory

import (
	"fmt"
	"strings"

	"csvtab/internal/procctx"
	"csvtab/internal/rowio"
)

// BatchLineSize is the number of raw lines accumulated before a batch is
// dispatched to a worker; grounded on CsvManagerInMemory.BATCH_LINE_SIZE.
const BatchLineSize = 10_000

// BatchResult is the immutable value a worker returns for one batch.
type BatchResult struct {
	BatchNumber    int
	OutputText     string
	LogText        string
	ProcessedLines int64
	ErrorLines     int64
}

// processBatch transforms one batch of raw lines into a BatchResult.
// Workers touch no shared state: everything they need is passed by value
// or by read-only pointer, and everything they produce is returned, which
// is what lets the manager collect results without locking.
func processBatch(batchNumber int, lines []string, ctx *procctx.Context, separator string) BatchResult {
	var out, logs strings.Builder
	var processed, errored int64

	for _, line := range lines {
		cols := rowio.SplitColumns(line, separator)
		if len(cols) != ctx.TotalColumns {
			fmt.Fprintf(&logs, "Batch %d - Error in line: invalid column count %d (expected %d) | Content: %s\n",
				batchNumber, len(cols), ctx.TotalColumns, line)
			errored++
			continue
		}

		if ctx.Filter != nil && !ctx.Filter.Matches(cols) {
			continue
		}

		out.WriteString(rowio.BuildFilteredLine(cols, ctx.Selected, separator))
		out.WriteByte('\n')
		processed++
	}

	return BatchResult{
		BatchNumber:    batchNumber,
		OutputText:     out.String(),
		LogText:        logs.String(),
		ProcessedLines: processed,
		ErrorLines:     errored,
	}
}
