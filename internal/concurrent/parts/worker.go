package parts

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"csvtab/internal/procctx"
	"csvtab/internal/progress"
	"csvtab/internal/rowio"
	"csvtab/internal/runlog"
)

// processPart transforms one part file into its corresponding output part
// file: column-count validation, filter, projection. Errors are logged
// through the shared logger and the row is dropped; an I/O failure aborts
// the worker and is surfaced to the manager. Grounded on CsvWorker.run.
// tracker.Add is safe to call concurrently from every part's goroutine.
func processPart(partPath, outPath string, ctx *procctx.Context, logger *runlog.Logger, tracker *progress.Tracker, separator string) error {
	in, err := os.Open(partPath)
	if err != nil {
		return fmt.Errorf("opening part %s: %w", partPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating part output %s: %w", outPath, err)
	}
	defer out.Close()

	name := filepath.Base(partPath)
	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if rowio.IsBlank(line) {
			continue
		}
		tracker.Add(1)

		cols := rowio.SplitColumns(line, separator)
		if len(cols) != ctx.TotalColumns {
			logger.LogError(fmt.Sprintf("File: %s | Line %d invalid columns: %d (expected %d)", name, lineNumber, len(cols), ctx.TotalColumns))
			continue
		}

		if ctx.Filter != nil && !ctx.Filter.Matches(cols) {
			continue
		}

		filtered := rowio.BuildFilteredLine(cols, ctx.Selected, separator)
		if _, err := w.WriteString(filtered + "\n"); err != nil {
			return fmt.Errorf("writing part output %s: %w", outPath, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading part %s: %w", partPath, err)
	}
	return w.Flush()
}
