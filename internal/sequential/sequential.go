// Package sequential is the reference single-threaded engine: read, filter,
// project, write, one line at a time. Grounded on
// CsvSequentialProcessorImpl.java, SequentialLineProcessor.java,
// CsvHeaderWriter.java, and RowStats.java.
package sequential

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"csvtab/internal/procctx"
	"csvtab/internal/progress"
	"csvtab/internal/report"
	"csvtab/internal/rowio"
	"csvtab/internal/runlog"
	"csvtab/internal/validate"
)

// RowStats accumulates the two counters every engine reports.
type RowStats struct {
	ValidLines int64
	ErrorLines int64
}

// Options configures a single run of the sequential engine.
type Options struct {
	InputPath        string
	OutputPath       string
	LogPath          string
	ColumnsSpec      string
	FilterExpression string
	Separator        string
}

// Run executes the sequential engine end to end, returning the accumulated
// RowStats and the built context (useful to callers that also want the
// final header or compiled filter).
func Run(opts Options) (RowStats, *procctx.Context, error) {
	if opts.Separator == "" {
		opts.Separator = rowio.DefaultSeparator
	}

	info, err := validate.InputFile(opts.InputPath)
	if err != nil {
		return RowStats{}, nil, err
	}

	start := time.Now()

	in, err := openInput(opts.InputPath)
	if err != nil {
		return RowStats{}, nil, err
	}
	defer in.Close()

	out, err := createOutput(opts.OutputPath)
	if err != nil {
		return RowStats{}, nil, err
	}
	defer out.Close()

	logger := runlog.New(opts.LogPath)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		return RowStats{}, nil, fmt.Errorf("empty input: %s", opts.InputPath)
	}
	headerLine := scanner.Text()

	ctx, err := procctx.Build(headerLine, opts.ColumnsSpec, opts.FilterExpression, opts.Separator)
	if err != nil {
		return RowStats{}, nil, err
	}

	writer := bufio.NewWriter(out)
	defer writer.Flush()

	if _, err := writer.WriteString(ctx.FilteredHeader(opts.Separator) + "\n"); err != nil {
		return RowStats{}, nil, err
	}

	tracker := progress.New()
	tracker.SetTotal(progress.EstimateRowsFromFileSize(info.Size(), len(headerLine)+1))
	defer tracker.Finish()

	stats, err := processLines(scanner, writer, logger, ctx, opts.Separator, tracker)
	if err != nil {
		return stats, ctx, err
	}
	if err := writer.Flush(); err != nil {
		return stats, ctx, err
	}

	end := time.Now()
	report.Report(report.Summary{
		Label:      "SEQUENTIAL",
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		LogPath:    opts.LogPath,
		Start:      start,
		End:        end,
		ValidLines: stats.ValidLines,
		ErrorLines: stats.ErrorLines,
	})

	return stats, ctx, nil
}

// processLines is the line-by-line loop; grounded on
// SequentialLineProcessor.processLines. lineNumber starts at 1 (the header)
// and is incremented before each data line is read, so the first data row
// is line 2.
func processLines(scanner *bufio.Scanner, w *bufio.Writer, logger *runlog.Logger, ctx *procctx.Context, sep string, tracker *progress.Tracker) (RowStats, error) {
	var stats RowStats
	lineNumber := 1

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if rowio.IsBlank(line) {
			continue
		}
		tracker.Add(1)

		cols := rowio.SplitColumns(line, sep)
		if len(cols) != ctx.TotalColumns {
			logger.LogError(fmt.Sprintf("Line %d invalid columns: %d (expected %d)", lineNumber, len(cols), ctx.TotalColumns))
			stats.ErrorLines++
			continue
		}

		if ctx.Filter != nil && !ctx.Filter.Matches(cols) {
			continue
		}

		filtered := rowio.BuildFilteredLine(cols, ctx.Selected, sep)
		if _, err := w.WriteString(filtered + "\n"); err != nil {
			return stats, err
		}
		stats.ValidLines++
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return stats, err
	}
	return stats, nil
}
