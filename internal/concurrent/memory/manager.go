package memory

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"csvtab/internal/procctx"
	"csvtab/internal/progress"
	"csvtab/internal/report"
	"csvtab/internal/rowio"
	"csvtab/internal/validate"
)

// Options configures a single run of the in-memory batch concurrent engine.
type Options struct {
	InputPath        string
	OutputPath       string
	LogPath          string
	ColumnsSpec      string
	FilterExpression string
	Separator        string
	Parts            *int
}

type job struct {
	batchNumber int
	lines       []string
	result      chan BatchResult
}

// Run streams the input into BatchLineSize batches, dispatches each to a
// bounded pool of numParts worker goroutines, and appends results to the
// output/log files strictly in submission order, grounded on
// CsvManagerInMemory.processConcurrentInMemory.
func Run(opts Options) (*procctx.Context, error) {
	if opts.Separator == "" {
		opts.Separator = rowio.DefaultSeparator
	}

	info, err := validate.InputFile(opts.InputPath)
	if err != nil {
		return nil, err
	}

	numParts := resolveNumParts(opts.Parts)
	start := time.Now()

	in, err := os.Open(opts.InputPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	out, err := os.Create(opts.OutputPath)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	logFile, err := os.Create(opts.LogPath)
	if err != nil {
		return nil, err
	}
	defer logFile.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty input: %s", opts.InputPath)
	}
	headerLine := scanner.Text()

	ctx, err := procctx.Build(headerLine, opts.ColumnsSpec, opts.FilterExpression, opts.Separator)
	if err != nil {
		return nil, err
	}

	writer := bufio.NewWriter(out)
	logWriter := bufio.NewWriter(logFile)
	defer writer.Flush()
	defer logWriter.Flush()

	if _, err := writer.WriteString(ctx.FilteredHeader(opts.Separator) + "\n"); err != nil {
		return nil, err
	}

	tracker := progress.New()
	tracker.SetTotal(progress.EstimateRowsFromFileSize(info.Size(), len(headerLine)+1))
	defer tracker.Finish()

	jobs := make(chan job, numParts)
	for i := 0; i < numParts; i++ {
		go func() {
			for j := range jobs {
				j.result <- processBatch(j.batchNumber, j.lines, ctx, opts.Separator)
			}
		}()
	}

	var futures []chan BatchResult
	var pending []string
	batchNumber := 0

	submit := func(lines []string) {
		resultCh := make(chan BatchResult, 1)
		futures = append(futures, resultCh)
		jobs <- job{batchNumber: batchNumber, lines: lines, result: resultCh}
		batchNumber++
	}

	for scanner.Scan() {
		line := scanner.Text()
		if rowio.IsBlank(line) {
			continue
		}
		pending = append(pending, line)
		if len(pending) >= BatchLineSize {
			submit(pending)
			pending = nil
		}
	}
	if err := scanner.Err(); err != nil {
		close(jobs)
		return nil, err
	}
	if len(pending) > 0 {
		submit(pending)
	}
	close(jobs)

	var totalValid, totalErrors int64
	for _, resultCh := range futures {
		res := <-resultCh
		totalValid += res.ProcessedLines
		totalErrors += res.ErrorLines
		tracker.Add(res.ProcessedLines + res.ErrorLines)
		if res.OutputText != "" {
			if _, err := writer.WriteString(res.OutputText); err != nil {
				return nil, err
			}
		}
		if res.LogText != "" {
			if _, err := logWriter.WriteString(res.LogText); err != nil {
				return nil, err
			}
		}
	}

	if err := writer.Flush(); err != nil {
		return nil, err
	}
	if err := logWriter.Flush(); err != nil {
		return nil, err
	}

	end := time.Now()
	report.Report(report.Summary{
		Label:      "CONCURRENT IN-MEMORY",
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		LogPath:    opts.LogPath,
		Start:      start,
		End:        end,
		ValidLines: totalValid,
		ErrorLines: totalErrors,
	})

	return ctx, nil
}

func resolveNumParts(parts *int) int {
	if parts != nil && *parts > 0 {
		return *parts
	}
	n := numCPU()
	if n < 1 {
		return 1
	}
	return n
}
