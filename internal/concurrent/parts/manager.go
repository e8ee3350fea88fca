package parts

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"

	"csvtab/internal/procctx"
	"csvtab/internal/progress"
	"csvtab/internal/report"
	"csvtab/internal/rowio"
	"csvtab/internal/runlog"
	"csvtab/internal/validate"
)

// Options configures a single run of the file-part concurrent engine.
type Options struct {
	InputPath        string
	OutputPath       string
	LogPath          string
	ColumnsSpec      string
	FilterExpression string
	Separator        string
	Parts            *int
}

// Run executes split -> parallel process -> merge -> cleanup. The temp
// directory is removed on every exit path, success or failure, mirroring
// CsvManager.processConcurrent's finally block.
func Run(opts Options) (*procctx.Context, error) {
	if opts.Separator == "" {
		opts.Separator = rowio.DefaultSeparator
	}

	if _, err := validate.InputFile(opts.InputPath); err != nil {
		return nil, err
	}

	tempDir, err := CreateTempDir(opts.OutputPath)
	if err != nil {
		return nil, err
	}
	defer CleanupDir(tempDir)

	numParts := ResolveNumParts(opts.Parts)
	start := time.Now()

	split, err := Split(opts.InputPath, tempDir, numParts, opts.Separator)
	if err != nil {
		return nil, err
	}

	ctx, err := procctx.Build(split.HeaderLine, opts.ColumnsSpec, opts.FilterExpression, opts.Separator)
	if err != nil {
		return nil, err
	}

	logger := runlog.New(opts.LogPath)

	tracker := progress.New()
	tracker.SetTotal(int64(split.TotalDataLines))
	defer tracker.Finish()

	outPaths, err := processPartsConcurrently(split.PartFiles, ctx, logger, tracker, opts.Separator)
	if err != nil {
		return nil, err
	}

	if err := writeFinalFile(opts.OutputPath, ctx, outPaths, opts.Separator); err != nil {
		return nil, err
	}

	end := time.Now()
	report.Report(report.Summary{
		Label:      "CONCURRENT",
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		LogPath:    opts.LogPath,
		TempDir:    tempDir,
		Start:      start,
		End:        end,
	})

	return ctx, nil
}

// processPartsConcurrently spawns one goroutine per part file, grounded on
// ConcurrentPartProcessor.processParts. A failure in any worker is
// collected and returned once all goroutines have finished, so the cleanup
// defer in Run always runs after every goroutine has stopped touching
// tempDir.
func processPartsConcurrently(partFiles []string, ctx *procctx.Context, logger *runlog.Logger, tracker *progress.Tracker, separator string) ([]string, error) {
	outPaths := make([]string, len(partFiles))
	errs := make([]error, len(partFiles))

	var wg sync.WaitGroup
	for i, partPath := range partFiles {
		outPath := partPath[:len(partPath)-len(".csv")] + "_out.csv"
		outPaths[i] = outPath

		wg.Add(1)
		go func(i int, partPath, outPath string) {
			defer wg.Done()
			errs[i] = processPart(partPath, outPath, ctx, logger, tracker, separator)
		}(i, partPath, outPath)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
	}
	return outPaths, nil
}

// writeFinalFile writes the filtered header then concatenates every partial
// output in index order, skipping blank lines; grounded on
// CsvOutput.writeFinalFile. Index order, combined with contiguous chunking
// at split time, reproduces the sequential engine's row ordering.
func writeFinalFile(outputPath string, ctx *procctx.Context, partOutputs []string, separator string) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if _, err := w.WriteString(ctx.FilteredHeader(separator) + "\n"); err != nil {
		return err
	}

	for _, path := range partOutputs {
		if err := appendFile(w, path); err != nil {
			return err
		}
	}
	return w.Flush()
}

func appendFile(w *bufio.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if rowio.IsBlank(line) {
			continue
		}
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}
