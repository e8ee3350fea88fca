// Package prompt drives the minimal interactive console flow used when the
// CLI is invoked without flags. Deliberately thin and mechanical: it
// performs no column-range or column-name validation of its own (that stays
// the core's job), matching the distilled spec's framing of prompting as an
// out-of-scope external collaborator.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"csvtab/internal/config"
)

const (
	defaultInputDir  = "data"
	defaultOutputDir = "output"
)

// Flow reads answers from r and writes prompts to w.
type Flow struct {
	r *bufio.Scanner
	w io.Writer
}

// NewFlow reads answers from r and writes prompts to w; tests pass their own
// reader and writer, while NewStdFlow uses stdin/stdout.
func NewFlow(r io.Reader, w io.Writer) *Flow {
	return &Flow{r: bufio.NewScanner(r), w: w}
}

// NewStdFlow builds a Flow over the process's stdin/stdout.
func NewStdFlow() *Flow {
	return NewFlow(os.Stdin, os.Stdout)
}

// Run asks for mode, input/output paths, column spec, and filter
// expression, in that order, and returns the resulting Config.
func (f *Flow) Run() (config.Config, error) {
	mode, err := f.ask("Mode [sequential/concurrent-parts/concurrent-memory]", string(config.ModeConcurrentMemory))
	if err != nil {
		return config.Config{}, err
	}

	inputPath, err := f.ask("Input file", "")
	if err != nil {
		return config.Config{}, err
	}
	inputPath = resolveUnderDefault(inputPath, defaultInputDir)

	outputPath, err := f.ask("Output file", "")
	if err != nil {
		return config.Config{}, err
	}
	outputPath = resolveUnderDefault(outputPath, defaultOutputDir)

	columnsSpec, err := f.ask("Columns (* for all, or comma-separated 1-based numbers)", "*")
	if err != nil {
		return config.Config{}, err
	}

	filterExpr, err := f.ask("Filter expression (blank for none)", "")
	if err != nil {
		return config.Config{}, err
	}

	return config.Config{
		InputPath:        inputPath,
		OutputPath:       outputPath,
		ColumnsSpec:      columnsSpec,
		FilterExpression: filterExpr,
		Mode:             config.Mode(mode),
	}, nil
}

func (f *Flow) ask(label, fallback string) (string, error) {
	if fallback != "" {
		fmt.Fprintf(f.w, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(f.w, "%s: ", label)
	}
	if !f.r.Scan() {
		if err := f.r.Err(); err != nil {
			return "", err
		}
		return fallback, nil
	}
	answer := strings.TrimSpace(f.r.Text())
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// resolveUnderDefault places a bare filename under dir if the caller did
// not already supply a directory component, creating dir if needed.
func resolveUnderDefault(path, dir string) string {
	if path == "" {
		return path
	}
	if filepath.Dir(path) != "." {
		return path
	}
	os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, path)
}
