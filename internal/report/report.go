// Package report prints the timing and file-path diagnostics emitted at the
// end of a run; grounded on TimeLogger.java and the three
// *SummaryReporter.java variants.
package report

import (
	"fmt"
	"path/filepath"
	"time"
)

// Summary carries everything a reporter needs; TempDir is empty for engines
// that never used one.
type Summary struct {
	Label      string
	InputPath  string
	OutputPath string
	LogPath    string
	TempDir    string
	Start      time.Time
	End        time.Time
	ValidLines int64
	ErrorLines int64
}

// PrintTime writes the elapsed-time line in the same shape as
// TimeLogger.printTime: "[LABEL] Input: in | Output: out | Time: X ms (Y s)".
func PrintTime(label, inputName, outputName string, start, end time.Time) {
	ms := float64(end.Sub(start).Microseconds()) / 1000.0
	s := ms / 1000.0
	fmt.Printf("[%s] Input: %s | Output: %s | Time: %.2f ms (%.2f s)\n", label, inputName, outputName, ms, s)
}

// Report prints the full summary: timing line, row counts when known,
// absolute output/log paths, and the temp dir when present.
func Report(s Summary) {
	PrintTime(s.Label, filepath.Base(s.InputPath), filepath.Base(s.OutputPath), s.Start, s.End)
	if s.ValidLines != 0 || s.ErrorLines != 0 {
		fmt.Printf("Valid lines: %d\n", s.ValidLines)
		fmt.Printf("Error lines: %d\n", s.ErrorLines)
	}
	if abs, err := filepath.Abs(s.OutputPath); err == nil {
		fmt.Println(abs)
	}
	if s.LogPath != "" {
		if abs, err := filepath.Abs(s.LogPath); err == nil {
			fmt.Println(abs)
		}
	}
	if s.TempDir != "" {
		if abs, err := filepath.Abs(s.TempDir); err == nil {
			fmt.Println(abs)
		}
	}
}
