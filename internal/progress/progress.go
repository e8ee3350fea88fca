// Package progress wraps a row-count progress bar, grounded almost
// directly on johndauphine-dmt's internal/progress/tracker.go, generalized
// from "rows transferred" to "rows processed".
package progress

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Tracker reports how many rows have been processed against an expected
// total. It is a diagnostic side channel: nil-safe, never affects
// correctness or ordering.
type Tracker struct {
	bar       *progressbar.ProgressBar
	total     int64
	current   atomic.Int64
	startTime time.Time
}

// New creates a Tracker with no bound total; call SetTotal once the row
// count is known.
func New() *Tracker {
	return &Tracker{startTime: time.Now()}
}

// SetTotal (re)creates the underlying bar sized to total rows.
func (t *Tracker) SetTotal(total int64) {
	if t == nil {
		return
	}
	t.total = total
	t.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("rows"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// Add increments the processed-row count by n.
func (t *Tracker) Add(n int64) {
	if t == nil {
		return
	}
	t.current.Add(n)
	if t.bar != nil {
		t.bar.Add64(n)
	}
}

// Current returns the number of rows processed so far.
func (t *Tracker) Current() int64 {
	if t == nil {
		return 0
	}
	return t.current.Load()
}

// Finish prints an elapsed-time/rows-per-second summary.
func (t *Tracker) Finish() {
	if t == nil {
		return
	}
	elapsed := time.Since(t.startTime)
	rowsPerSec := float64(t.current.Load()) / elapsed.Seconds()
	fmt.Printf("Processed %d rows in %s (%.1f rows/sec)\n", t.current.Load(), elapsed.Round(time.Millisecond), rowsPerSec)
}

// EstimateRowsFromFileSize approximates a total row count from a file size
// in bytes and a representative line length (the header line is a
// convenient, already-available sample), avoiding an extra full pass over
// the input for the engines that don't already count lines up front.
func EstimateRowsFromFileSize(fileSize int64, sampleLineBytes int) int64 {
	if sampleLineBytes <= 0 {
		sampleLineBytes = 1
	}
	estimate := fileSize / int64(sampleLineBytes)
	if estimate < 0 {
		return 0
	}
	return estimate
}
