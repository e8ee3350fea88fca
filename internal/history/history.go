// Package history appends one record per completed run to an
// execution-history CSV, the implemented form of the distilled spec's
// out-of-scope "execution-history CSV logger" external collaborator.
package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DefaultPath is where history is recorded unless the caller overrides it.
const DefaultPath = "metrics/historial-ejecuciones.csv"

var header = []string{"run_id", "timestamp", "mode", "input", "output", "millis", "seconds"}

// Record is one completed run.
type Record struct {
	RunID      string
	Timestamp  time.Time
	Mode       string
	InputPath  string
	OutputPath string
	Millis     float64
	Seconds    float64
}

// NewRunID returns a fresh v4 UUID, generated once per invocation.
func NewRunID() string {
	return uuid.NewString()
}

// Logger appends Records to a CSV file, creating it with a header row the
// first time it is written. Unlike the concurrent row logger, this file
// uses encoding/csv: its fields include freeform file paths that may
// legitimately contain the separator, so proper quoting is worth the cost
// here where it wasn't for the hot-path row codec.
type Logger struct {
	path string
}

// New returns a Logger writing to path.
func New(path string) *Logger {
	return &Logger{path: path}
}

// Append writes one record, creating the file and its parent directory and
// writing the header if this is the first write.
func (l *Logger) Append(r Record) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	needsHeader := false
	if info, err := os.Stat(l.path); err != nil || info.Size() == 0 {
		needsHeader = true
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if needsHeader {
		if err := w.Write(header); err != nil {
			return err
		}
	}

	row := []string{
		r.RunID,
		r.Timestamp.Format(time.RFC3339),
		r.Mode,
		r.InputPath,
		r.OutputPath,
		fmt.Sprintf("%.2f", r.Millis),
		fmt.Sprintf("%.2f", r.Seconds),
	}
	return w.Write(row)
}
