package parts

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
)

// ResolveNumParts returns parts if it is positive, otherwise the number of
// logical CPUs available; grounded on NumPartsResolver.resolveNumParts.
func ResolveNumParts(parts *int) int {
	if parts != nil && *parts > 0 {
		return *parts
	}
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// CreateTempDir allocates a uniquely-named temp directory next to
// outputPath, grounded on TempDirectoryFactory.createTempDir. The run id
// suffix (via google/uuid) avoids collisions between concurrent runs
// targeting the same output directory.
func CreateTempDir(outputPath string) (string, error) {
	parent := filepath.Dir(outputPath)
	if parent == "" {
		parent = "."
	}
	dir := filepath.Join(parent, fmt.Sprintf("tmp_parts_%s", uuid.NewString()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating temp dir %s: %w", dir, err)
	}
	return dir, nil
}

// CleanupDir recursively removes dir. A nil/empty/missing dir is a silent
// no-op; grounded on CleanupDirectory.deleteTemporaryDirectory. Unlike the
// original, which logs per-failed-delete to stderr, os.RemoveAll already
// gives an all-or-nothing result appropriate for a defer-based cleanup.
func CleanupDir(dir string) {
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		return
	}
	os.RemoveAll(dir)
}
