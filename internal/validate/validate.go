// Package validate checks that an input path is usable before a run starts,
// grounded on FileValidator.java.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
)

// InputFile stats path and reports the missing-input error kind when it
// does not exist or is not a regular file.
func InputFile(path string) (os.FileInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input file not found: %s: %w", abs, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("input path is not a regular file: %s", abs)
	}
	return info, nil
}
