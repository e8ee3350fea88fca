package validate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInputFileMissing(t *testing.T) {
	if _, err := InputFile("/nonexistent/path/to/file.csv"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestInputFileIsDirectory(t *testing.T) {
	dir := t.TempDir()
	if _, err := InputFile(dir); err == nil {
		t.Fatal("expected error for directory input")
	}
}

func TestInputFileOK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := InputFile(path); err != nil {
		t.Fatal(err)
	}
}
