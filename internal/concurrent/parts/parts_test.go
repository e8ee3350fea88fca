package parts

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestSplitContiguousChunking(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	writeFile(t, input, "id,name\n1,a\n2,b\n3,c\n4,d\n5,e\n")

	tempDir := filepath.Join(dir, "tmp")
	result, err := Split(input, tempDir, 2, ",")
	if err != nil {
		t.Fatal(err)
	}
	if len(result.PartFiles) != 2 {
		t.Fatalf("expected 2 part files, got %d", len(result.PartFiles))
	}
	// 5 lines over 2 parts: part 0 gets 3, part 1 gets 2 (contiguous, not round robin).
	part0 := readFile(t, result.PartFiles[0])
	part1 := readFile(t, result.PartFiles[1])
	if part0 != "1,a\n2,b\n3,c\n" {
		t.Fatalf("unexpected part0: %q", part0)
	}
	if part1 != "4,d\n5,e\n" {
		t.Fatalf("unexpected part1: %q", part1)
	}
}

func TestRunEndToEndAndCleanup(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.csv")
	logPath := filepath.Join(dir, "out.csv.log")
	writeFile(t, input, "id,name,age\n1,bob,30\n2,alice,25\n3,carl,40\n4,dan,10\n")

	two := 2
	ctx, err := Run(Options{
		InputPath:   input,
		OutputPath:  output,
		LogPath:     logPath,
		ColumnsSpec: "*",
		Parts:       &two,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ctx.TotalColumns != 3 {
		t.Fatalf("expected 3 columns, got %d", ctx.TotalColumns)
	}

	got := readFile(t, output)
	want := "id,name,age\n1,bob,30\n2,alice,25\n3,carl,40\n4,dan,10\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	entries, _ := filepath.Glob(filepath.Join(dir, "tmp_parts_*"))
	if len(entries) != 0 {
		t.Fatalf("expected temp dir to be cleaned up, found %v", entries)
	}
}

func TestRunWithFilterAndMalformedRow(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.csv")
	logPath := filepath.Join(dir, "out.csv.log")
	writeFile(t, input, "id,name,age\n1,bob,30\n2,alice\n3,carl,40\n")

	one := 1
	_, err := Run(Options{
		InputPath:        input,
		OutputPath:       output,
		LogPath:          logPath,
		ColumnsSpec:      "*",
		FilterExpression: "age>28",
		Parts:            &one,
	})
	if err != nil {
		t.Fatal(err)
	}

	got := readFile(t, output)
	want := "id,name,age\n1,bob,30\n3,carl,40\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	logContents := readFile(t, logPath)
	if logContents == "" {
		t.Fatal("expected malformed row to be logged")
	}
}

func TestResolveNumPartsDefaultsToCPUs(t *testing.T) {
	n := ResolveNumParts(nil)
	if n < 1 {
		t.Fatalf("expected at least 1, got %d", n)
	}
	zero := 0
	n2 := ResolveNumParts(&zero)
	if n2 != n {
		t.Fatalf("expected non-positive override to fall back to CPU count")
	}
}
