package memory

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunSelectAllNoFilter(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.csv")
	logPath := filepath.Join(dir, "out.csv.log")
	writeFile(t, input, "id,name,age\n1,bob,30\n2,alice,25\n")

	_, err := Run(Options{
		InputPath:   input,
		OutputPath:  output,
		LogPath:     logPath,
		ColumnsSpec: "*",
	})
	require.NoError(t, err)

	require.Equal(t, "id,name,age\n1,bob,30\n2,alice,25\n", readFile(t, output))
}

func TestRunPreservesOrderAcrossBatches(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.csv")
	logPath := filepath.Join(dir, "out.csv.log")

	var b []byte
	b = append(b, "id\n"...)
	const n = BatchLineSize*2 + 37
	for i := 1; i <= n; i++ {
		b = append(b, []byte(strconv.Itoa(i)+"\n")...)
	}
	writeFile(t, input, string(b))

	four := 4
	_, err := Run(Options{
		InputPath:   input,
		OutputPath:  output,
		LogPath:     logPath,
		ColumnsSpec: "*",
		Parts:       &four,
	})
	require.NoError(t, err)

	want := "id\n"
	for i := 1; i <= n; i++ {
		want += strconv.Itoa(i) + "\n"
	}
	require.Equal(t, want, readFile(t, output), "output order must match input order across batch boundaries")
}

func TestRunMalformedRowLoggedAndDropped(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.csv")
	logPath := filepath.Join(dir, "out.csv.log")
	writeFile(t, input, "id,name,age\n1,bob,30\n2,alice\n3,carl,40\n")

	_, err := Run(Options{
		InputPath:   input,
		OutputPath:  output,
		LogPath:     logPath,
		ColumnsSpec: "*",
	})
	require.NoError(t, err)

	require.Equal(t, "id,name,age\n1,bob,30\n3,carl,40\n", readFile(t, output))
	require.NotEmpty(t, readFile(t, logPath), "expected malformed row to be logged")
}
