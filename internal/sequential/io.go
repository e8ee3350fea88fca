package sequential

import "os"

func openInput(path string) (*os.File, error) {
	return os.Open(path)
}

func createOutput(path string) (*os.File, error) {
	return os.Create(path)
}
