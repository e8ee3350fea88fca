package memory

import "runtime"

func numCPU() int {
	return runtime.NumCPU()
}
