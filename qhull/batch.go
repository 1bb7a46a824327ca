package qhull

import (
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Result is the outcome of one build in a batch.
type Result struct {
	Hull *Hull
	Err  error
}

// BuildAll builds one hull per point cloud on a pool of workers.
// Results are in input order. workers <= 0 uses runtime.NumCPU().
// Every cloud is built independently, so no state is shared between workers.
func BuildAll(clouds [][]mgl64.Vec3, workers int, opts ...Option) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = max(1, min(workers, len(clouds)))

	results := make([]Result, len(clouds))
	jobs := make([]int, len(clouds))
	for i := range jobs {
		jobs[i] = i
	}

	task(workers, jobs, func(i int) {
		h, err := Build(clouds[i], opts...)
		results[i] = Result{Hull: h, Err: err}
	})

	return results
}

// task splits data into contiguous chunks and runs fn on each element, one
// goroutine per chunk.
func task[T any](workersCount int, data []T, fn func(data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}
