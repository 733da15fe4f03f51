package renderer

import (
	"math/rand"
	"sync"
)

// RowTask represents a scanline rendering task for the worker pool
type RowTask struct {
	Row int        // Scanline index, 0 at the top of the image
	Rng *rand.Rand // Per-row PRNG for deterministic ordering
}

// WorkerPool manages parallel scanline rendering. Every worker writes into
// the shared pixel buffer; rows never overlap, so no locking is needed.
type WorkerPool struct {
	taskQueue  chan RowTask
	raytracer  *Raytracer
	pixels     []byte
	numWorkers int
	wg         sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(rt *Raytracer, pixels []byte, numWorkers int) *WorkerPool {
	return &WorkerPool{
		taskQueue:  make(chan RowTask, rt.height),
		raytracer:  rt,
		pixels:     pixels,
		numWorkers: numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Submit queues a scanline task
func (wp *WorkerPool) Submit(task RowTask) {
	wp.taskQueue <- task
}

// Stop signals that no more tasks are coming and waits for the workers to drain the queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.raytracer.renderRow(task.Row, wp.pixels, task.Rng)
	}
}
