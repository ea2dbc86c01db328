package renderer

import (
	"sync"
)

// lineTask asks a worker to render one scanline
type lineTask struct {
	line int
}

// WorkerPool runs scanline tasks on a fixed set of workers
type WorkerPool struct {
	taskQueue  chan lineTask
	workers    []*Worker
	numWorkers int
	wg         sync.WaitGroup
}

// Worker handles individual scanline tasks
type Worker struct {
	ID        int
	taskQueue chan lineTask
	render    func(worker int, task lineTask)
}

// NewWorkerPool creates a pool of numWorkers workers that run render for
// every submitted task
func NewWorkerPool(numWorkers, queueSize int, render func(worker int, task lineTask)) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:  make(chan lineTask, queueSize),
		numWorkers: numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:        i,
			taskQueue: wp.taskQueue,
			render:    render,
		})
	}
	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued tasks to finish and shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
}

// SubmitTask queues a task, blocking while the queue is full
func (wp *WorkerPool) SubmitTask(task lineTask) {
	wp.taskQueue <- task
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	for task := range w.taskQueue {
		w.render(w.ID, task)
	}
}
