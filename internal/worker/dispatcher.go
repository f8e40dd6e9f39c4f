package worker

import (
	"sync"

	"promosync/internal/logger"
)

// Task is one unit of asynchronous work, typically a job runner.
type Task interface {
	Run()
}

// Dispatcher executes submitted tasks on a fixed pool of workers. Each job is
// processed by exactly one worker, so a job's record only ever has a single
// writer; distinct jobs may run concurrently on different workers.
type Dispatcher struct {
	tasks   chan Task
	workers int
	wg      sync.WaitGroup
	logger  *logger.Logger
}

func NewDispatcher(workers, queueSize int, logger *logger.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		tasks:   make(chan Task, queueSize),
		workers: workers,
		logger:  logger,
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for task := range d.tasks {
				task.Run()
			}
		}()
	}
	d.logger.Info("Dispatcher started with %d workers", d.workers)
}

// Submit enqueues a task. Blocks when the queue is full rather than dropping
// the job.
func (d *Dispatcher) Submit(task Task) {
	d.tasks <- task
}

// Stop closes the queue and waits for in-flight tasks to finish.
func (d *Dispatcher) Stop() {
	d.logger.Info("Stopping dispatcher...")
	close(d.tasks)
	d.wg.Wait()
}
