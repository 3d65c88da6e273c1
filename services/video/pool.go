package video

import (
	"context"

	"github.com/sirupsen/logrus"
)

// workerPool bounds the number of concurrent blocking upstream calls.
// Request goroutines submit a task and wait for its completion, so other
// requests keep being served while a worker is blocked on the network.
type workerPool struct {
	tasks   chan poolTask
	quit    chan struct{}
	workers int
}

type poolTask struct {
	ctx  context.Context
	run  func(ctx context.Context) error
	done chan error
}

func newWorkerPool(workers, queueSize int) *workerPool {
	return &workerPool{
		tasks:   make(chan poolTask, queueSize),
		quit:    make(chan struct{}),
		workers: workers,
	}
}

func (p *workerPool) Start() {
	for i := 0; i < p.workers; i++ {
		go p.worker(i)
	}
}

func (p *workerPool) worker(id int) {
	log := logrus.WithField("worker_id", id)
	log.Debug("Worker started")

	for {
		select {
		case <-p.quit:
			log.Debug("Worker shutting down")
			return
		case task := <-p.tasks:
			if err := task.ctx.Err(); err != nil {
				task.done <- err
				continue
			}
			task.done <- task.run(task.ctx)
		}
	}
}

// Run executes fn on a pool worker and waits for it to finish. The caller
// is released when its context ends, even if the task is still queued.
func (p *workerPool) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	task := poolTask{
		ctx:  ctx,
		run:  fn,
		done: make(chan error, 1),
	}

	select {
	case p.tasks <- task:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-task.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *workerPool) Close() {
	close(p.quit)
}
