package importer

import (
	"context"
	"sync"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// WorkerPool runs upsert tasks concurrently so a large catalog import
// is not bound by per-row round trips.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers and returns the result channel. The channel
// is bounded, so callers submitting more tasks than the buffer holds
// must consume results concurrently or the workers stall.
func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	out := make(chan Result, p.workers*64)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for t := range p.tasks {
				select {
				case <-ctx.Done():
					out <- Result{Err: ctx.Err()}
					continue
				default:
				}
				out <- Result{Err: t(ctx)}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
