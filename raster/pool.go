// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

import (
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// workerPool is a fixed-size pool of goroutines draining a
// single FIFO job queue. submit is safe for concurrent use by
// multiple producers; stop drains the queue and blocks until
// every worker has exited.
type workerPool struct {
	jobs chan any
	fn   func(job any)
	g    *errgroup.Group
	n    int
}

// newWorkerPool starts n workers, each running fn for every
// submitted job. n must be greater than zero.
func newWorkerPool(n int, fn func(job any)) *workerPool {
	if n <= 0 {
		panic("raster: worker pool size must be positive")
	}
	p := &workerPool{
		jobs: make(chan any, n*4),
		fn:   fn,
		n:    n,
	}
	var g errgroup.Group
	p.g = &g
	for i := 0; i < n; i++ {
		p.g.Go(func() error {
			for job := range p.jobs {
				p.fn(job)
			}
			return nil
		})
	}
	log.Printf("raster: worker pool started with %d workers", n)
	return p
}

// defaultWorkerCount returns the number of workers a
// multithreaded rasterizer uses when none is specified:
// the number of logical processors available.
func defaultWorkerCount() int { return runtime.GOMAXPROCS(-1) }

// submit enqueues job for processing by some worker. It is
// safe to call from multiple goroutines.
func (p *workerPool) submit(job any) { p.jobs <- job }

// stop closes the job queue and blocks until every worker
// has drained it and exited.
func (p *workerPool) stop() {
	close(p.jobs)
	p.g.Wait()
	log.Printf("raster: worker pool stopped")
}
