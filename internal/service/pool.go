package service

import (
	"context"
	"sync"

	"kurosuwado/internal/domain"
)

type genJob struct {
	ctx   context.Context
	req   GenerateRequest
	reply chan<- genResult
}

type genResult struct {
	puzzle *domain.Puzzle
	stats  GenerateStats
	err    error
}

// Pool dispatches Generate calls onto a fixed set of worker goroutines, so
// a request-serving goroutine on the HTTP path never blocks on synthesis
// directly.
type Pool struct {
	gen  *Generator
	jobs chan genJob
	wg   sync.WaitGroup
}

// NewPool starts a Pool with workers goroutines draining gen's work.
func NewPool(gen *Generator, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{gen: gen, jobs: make(chan genJob, workers*4)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		puzzle, stats, err := p.gen.Generate(job.ctx, job.req)
		job.reply <- genResult{puzzle: puzzle, stats: stats, err: err}
	}
}

// Submit enqueues req and blocks until the worker handling it returns, or
// ctx is cancelled first.
func (p *Pool) Submit(ctx context.Context, req GenerateRequest) (*domain.Puzzle, GenerateStats, error) {
	reply := make(chan genResult, 1)
	select {
	case p.jobs <- genJob{ctx: ctx, req: req, reply: reply}:
	case <-ctx.Done():
		return nil, GenerateStats{}, ctx.Err()
	}

	select {
	case res := <-reply:
		return res.puzzle, res.stats, res.err
	case <-ctx.Done():
		return nil, GenerateStats{}, ctx.Err()
	}
}

// Close stops accepting new work and waits for in-flight jobs to drain.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}
