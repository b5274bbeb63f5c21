package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/spacesedan/reviewpulse/internal/aspects"
	"github.com/spacesedan/reviewpulse/internal/models"
)

// Job is one analysis request for the Runner.
type Job struct {
	Reviews  []models.Review
	Industry aspects.Industry
}

// Result delivers the report or the configuration error for one Job.
type Result struct {
	Report *models.AnalysisReport
	Err    error
}

type task struct {
	ctx context.Context
	job Job
	out chan Result
}

// Runner dispatches CPU-bound pipeline runs onto a fixed pool of worker
// goroutines so a request-handling loop never blocks on analysis. The
// pipeline stays synchronous and stateless; the Runner is the host-side
// offload wrapper around it.
type Runner struct {
	pipeline *Pipeline
	tasks    chan task
	wg       sync.WaitGroup

	closeOnce sync.Once
}

// NewRunner starts workers goroutines over the given pipeline.
func NewRunner(p *Pipeline, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}

	r := &Runner{
		pipeline: p,
		tasks:    make(chan task),
	}

	r.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go r.work(i)
	}
	return r
}

// Submit queues a job and returns the channel its Result arrives on.
// The channel is buffered; the caller may abandon it. A canceled
// context before pickup yields the context error instead of a report.
// Submit must not be called after Close.
func (r *Runner) Submit(ctx context.Context, job Job) <-chan Result {
	out := make(chan Result, 1)
	r.tasks <- task{ctx: ctx, job: job, out: out}
	return out
}

// Close stops accepting jobs and waits for in-flight runs to finish.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		close(r.tasks)
	})
	r.wg.Wait()
}

func (r *Runner) work(id int) {
	defer r.wg.Done()

	for t := range r.tasks {
		if err := t.ctx.Err(); err != nil {
			t.out <- Result{Err: err}
			continue
		}

		report, err := r.pipeline.RunFullAnalysis(t.job.Reviews, t.job.Industry)
		if err != nil {
			slog.Error("[Runner] Analysis failed",
				slog.Int("worker", id),
				slog.String("error", err.Error()))
		}
		t.out <- Result{Report: report, Err: err}
	}
}
