package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

type indexedJob struct {
	index int
	job   Job
}

type indexedResult struct {
	index  int
	result Result
}

// Pool manages a bounded set of workers. Results are returned in
// submission order regardless of completion order.
type Pool struct {
	workers    int
	jobQueue   chan indexedJob
	results    chan indexedResult
	collector  *ResultCollector
	collected  chan struct{}
	submitted  int
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
	waitOnce   sync.Once
}

// NewPool creates a new worker pool bound to the parent context.
// Cancelling the parent stops workers from picking up queued jobs.
func NewPool(parent context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if parent == nil {
		parent = context.Background()
	}

	ctx, cancel := context.WithCancel(parent)

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan indexedJob, workers*2),
		results:    make(chan indexedResult, workers*2),
		collector:  NewResultCollector(),
		collected:  make(chan struct{}),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start starts the workers and the result collector
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	go p.collect()
}

// worker is the worker goroutine that processes jobs
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.job.Execute(p.ctx)
			select {
			case p.results <- indexedResult{index: job.index, result: result}:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// collect drains results as they arrive so workers never block on a full channel
func (p *Pool) collect() {
	defer close(p.collected)
	for r := range p.results {
		p.collector.Add(r.index, r.result)
	}
}

// Submit queues a job and returns its index in the result slice.
// It returns -1 without blocking once the pool has been cancelled.
// Submit must not be called concurrently with itself or after Wait.
func (p *Pool) Submit(job Job) int {
	if p.ctx.Err() != nil {
		return -1
	}

	index := p.submitted
	select {
	case <-p.ctx.Done():
		return -1
	case p.jobQueue <- indexedJob{index: index, job: job}:
		p.submitted++
		return index
	}
}

// Wait waits for all submitted jobs and returns their results by submission
// index. Jobs skipped because of cancellation leave a nil entry.
func (p *Pool) Wait() []Result {
	p.waitOnce.Do(func() {
		close(p.jobQueue)
		p.wg.Wait()
		p.closeResults()
		<-p.collected
		p.cancelFunc()
	})
	return p.collector.Results(p.submitted)
}

// Shutdown stops the worker pool immediately
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}

// ResultCollector stores results by index (thread-safe)
type ResultCollector struct {
	results []Result
	mu      sync.Mutex
}

// NewResultCollector creates a new result collector
func NewResultCollector() *ResultCollector {
	return &ResultCollector{
		results: make([]Result, 0),
	}
}

// Add stores the result at the given index, growing the slice as needed
func (c *ResultCollector) Add(index int, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 {
		return
	}
	for len(c.results) <= index {
		c.results = append(c.results, nil)
	}
	c.results[index] = result
}

// Results returns the first n results in index order; missing entries are nil
func (c *ResultCollector) Results(n int) []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Result, n)
	copy(out, c.results)
	return out
}
