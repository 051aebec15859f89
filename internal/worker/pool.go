package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nephila016/emailcanon/internal/debug"
	"github.com/nephila016/emailcanon/internal/inspector"
)

// Job represents an inspection job
type Job struct {
	Email string
	Index int
}

// Output pairs a result with the index of the job that produced it
type Output struct {
	Index  int
	Result *inspector.Result
}

// Pool manages concurrent workers
type Pool struct {
	workers   int
	inspector *inspector.Inspector

	// Channels
	jobs    chan Job
	results chan Output

	// State
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	processed int64
	invalid   int64
	malformed int64

	// Callbacks
	onResult func(*inspector.Result)
}

// PoolConfig holds pool configuration
type PoolConfig struct {
	Workers    int
	BufferSize int
}

// DefaultPoolConfig returns default configuration
func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		Workers:    4,
		BufferSize: 100,
	}
}

// NewPool creates a new worker pool bound to ctx
func NewPool(ctx context.Context, in *inspector.Inspector, config *PoolConfig) *Pool {
	if config == nil {
		config = DefaultPoolConfig()
	}
	if config.Workers < 1 {
		config.Workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:   config.Workers,
		inspector: in,
		jobs:      make(chan Job, config.BufferSize),
		results:   make(chan Output, config.BufferSize),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// SetCallback sets the function called after each result is produced. It
// runs on worker goroutines and must be safe for concurrent use.
func (p *Pool) SetCallback(onResult func(*inspector.Result)) {
	p.onResult = onResult
}

// Start starts the worker pool
func (p *Pool) Start() {
	log := debug.GetLogger()
	log.Info("POOL", "Starting %d workers", p.workers)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Submit submits a job to the pool. It returns false once the pool is
// cancelled.
func (p *Pool) Submit(email string, index int) bool {
	select {
	case p.jobs <- Job{Email: email, Index: index}:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Results returns the results channel
func (p *Pool) Results() <-chan Output {
	return p.results
}

// Close closes the job channel and waits for workers to finish
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
	p.cancel()
}

// Stop cancels the pool; workers exit without draining the queue
func (p *Pool) Stop() {
	p.cancel()
}

func (p *Pool) Processed() int64 {
	return atomic.LoadInt64(&p.processed)
}

func (p *Pool) Invalid() int64 {
	return atomic.LoadInt64(&p.invalid)
}

func (p *Pool) Malformed() int64 {
	return atomic.LoadInt64(&p.malformed)
}

// worker processes jobs from the queue
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	log := debug.GetLogger()
	log.Detail("WORKER", "Worker %d started", id)

	localProcessed := 0

	for {
		select {
		case job, ok := <-p.jobs:
			if !ok {
				log.Detail("WORKER", "Worker %d shutting down (processed %d)", id, localProcessed)
				return
			}

			result := p.inspector.Inspect(job.Email)

			atomic.AddInt64(&p.processed, 1)
			switch result.Status {
			case inspector.StatusInvalid:
				atomic.AddInt64(&p.invalid, 1)
			case inspector.StatusMalformed:
				atomic.AddInt64(&p.malformed, 1)
			}

			select {
			case p.results <- Output{Index: job.Index, Result: result}:
			case <-p.ctx.Done():
				return
			}

			if p.onResult != nil {
				p.onResult(result)
			}

			localProcessed++

		case <-p.ctx.Done():
			log.Detail("WORKER", "Worker %d cancelled", id)
			return
		}
	}
}

// ProcessAll starts the pool, inspects every address and returns results
// in input order. Duplicate inputs each get their own result. The returned
// slice is shorter than emails only if the pool was cancelled.
func (p *Pool) ProcessAll(emails []string) []*inspector.Result {
	indexed := make([]*inspector.Result, len(emails))

	// Start result collector
	done := make(chan struct{})
	go func() {
		for out := range p.results {
			indexed[out.Index] = out.Result
		}
		close(done)
	}()

	p.Start()
	for i, email := range emails {
		if !p.Submit(email, i) {
			break
		}
	}
	p.Close()
	<-done

	results := make([]*inspector.Result, 0, len(emails))
	for _, r := range indexed {
		if r != nil {
			results = append(results, r)
		}
	}
	return results
}

// Stats holds pool statistics
type Stats struct {
	Processed int64
	Invalid   int64
	Malformed int64
	Duration  time.Duration
	Rate      float64 // addresses per second
}

// GetStats returns current statistics
func (p *Pool) GetStats(startTime time.Time) *Stats {
	processed := p.Processed()
	duration := time.Since(startTime)

	rate := float64(0)
	if duration.Seconds() > 0 {
		rate = float64(processed) / duration.Seconds()
	}

	return &Stats{
		Processed: processed,
		Invalid:   p.Invalid(),
		Malformed: p.Malformed(),
		Duration:  duration,
		Rate:      rate,
	}
}
