// Package work provides a bounded worker pool for CPU-bound tasks, plus a
// generic unit tracker for correlating submissions with results.
package work

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ErrQueueFull is returned by Submit when the pool queue is at capacity.
var ErrQueueFull = errors.New("work queue full")

// Handler executes one task. Payload and output types are task-specific.
type Handler func(ctx context.Context, payload any) (any, error)

// Unit is one submission to the pool.
type Unit struct {
	ID      string
	Task    string
	Payload any
}

// Result is the outcome of one unit.
type Result struct {
	UnitID  string
	Success bool
	Output  any
	Err     error
}

// Pool runs tasks on a fixed set of worker goroutines. All workers pull from
// a single shared queue; load balancing falls out of channel semantics.
type Pool struct {
	name        string
	logger      *slog.Logger
	workerCount int

	queue   chan *Unit
	results chan Result

	handlers map[string]Handler
	mu       sync.RWMutex

	inFlight atomic.Int32
}

// PoolConfig configures a new Pool.
type PoolConfig struct {
	Name      string
	Logger    *slog.Logger
	Workers   int // Worker goroutines (default: 1)
	QueueSize int // Queue and results buffer size (default: 1024)
}

// NewPool creates a pool. Start must be called before Submit.
func NewPool(cfg PoolConfig) *Pool {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	name := cfg.Name
	if name == "" {
		name = "work"
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1024
	}

	return &Pool{
		name:        name,
		logger:      logger.With("pool", name, "workers", workers),
		workerCount: workers,
		queue:       make(chan *Unit, queueSize),
		results:     make(chan Result, queueSize),
		handlers:    make(map[string]Handler),
	}
}

// RegisterHandler registers a handler for a task name.
// Must be called before Start.
func (p *Pool) RegisterHandler(task string, handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[task] = handler
	p.logger.Debug("registered task handler", "task", task)
}

// Start launches the worker goroutines. Workers run until ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		go p.worker(ctx, i)
	}
}

// worker processes units from the shared queue.
func (p *Pool) worker(ctx context.Context, id int) {
	p.logger.Debug("worker started", "worker_id", id)
	for {
		select {
		case <-ctx.Done():
			return

		case unit := <-p.queue:
			p.inFlight.Add(1)
			result := p.process(ctx, unit)
			p.inFlight.Add(-1)

			select {
			case p.results <- result:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Submit adds a unit to the queue without blocking.
func (p *Pool) Submit(unit *Unit) error {
	select {
	case p.queue <- unit:
		p.logger.Debug("accepted unit", "unit_id", unit.ID, "task", unit.Task, "queue_len", len(p.queue))
		return nil
	default:
		p.logger.Warn("queue full", "unit_id", unit.ID, "task", unit.Task)
		return fmt.Errorf("%w: %s", ErrQueueFull, p.name)
	}
}

// Results returns the channel completed units are delivered on.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Status is a point-in-time snapshot of pool state.
type Status struct {
	Name       string `json:"name"`
	Workers    int    `json:"workers"`
	InFlight   int    `json:"in_flight"`
	QueueDepth int    `json:"queue_depth"`
}

// Status returns the current pool status.
func (p *Pool) Status() Status {
	return Status{
		Name:       p.name,
		Workers:    p.workerCount,
		InFlight:   int(p.inFlight.Load()),
		QueueDepth: len(p.queue),
	}
}

// process executes one unit.
func (p *Pool) process(ctx context.Context, unit *Unit) Result {
	p.mu.RLock()
	handler, ok := p.handlers[unit.Task]
	p.mu.RUnlock()

	if !ok {
		return Result{
			UnitID: unit.ID,
			Err:    fmt.Errorf("no handler registered for task: %s", unit.Task),
		}
	}

	output, err := handler(ctx, unit.Payload)
	if err != nil {
		p.logger.Debug("unit failed", "unit_id", unit.ID, "task", unit.Task, "error", err)
		return Result{UnitID: unit.ID, Err: err}
	}

	p.logger.Debug("unit completed", "unit_id", unit.ID, "task", unit.Task)
	return Result{UnitID: unit.ID, Success: true, Output: output}
}
