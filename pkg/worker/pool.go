// Package worker provides a bounded goroutine pool for per-volume analysis.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

// ErrPoolClosed is returned when submitting to a released pool.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a context-aware task function.
type Task func(ctx context.Context)

// Pool wraps ants.Pool with context-aware submission and completion tracking.
type Pool struct {
	pool *ants.Pool
	name string
	wg   sync.WaitGroup
}

// NewPool creates a pool running at most size tasks concurrently.
// Submission blocks while all workers are busy.
func NewPool(name string, size int) (*Pool, error) {
	if size < 1 {
		size = 1
	}

	panicHandler := func(p interface{}) {
		log.Error().
			Str("pool", name).
			Interface("panic", p).
			Msg("worker panic recovered")
	}

	antsPool, err := ants.NewPool(size,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second),
	)
	if err != nil {
		return nil, err
	}

	return &Pool{pool: antsPool, name: name}, nil
}

// Submit queues a task. If ctx is already cancelled, ctx.Err() is returned and the task
// is not queued. A queued task whose context is cancelled before it starts is skipped.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	p.wg.Add(1)
	err := p.pool.Submit(func() {
		defer p.wg.Done()
		select {
		case <-ctx.Done():
			log.Debug().Str("pool", p.name).Err(ctx.Err()).Msg("task skipped: context cancelled")
			return
		default:
		}
		task(ctx)
	})
	if err != nil {
		p.wg.Done()
		if errors.Is(err, ants.ErrPoolClosed) {
			return ErrPoolClosed
		}
		return err
	}
	return nil
}

// Wait blocks until every submitted task has finished or been skipped.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Release waits for running tasks, then frees the pool's workers.
func (p *Pool) Release() {
	p.wg.Wait()
	const releaseTimeout = 30 * time.Second
	if err := p.pool.ReleaseTimeout(releaseTimeout); err != nil {
		log.Warn().Str("pool", p.name).Err(err).Msg("worker pool release timeout")
	}
}

// Running returns the number of tasks currently executing.
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return p.pool.Cap()
}
