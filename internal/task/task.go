// Package task runs asynchronous operations on a bounded worker pool and
// hands back a result-or-failure value that callers can await.
package task

import (
	"context"
	"fmt"
	"sync"
)

// Pool bounds the number of tasks running at once
type Pool struct {
	workers chan struct{}
	wg      sync.WaitGroup
}

// NewPool creates a pool with maxWorkers slots (at least one)
func NewPool(maxWorkers int) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Pool{workers: make(chan struct{}, maxWorkers)}
}

// Wait blocks until every started task has finished or ctx is done
func (p *Pool) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Task is an in-flight operation producing a T or an error
type Task[T any] struct {
	done  chan struct{}
	mu    sync.Mutex
	value T
	err   error
	hooks []func(T, error)
}

// Go starts fn on the pool. fn runs on a context that keeps ctx's values but
// not its cancellation, so the operation outlives the caller that started it.
func Go[T any](ctx context.Context, p *Pool, fn func(ctx context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	detached := context.WithoutCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.workers <- struct{}{}
		defer func() { <-p.workers }()

		var (
			value T
			err   error
		)
		func() {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("task panicked: %v", r)
				}
			}()
			value, err = fn(detached)
		}()
		t.finish(value, err)
	}()
	return t
}

func (t *Task[T]) finish(value T, err error) {
	t.mu.Lock()
	t.value, t.err = value, err
	hooks := t.hooks
	t.hooks = nil
	close(t.done)
	t.mu.Unlock()

	for _, h := range hooks {
		h(value, err)
	}
}

// Done is closed when the task has finished
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Await waits for the result. If ctx ends first the task keeps running and
// ctx's error is returned.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// OnComplete registers fn to run with the result. If the task has already
// finished fn runs immediately.
func (t *Task[T]) OnComplete(fn func(T, error)) {
	t.mu.Lock()
	select {
	case <-t.done:
		value, err := t.value, t.err
		t.mu.Unlock()
		fn(value, err)
		return
	default:
	}
	t.hooks = append(t.hooks, fn)
	t.mu.Unlock()
}
