package com

import (
	"context"
	"sync"
)

// Future is the reply slot of a request. It is completed at most once, by
// Net.Reply. Polled callers use Done/Value between simulator steps; goroutine
// based callers block on Await.
type Future struct {
	mu    sync.Mutex
	ch    chan struct{}
	value any
	done  bool
}

func newFuture() *Future {
	return &Future{ch: make(chan struct{})}
}

func (f *Future) complete(v any) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return false
	}
	f.value = v
	f.done = true
	close(f.ch)
	return true
}

// Done reports whether a reply has arrived.
func (f *Future) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Value returns the reply payload and whether it has arrived.
func (f *Future) Value() (any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.done
}

// Await blocks until the reply arrives or ctx is done.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.ch:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
