// Package lifecycle coordinates startup and shutdown hooks for long-running systems.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ReadinessChecker reports whether startup has completed.
type ReadinessChecker interface {
	Ready() bool
}

// Coordinator runs registered startup hooks concurrently and, on shutdown,
// cancels its context and waits for shutdown hooks to return.
type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc

	startupWg  sync.WaitGroup
	shutdownWg sync.WaitGroup
	ready      atomic.Bool
}

// New creates a Coordinator with a fresh root context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{ctx: ctx, cancel: cancel}
}

// Context is cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup runs fn in its own goroutine. WaitForStartup blocks until all have returned.
func (c *Coordinator) OnStartup(fn func()) {
	c.startupWg.Go(fn)
}

// OnShutdown runs fn in its own goroutine. fn is expected to block on Context().Done().
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdownWg.Go(fn)
}

// WaitForStartup blocks until every startup hook returns, then marks the coordinator ready.
func (c *Coordinator) WaitForStartup() {
	c.startupWg.Wait()
	c.ready.Store(true)
}

func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// Shutdown cancels the context and waits up to timeout for shutdown hooks.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.ready.Store(false)
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}
