// Package goroutine runs fire-and-forget background work with a concurrency
// limit, so request handlers can hand off side effects without blocking.
package goroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/shandysiswandi/formguard/internal/pkg/stacktrace"
)

// DefaultMaxGoroutine is multiplied by the CPU count when NewManager
// receives a non-positive limit.
const DefaultMaxGoroutine int = 100

// Manager runs functions in goroutines with a concurrency limit. It collects
// the errors tasks return (panics included) and stops accepting tasks once
// Wait is called.
type Manager struct {
	wg   sync.WaitGroup
	sema chan struct{}

	mu     sync.Mutex
	errs   []error
	closed bool
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = runtime.NumCPU() * DefaultMaxGoroutine
	}

	return &Manager{sema: make(chan struct{}, maxGoroutine)}
}

// Go runs f in a new goroutine. f is dropped with a warning when the manager
// is closed or already at its limit.
func (g *Manager) Go(ctx context.Context, f func(ctx context.Context) error) {
	if g == nil {
		return
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		slog.WarnContext(ctx, "goroutine manager is closed, skipping new goroutine")
		return
	}

	select {
	case g.sema <- struct{}{}:
	default:
		g.mu.Unlock()
		slog.WarnContext(ctx, "maximum goroutine limit reached, failed to start new goroutine")
		return
	}
	g.wg.Add(1)
	g.mu.Unlock()

	go func() {
		defer g.wg.Done()
		defer func() { <-g.sema }()
		defer g.recover(ctx)

		if err := ctx.Err(); err != nil {
			slog.WarnContext(ctx, "goroutine canceled", "because", err)
			return
		}

		if err := f(ctx); err != nil {
			g.addErr(err)
		}
	}()
}

func (g *Manager) recover(ctx context.Context) {
	rvr := recover()
	if rvr == nil {
		return
	}

	stack := debug.Stack()
	if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
		slog.ErrorContext(ctx, "panic occurred in goroutine", "panic", rvr, "stack", paths)
	} else {
		slog.ErrorContext(ctx, "panic occurred in goroutine", "panic", rvr, "stack", string(stack))
	}

	g.addErr(fmt.Errorf("goroutine: panic: %v", rvr))
}

func (g *Manager) addErr(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// Wait closes the manager, blocks until every running task finishes and
// returns the joined task errors.
func (g *Manager) Wait() error {
	if g == nil {
		return nil
	}

	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}
