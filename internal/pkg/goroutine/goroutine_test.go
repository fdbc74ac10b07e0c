package goroutine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_CollectsErrors(t *testing.T) {
	g := NewManager(4)
	errA := errors.New("a")

	var ran atomic.Int32
	g.Go(context.Background(), func(context.Context) error {
		ran.Add(1)
		return errA
	})
	g.Go(context.Background(), func(context.Context) error {
		ran.Add(1)
		return nil
	})

	err := g.Wait()
	assert.ErrorIs(t, err, errA)
	assert.EqualValues(t, 2, ran.Load())
}

func TestManager_RecoversPanics(t *testing.T) {
	g := NewManager(1)
	g.Go(context.Background(), func(context.Context) error {
		panic("boom")
	})

	assert.ErrorContains(t, g.Wait(), "goroutine: panic: boom")
}

func TestManager_Limit(t *testing.T) {
	g := NewManager(1)
	release := make(chan struct{})
	started := make(chan struct{})

	g.Go(context.Background(), func(context.Context) error {
		close(started)
		<-release
		return nil
	})
	<-started

	var dropped atomic.Bool
	g.Go(context.Background(), func(context.Context) error {
		dropped.Store(true)
		return nil
	})

	close(release)
	assert.NoError(t, g.Wait())
	assert.False(t, dropped.Load())
}

func TestManager_ClosedAndCanceled(t *testing.T) {
	g := NewManager(0)
	assert.NoError(t, g.Wait())

	var ran atomic.Bool
	g.Go(context.Background(), func(context.Context) error {
		ran.Store(true)
		return nil
	})
	assert.False(t, ran.Load())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g2 := NewManager(1)
	g2.Go(ctx, func(context.Context) error {
		ran.Store(true)
		return errors.New("should not run")
	})
	assert.NoError(t, g2.Wait())
	assert.False(t, ran.Load())

	var nilManager *Manager
	nilManager.Go(context.Background(), func(context.Context) error { return nil })
	assert.NoError(t, nilManager.Wait())
}
