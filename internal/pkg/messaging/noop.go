package messaging

import (
	"context"
	"time"

	"go.uber.org/atomic"
)

// Noop discards every message. It is used when no broker is configured.
type Noop struct {
	published *atomic.Int64
	closed    *atomic.Bool
}

// NewNoop returns a publisher that drops messages.
func NewNoop() *Noop {
	return &Noop{
		published: atomic.NewInt64(0),
		closed:    atomic.NewBool(false),
	}
}

// Publish drops msg.
func (n *Noop) Publish(ctx context.Context, destination string, _ OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if n.closed.Load() {
		return PublishResult{}, ErrClosed
	}

	n.published.Inc()

	return PublishResult{Destination: destination, Attempts: 1, Timestamp: time.Now()}, nil
}

// Published returns how many messages were dropped.
func (n *Noop) Published() int64 {
	return n.published.Load()
}

// Close marks the publisher closed.
func (n *Noop) Close() error {
	n.closed.Store(true)
	return nil
}
