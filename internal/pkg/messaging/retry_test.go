package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyMessaging struct {
	failures int
	calls    int
	err      error
}

func (f *flakyMessaging) Publish(_ context.Context, destination string, _ OutgoingMessage) (PublishResult, error) {
	f.calls++
	if f.calls <= f.failures {
		return PublishResult{}, f.err
	}
	return PublishResult{Destination: destination, Attempts: 1}, nil
}

func (f *flakyMessaging) Close() error { return nil }

func TestWithRetry(t *testing.T) {
	cfg := RetryConfig{Attempts: 3, Base: time.Millisecond, Cap: time.Millisecond}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		inner := &flakyMessaging{failures: 2, err: errors.New("no responders")}

		res, err := WithRetry(inner, cfg).Publish(context.Background(), "s", OutgoingMessage{})
		require.NoError(t, err)
		assert.Equal(t, 3, inner.calls)
		assert.Equal(t, 3, res.Attempts)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		cause := errors.New("no responders")
		inner := &flakyMessaging{failures: 10, err: cause}

		_, err := WithRetry(inner, cfg).Publish(context.Background(), "s", OutgoingMessage{})
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 3, inner.calls)
	})

	t.Run("closed client is not retried", func(t *testing.T) {
		inner := &flakyMessaging{failures: 10, err: ErrClosed}

		_, err := WithRetry(inner, cfg).Publish(context.Background(), "s", OutgoingMessage{})
		assert.ErrorIs(t, err, ErrClosed)
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("single attempt returns the client unchanged", func(t *testing.T) {
		inner := &flakyMessaging{}
		assert.Same(t, inner, WithRetry(inner, RetryConfig{Attempts: 1}))
	})
}
