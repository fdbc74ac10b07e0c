package messaging

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryConfig controls publish retries.
type RetryConfig struct {
	// Attempts is the total number of tries, including the first one.
	Attempts uint64
	// Base is the first backoff delay.
	Base time.Duration
	// Cap bounds a single backoff delay.
	Cap time.Duration
}

type retryMessaging struct {
	Messaging
	cfg RetryConfig
}

// WithRetry wraps m so that failed publishes are retried with exponential
// backoff. It returns m unchanged when cfg.Attempts is one or less.
func WithRetry(m Messaging, cfg RetryConfig) Messaging {
	if cfg.Attempts <= 1 {
		return m
	}
	if cfg.Base <= 0 {
		cfg.Base = 100 * time.Millisecond
	}
	if cfg.Cap <= 0 {
		cfg.Cap = 2 * time.Second
	}

	return &retryMessaging{Messaging: m, cfg: cfg}
}

func (r *retryMessaging) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	b := retry.NewExponential(r.cfg.Base)
	b = retry.WithCappedDuration(r.cfg.Cap, b)
	b = retry.WithMaxRetries(r.cfg.Attempts-1, b)

	var (
		res      PublishResult
		attempts int
	)
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempts++

		var err error
		res, err = r.Messaging.Publish(ctx, destination, msg)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrClosed) || errors.Is(err, ErrNATSSubjectRequired) {
			return err
		}

		slog.WarnContext(ctx, "publish failed, retrying", "destination", destination, "attempt", attempts, "error", err)
		return retry.RetryableError(err)
	})
	if err != nil {
		return PublishResult{}, err
	}

	res.Attempts = attempts
	return res, nil
}
