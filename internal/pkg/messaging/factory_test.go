package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDriver(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		for _, driver := range []string{"", "none", " NONE "} {
			client, err := NewFromDriver(driver, FactoryOptions{})
			require.NoError(t, err, driver)

			noop, ok := client.(*Noop)
			require.True(t, ok, driver)

			_, err = client.Publish(context.Background(), "identity.form_validated", OutgoingMessage{Body: []byte("{}")})
			require.NoError(t, err)
			assert.EqualValues(t, 1, noop.Published())
			require.NoError(t, client.Close())
		}
	})

	t.Run("none with retry", func(t *testing.T) {
		client, err := NewFromDriver("none", FactoryOptions{Retry: RetryConfig{Attempts: 3}})
		require.NoError(t, err)
		_, ok := client.(*retryMessaging)
		assert.True(t, ok)
	})

	t.Run("nats without url", func(t *testing.T) {
		_, err := NewFromDriver("nats", FactoryOptions{})
		assert.ErrorIs(t, err, ErrNATSURLRequired)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewFromDriver("carrier-pigeon", FactoryOptions{})
		assert.ErrorIs(t, err, ErrUnknownDriver)
	})
}

func TestNoop_Closed(t *testing.T) {
	n := NewNoop()
	require.NoError(t, n.Close())

	_, err := n.Publish(context.Background(), "s", OutgoingMessage{})
	assert.ErrorIs(t, err, ErrClosed)
	assert.Zero(t, n.Published())
}
