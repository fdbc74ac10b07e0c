package messaging

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DriverNATS selects the NATS backend.
	DriverNATS = "nats"
	// DriverNone discards every message.
	DriverNone = "none"
)

// ErrUnknownDriver indicates an unsupported messaging driver.
var ErrUnknownDriver = errors.New("pkgmessage: unknown driver")

// FactoryOptions groups config for supported messaging backends.
type FactoryOptions struct {
	// NATS provides configuration for the NATS driver.
	NATS NATSConfig
	// Retry wraps the selected driver when Attempts is greater than one.
	Retry RetryConfig
}

// NewFromDriver constructs a Messaging implementation by driver name.
// An empty driver is treated as DriverNone.
func NewFromDriver(driver string, opts FactoryOptions) (Messaging, error) {
	var (
		client Messaging
		err    error
	)

	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverNATS:
		client, err = NewNATS(opts.NATS)
	case DriverNone, "":
		client = NewNoop()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
	if err != nil {
		return nil, err
	}

	return WithRetry(client, opts.Retry), nil
}
