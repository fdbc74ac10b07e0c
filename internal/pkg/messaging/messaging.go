package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrClosed is returned when publishing through a closed client.
var ErrClosed = errors.New("pkgmessage: client is closed")

// Messaging is a broker-agnostic client that can publish messages.
type Messaging interface {
	io.Closer

	Publisher
}

// Publisher publishes messages to a destination (topic/subject).
type Publisher interface {
	// Publish sends a message to the destination.
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)
}

// OutgoingMessage represents a broker-agnostic message to be published.
type OutgoingMessage struct {
	// Body is the message payload.
	Body []byte

	// Headers support arbitrary binary values and duplicate keys.
	Headers []Header
}

// Header is a key/value pair used for message headers.
type Header struct {
	// Key is the header name.
	Key string
	// Value is the header value.
	Value []byte
}

// PublishResult carries optional broker-specific publish metadata.
type PublishResult struct {
	// Destination is the topic/subject the message was sent to.
	Destination string

	// Attempts is how many publish attempts were made.
	Attempts int

	// Timestamp is when the broker accepted the message.
	Timestamp time.Time
}
