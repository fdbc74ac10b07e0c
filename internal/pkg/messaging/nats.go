package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/atomic"
)

var (
	// ErrNATSSubjectRequired is returned when the subject is empty.
	ErrNATSSubjectRequired = errors.New("pkgmessage: nats subject is required")
	// ErrNATSURLRequired is returned when the NATS server URL is missing.
	ErrNATSURLRequired = errors.New("pkgmessage: nats url is required")
)

// NATSConfig configures the NATS implementation.
type NATSConfig struct {
	// URL is the NATS server address.
	URL string

	// Name identifies this connection on the server.
	Name string

	// Options are passed to the NATS client.
	Options []nats.Option
}

// natsConn is the subset of *nats.Conn used for publishing.
type natsConn interface {
	PublishMsg(m *nats.Msg) error
	FlushWithContext(ctx context.Context) error
	Drain() error
	Close()
}

// NATS is a messaging implementation backed by core NATS.
type NATS struct {
	conn   natsConn
	closed *atomic.Bool
	now    func() time.Time
}

// NewNATS connects to cfg.URL.
func NewNATS(cfg NATSConfig) (*NATS, error) {
	if cfg.URL == "" {
		return nil, ErrNATSURLRequired
	}

	opts := cfg.Options
	if cfg.Name != "" {
		opts = append([]nats.Option{nats.Name(cfg.Name)}, opts...)
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("pkgmessage: nats connect: %w", err)
	}

	return newNATS(conn), nil
}

func newNATS(conn natsConn) *NATS {
	return &NATS{
		conn:   conn,
		closed: atomic.NewBool(false),
		now:    time.Now,
	}
}

// Close drains and closes the NATS connection. It is safe to call twice.
func (n *NATS) Close() error {
	if n.closed.Swap(true) {
		return nil
	}

	err := n.conn.Drain()
	n.conn.Close()
	if err != nil {
		return fmt.Errorf("pkgmessage: nats drain: %w", err)
	}

	return nil
}

// Publish sends a message to a NATS subject and waits for the server to
// acknowledge the flush.
func (n *NATS) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if n.closed.Load() {
		return PublishResult{}, ErrClosed
	}
	if destination == "" {
		return PublishResult{}, ErrNATSSubjectRequired
	}

	nmsg := nats.NewMsg(destination)
	nmsg.Data = msg.Body

	for _, h := range msg.Headers {
		if h.Key == "" || len(h.Value) == 0 {
			continue
		}
		nmsg.Header.Add(h.Key, string(h.Value))
	}

	if err := n.conn.PublishMsg(nmsg); err != nil {
		return PublishResult{}, fmt.Errorf("pkgmessage: nats publish: %w", err)
	}
	if err := n.conn.FlushWithContext(ctx); err != nil {
		return PublishResult{}, fmt.Errorf("pkgmessage: nats flush: %w", err)
	}

	return PublishResult{
		Destination: destination,
		Attempts:    1,
		Timestamp:   n.now(),
	}, nil
}
