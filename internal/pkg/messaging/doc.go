// Package messaging provides a broker-agnostic API for publishing messages.
//
// Use-case code depends on Publisher only, so the broker behind it (NATS, or
// nothing at all) can be swapped from configuration.
package messaging
