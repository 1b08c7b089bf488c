// Package provider abstracts the messaging provider: starting a named
// connection instance, sending text, and receiving typed events.
package provider

import "context"

// Connection states reported by the provider. Anything else is treated as a
// disconnect by the session manager.
const (
	StateOpen       = "open"
	StateConnecting = "connecting"
	StateClosed     = "close"
)

// Event is a typed provider event delivered on an Instance's event channel.
type Event interface {
	event()
}

// QRIssued carries a fresh QR payload awaiting a scan.
type QRIssued struct {
	Code string
}

// StatusChanged reports a connection-state update. PhoneNumber is set once
// the provider knows the authenticated number.
type StatusChanged struct {
	State       string
	PhoneNumber string
}

// MessageReceived is an inbound message. FromSelf distinguishes the user's
// own sends from messages eligible for auto-response.
type MessageReceived struct {
	From     string
	Text     string
	FromSelf bool
}

func (QRIssued) event()        {}
func (StatusChanged) event()   {}
func (MessageReceived) event() {}

// Instance is one live provider connection.
type Instance interface {
	// Events returns the instance's event stream. The channel is closed
	// when the instance shuts down.
	Events() <-chan Event

	// SendText delivers a plain text message to a phone number.
	SendText(ctx context.Context, toPhone, text string) error

	Close() error
}

// Provider starts connection instances. Instance names are stable per user.
type Provider interface {
	Start(ctx context.Context, instanceName string) (Instance, error)
}
