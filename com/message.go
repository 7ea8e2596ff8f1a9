package com

import "github.com/google/uuid"

// Message is the envelope exchanged between components. Kind names are
// namespaced by the protocol package that defines them (for example
// "stream pop" or "wait until idle"). After a message is sent it should be
// treated as immutable.
type Message struct {
	// ID is a unique correlation identifier assigned on send.
	ID string
	// Kind selects how the receiver interprets Payload.
	Kind string
	// Sender is the identity the message was sent or published from. It is
	// filled in by the Net, not by the caller.
	Sender Identity
	// Payload carries the kind specific request or report data.
	Payload any

	// future is non-nil when the sender expects a correlated reply.
	future *Future
}

// NewID generates a new unique message identifier.
func NewID() string { return uuid.NewString() }

// ExpectsReply reports whether the message was sent with Request and has not
// been stripped of its reply slot.
func (m Message) ExpectsReply() bool { return m.future != nil }
