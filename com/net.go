package com

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/yogotie/vunit/logging"
)

// ErrUnknownIdentity is returned when a message is addressed to an identity
// the Net did not allocate.
var ErrUnknownIdentity = errors.New("com: unknown identity")

// ErrNoReplySlot is returned by Reply when the original message was not sent
// with Request.
var ErrNoReplySlot = errors.New("com: message does not expect a reply")

// ErrAlreadyReplied is returned by Reply when the request was already
// answered.
var ErrAlreadyReplied = errors.New("com: request already replied to")

// Net owns every mailbox and subscription in one simulation run. All state is
// in memory and scoped to the run; there is no persistence.
type Net struct {
	mu     sync.Mutex
	logger logging.Logger
	boxes  map[uuid.UUID]*mailbox
	subs   map[uuid.UUID][]Identity // publisher -> subscribers
}

type mailbox struct {
	queue   []Message
	arrival *sync.Cond
}

// NewNet creates an empty messaging substrate. A nil logger disables
// diagnostics.
func NewNet(logger logging.Logger) *Net {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Net{
		logger: logger,
		boxes:  make(map[uuid.UUID]*mailbox),
		subs:   make(map[uuid.UUID][]Identity),
	}
}

// NewIdentity allocates a fresh identity with its own empty mailbox.
func (n *Net) NewIdentity(name string) Identity {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := Identity{id: uuid.New(), name: name}
	n.boxes[id.id] = &mailbox{arrival: sync.NewCond(&n.mu)}
	n.logger.Debug("identity allocated", "identity", id.String())
	return id
}

func (n *Net) box(id Identity) (*mailbox, error) {
	b, ok := n.boxes[id.id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownIdentity, "%s", id)
	}
	return b, nil
}

func (n *Net) deliver(to Identity, m Message) error {
	b, err := n.box(to)
	if err != nil {
		return err
	}
	b.queue = append(b.queue, m)
	b.arrival.Broadcast()
	return nil
}

// Send appends a fire-and-forget message to the target mailbox. It never
// blocks; mailboxes are unbounded.
func (n *Net) Send(from, to Identity, m Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	m.ID = NewID()
	m.Sender = from
	m.future = nil
	return n.deliver(to, m)
}

// Request sends a message that expects a correlated reply and returns the
// future the reply will complete.
func (n *Net) Request(from, to Identity, m Message) (*Future, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	m.ID = NewID()
	m.Sender = from
	m.future = newFuture()
	if err := n.deliver(to, m); err != nil {
		return nil, err
	}
	return m.future, nil
}

// Reply completes the future attached to a received request. The payload
// reaches the requester regardless of which identity handled the message.
func (n *Net) Reply(orig Message, payload any) error {
	if orig.future == nil {
		return errors.Wrapf(ErrNoReplySlot, "kind %q id %s", orig.Kind, orig.ID)
	}
	if !orig.future.complete(payload) {
		return errors.Wrapf(ErrAlreadyReplied, "kind %q id %s", orig.Kind, orig.ID)
	}
	return nil
}

// TryReceive pops the oldest message from the identity's mailbox, reporting
// false when the mailbox is empty. This is the receive primitive for polled
// consumers.
func (n *Net) TryReceive(id Identity) (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	b, err := n.box(id)
	if err != nil {
		return Message{}, false
	}
	if len(b.queue) == 0 {
		return Message{}, false
	}
	m := b.queue[0]
	b.queue = b.queue[1:]
	return m, true
}

// Receive blocks until a message is available in the identity's mailbox or
// ctx is done.
func (n *Net) Receive(ctx context.Context, id Identity) (Message, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	b, err := n.box(id)
	if err != nil {
		return Message{}, err
	}
	stop := context.AfterFunc(ctx, func() {
		n.mu.Lock()
		b.arrival.Broadcast()
		n.mu.Unlock()
	})
	defer stop()
	for len(b.queue) == 0 {
		if ctx.Err() != nil {
			return Message{}, ctx.Err()
		}
		b.arrival.Wait()
	}
	m := b.queue[0]
	b.queue = b.queue[1:]
	return m, nil
}

// Pending returns the number of undelivered messages in the identity's
// mailbox.
func (n *Net) Pending(id Identity) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	b, err := n.box(id)
	if err != nil {
		return 0
	}
	return len(b.queue)
}

// Subscribe registers subscriber to receive a copy of every message published
// from publisher. Subscribing twice has no additional effect.
func (n *Net) Subscribe(subscriber, publisher Identity) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := n.box(subscriber); err != nil {
		return err
	}
	if _, err := n.box(publisher); err != nil {
		return err
	}
	for _, s := range n.subs[publisher.id] {
		if s == subscriber {
			return nil
		}
	}
	n.subs[publisher.id] = append(n.subs[publisher.id], subscriber)
	return nil
}

// Publish fans a copy of the message out to every subscriber of from. A
// publisher with no subscribers is not an error; the message is dropped.
func (n *Net) Publish(from Identity, m Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := n.box(from); err != nil {
		return err
	}
	m.ID = NewID()
	m.Sender = from
	m.future = nil
	for _, sub := range n.subs[from.id] {
		if err := n.deliver(sub, m); err != nil {
			return err
		}
	}
	return nil
}
