package vc

import (
	"github.com/yogotie/vunit/com"
	"github.com/yogotie/vunit/logging"
	"github.com/yogotie/vunit/sim"
)

// Relay forwards every message one identity receives to subscribers of
// another, unchanged. Its canonical use is monitor composition: the relay
// subscribes to a monitor's identity and republishes each report under the
// owning agent's identity, so subscribers need only know the owner.
type Relay struct {
	net    *com.Net
	logger logging.Logger
	id     com.Identity
	to     com.Identity
}

// NewRelay allocates a relay identity, subscribes it to from, and registers
// the forwarding loop with the simulator.
func NewRelay(net *com.Net, s *sim.Simulator, logger logging.Logger, from, to com.Identity) (*Relay, error) {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	r := &Relay{
		net:    net,
		logger: logger,
		id:     net.NewIdentity(to.Name() + " relay"),
		to:     to,
	}
	if err := net.Subscribe(r.id, from); err != nil {
		return nil, err
	}
	s.Register(r)
	return r, nil
}

// Identity returns the relay's own subscription endpoint.
func (r *Relay) Identity() com.Identity { return r.id }

// Tick drains the relay's mailbox and republishes each message under the
// target identity.
func (r *Relay) Tick(*sim.Simulator) {
	for {
		m, ok := r.net.TryReceive(r.id)
		if !ok {
			return
		}
		if err := r.net.Publish(r.to, com.Message{Kind: m.Kind, Payload: m.Payload}); err != nil {
			r.logger.Error("relay publish failed", "to", r.to.String(), "err", err)
			return
		}
	}
}
