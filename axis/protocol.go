package axis

import (
	"github.com/yogotie/vunit/sim"
	"github.com/yogotie/vunit/vc"
)

// ProtocolChecker passively asserts handshake legality on a bus:
//
//   - once TVALID is asserted it must stay asserted until TREADY completes
//     the handshake
//   - the payload signals must hold their values while the transfer is
//     stalled (TVALID high, TREADY low)
//
// Violations are raised through the checker and never influence the
// execution engine or in-flight transactions.
type ProtocolChecker struct {
	cfg vc.Config
	bus *Bus

	stalled bool
	held    Transaction
}

// NewProtocolChecker builds a protocol checker on the given bus and
// registers it with the simulator.
func NewProtocolChecker(s *sim.Simulator, cfg vc.Config, bus *Bus) *ProtocolChecker {
	p := &ProtocolChecker{cfg: cfg, bus: bus}
	s.Register(p)
	return p
}

// Tick evaluates the protocol rules at the clock edge.
func (p *ProtocolChecker) Tick(*sim.Simulator) {
	valid := p.bus.TValid.Read()
	ready := p.bus.TReady.Read()

	if p.stalled {
		p.cfg.Checker.Check("tvalid held until handshake", valid)
		if valid {
			cur := sampleBus(p.bus)
			p.cfg.Checker.Check("payload stable while stalled", cur == p.held,
				"got", cur, "expected", p.held)
		}
	}

	p.stalled = valid && !ready
	if p.stalled {
		p.held = sampleBus(p.bus)
	}
}
