package axis

import (
	"github.com/yogotie/vunit/com"
	"github.com/yogotie/vunit/sim"
	"github.com/yogotie/vunit/vc"
)

// Monitor passively samples a bus and publishes a KindTransaction message,
// under its own identity, for every beat it observes a complete handshake
// for. It reports all traffic on the bus, whether or not an execution engine
// requested it. It never drives a signal and never replies.
type Monitor struct {
	cfg vc.Config
	net *com.Net
	bus *Bus
}

// NewMonitor builds a monitor on the given bus and registers it with the
// simulator. The config's identity becomes the publication endpoint.
func NewMonitor(net *com.Net, s *sim.Simulator, cfg vc.Config, bus *Bus) *Monitor {
	m := &Monitor{cfg: cfg, net: net, bus: bus}
	s.Register(m)
	return m
}

// Identity returns the monitor's publication endpoint.
func (m *Monitor) Identity() com.Identity { return m.cfg.ID }

// Idle reports whether no transfer is in flight: the transmitting side is
// not offering data.
func (m *Monitor) Idle() bool { return !m.bus.TValid.Read() }

// Tick samples the handshake at the clock edge and publishes one report per
// completed beat.
func (m *Monitor) Tick(*sim.Simulator) {
	if !m.bus.TValid.Read() || !m.bus.TReady.Read() {
		return
	}
	tx := sampleBus(m.bus)
	if err := m.net.Publish(m.cfg.ID, com.Message{Kind: KindTransaction, Payload: tx}); err != nil {
		m.cfg.Logger.Error("monitor publish failed",
			"monitor", m.cfg.ID.String(), "err", err)
	}
}
