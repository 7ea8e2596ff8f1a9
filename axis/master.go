package axis

import (
	"github.com/pkg/errors"

	"github.com/yogotie/vunit/com"
	"github.com/yogotie/vunit/sim"
	"github.com/yogotie/vunit/stream"
	"github.com/yogotie/vunit/vc"
)

// Master is a stream source agent driving TVALID and the payload signals.
// It accepts push requests over the messaging layer and presents the queued
// beats one per handshake, holding each until the slave side accepts it.
type Master struct {
	cfg vc.Config
	net *com.Net
	bus *Bus

	queue  []Transaction
	beat   *Transaction
	parked *parkedRequest
	dead   bool
}

// NewMaster builds a master agent on the given bus and registers its command
// loop and signal driver with the simulator.
func NewMaster(net *com.Net, s *sim.Simulator, cfg vc.Config, bus *Bus) (*Master, error) {
	if net == nil || s == nil || bus == nil {
		return nil, errors.New("axis: master requires a net, a simulator and a bus")
	}
	m := &Master{cfg: cfg, net: net, bus: bus}
	s.Register(sim.ComponentFunc(m.tickFrontEnd))
	s.Register(sim.ComponentFunc(m.tickDriver))
	return m, nil
}

// Identity returns the agent's mailbox endpoint, satisfying vc.Handle.
func (m *Master) Identity() com.Identity { return m.cfg.ID }

// idle reports whether all pushed beats have been transmitted.
func (m *Master) idle() bool { return len(m.queue) == 0 && m.beat == nil }

func (m *Master) tickFrontEnd(*sim.Simulator) {
	if m.dead {
		return
	}
	if m.parked != nil && !m.tryUnpark() {
		return
	}
	for !m.dead {
		msg, ok := m.net.TryReceive(m.cfg.ID)
		if !ok {
			return
		}
		m.dispatch(msg)
		if m.parked != nil && !m.tryUnpark() {
			return
		}
	}
}

func (m *Master) dispatch(msg com.Message) {
	switch msg.Kind {
	case stream.KindPush:
		p, ok := msg.Payload.(stream.Payload)
		if !ok {
			m.unexpected(msg)
			return
		}
		m.queue = append(m.queue, Transaction{
			Data: p.Data,
			Last: p.Last,
			Keep: fullMask(m.bus.TKeep.Width()),
			Strb: fullMask(m.bus.TStrb.Width()),
		})
	case KindPush:
		tx, ok := msg.Payload.(Transaction)
		if !ok {
			m.unexpected(msg)
			return
		}
		m.queue = append(m.queue, tx)
	case vc.KindWaitUntilIdle:
		m.parked = &parkedRequest{msg: msg, kind: parkedUntilIdle}
	case vc.KindIsIdle:
		if err := m.net.Reply(msg, m.idle()); err != nil {
			m.cfg.Logger.Error("is-idle reply failed", "agent", m.cfg.ID.String(), "err", err)
		}
	default:
		m.unexpected(msg)
	}
}

func (m *Master) unexpected(msg com.Message) {
	if m.cfg.Policy == vc.IgnoreUnexpected {
		m.cfg.Logger.Debug("dropping unexpected message",
			"agent", m.cfg.ID.String(), "kind", msg.Kind)
		return
	}
	m.cfg.Checker.Fail("unexpected message",
		"agent", m.cfg.ID.String(), "kind", msg.Kind)
	m.cfg.Logger.Error("command loop terminated on unexpected message",
		"agent", m.cfg.ID.String(), "kind", msg.Kind)
	m.dead = true
}

func (m *Master) tryUnpark() bool {
	if !m.idle() {
		return false
	}
	if err := m.net.Reply(m.parked.msg, vc.Ack{}); err != nil {
		m.cfg.Logger.Error("sync reply failed",
			"agent", m.cfg.ID.String(), "kind", m.parked.msg.Kind, "err", err)
	}
	m.parked = nil
	return true
}

// tickDriver presents queued beats on the bus. A beat stays driven until the
// edge where TVALID and TREADY are both observed high; the next beat, or a
// deasserted TVALID, becomes visible on the following edge.
func (m *Master) tickDriver(*sim.Simulator) {
	if m.beat != nil && m.bus.TValid.Read() && m.bus.TReady.Read() {
		m.beat = nil
	}
	if m.beat == nil {
		if len(m.queue) == 0 {
			m.bus.TValid.Drive(false)
			return
		}
		tx := m.queue[0]
		m.queue = m.queue[1:]
		m.beat = &tx
		m.drive(tx)
	}
}

func (m *Master) drive(tx Transaction) {
	m.bus.TValid.Drive(true)
	m.bus.TLast.Drive(tx.Last)
	m.bus.TData.Drive(tx.Data)
	m.bus.TKeep.Drive(tx.Keep)
	m.bus.TStrb.Drive(tx.Strb)
	m.bus.TID.Drive(tx.ID)
	m.bus.TDest.Drive(tx.Dest)
	m.bus.TUser.Drive(tx.User)
}
