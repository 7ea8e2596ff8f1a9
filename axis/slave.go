package axis

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/yogotie/vunit/com"
	"github.com/yogotie/vunit/sim"
	"github.com/yogotie/vunit/stream"
	"github.com/yogotie/vunit/vc"
)

// workKind classifies a queued transaction request.
type workKind int

const (
	workPop workKind = iota
	workCheck
)

// fieldMask selects which sampled fields a check compares.
type fieldMask uint8

const (
	fieldData fieldMask = 1 << iota
	fieldLast
	fieldKeep
	fieldStrb
	fieldID
	fieldDest
	fieldUser

	allFields = fieldData | fieldLast | fieldKeep | fieldStrb | fieldID | fieldDest | fieldUser
)

// workItem is one accepted transaction request. Items are created when the
// front end classifies a message and consumed exactly once by the engine, in
// arrival order.
type workItem struct {
	msg      com.Message
	kind     workKind
	expected Transaction
	fields   fieldMask
}

// pendingToken marks one in-flight pop or check. The token queue's emptiness
// defines idle.
type pendingToken struct {
	requestID string
}

// parkedKind classifies the blocking request the front end is parked on.
type parkedKind int

const (
	parkedUntilIdle parkedKind = iota
	parkedForTime
)

// parkedRequest is the single blocking request the front end may hold. While
// parked the loop stops receiving; already queued work keeps executing in
// the engine.
type parkedRequest struct {
	msg      com.Message
	kind     parkedKind
	duration time.Duration
	deadline time.Duration
	timing   bool
}

// engineState is the bus execution engine's coarse state.
type engineState int

const (
	engineIdle engineState = iota
	engineDraining
)

// Slave is a stream sink agent. Its command front end accepts pop, check,
// synchronization and parameter messages; its execution engine performs the
// ready/valid handshake on clock edges, draining accepted work in strict
// arrival order. An optional monitor and protocol checker observe the same
// signals passively.
type Slave struct {
	cfg vc.Config
	net *com.Net
	sim *sim.Simulator
	bus *Bus

	// front end <-> engine. Single producer (front end), single consumer
	// (engine); both run on the simulator's scheduler so no lock is
	// needed.
	queue  []workItem
	tokens []pendingToken

	// pulse toggles after every completion. Waiters re-test their idle
	// predicate when woken; completions may coalesce into one observed
	// toggle, so the toggle is never counted.
	pulse       bool
	completions uint64

	parked *parkedRequest
	dead   bool

	stall StallConfig
	rng   *rand.Rand

	state     engineState
	inflight  *workItem
	stallLeft int

	monitor  *Monitor
	protocol *ProtocolChecker
	relay    *vc.Relay
}

// SlaveOption configures optional slave composition.
type SlaveOption func(*slaveOptions)

type slaveOptions struct {
	withMonitor  bool
	withProtocol bool
	stall        StallConfig
	seed         int64
}

// WithMonitor attaches a passive monitor plus a relay republishing its
// reports under the slave's identity.
func WithMonitor() SlaveOption {
	return func(o *slaveOptions) { o.withMonitor = true }
}

// WithProtocolChecker attaches a passive protocol checker on the same
// signals.
func WithProtocolChecker() SlaveOption {
	return func(o *slaveOptions) { o.withProtocol = true }
}

// WithStall sets the initial stall configuration and the seed of the
// random source behind it.
func WithStall(cfg StallConfig, seed int64) SlaveOption {
	return func(o *slaveOptions) {
		o.stall = cfg
		o.seed = seed
	}
}

// NewSlave builds a slave agent on the given bus and registers its front end
// and engine with the simulator. Monitor and protocol checker are composed
// only when the corresponding options are given; absent, they cost nothing.
func NewSlave(net *com.Net, s *sim.Simulator, cfg vc.Config, bus *Bus, opts ...SlaveOption) (*Slave, error) {
	if net == nil || s == nil || bus == nil {
		return nil, errors.New("axis: slave requires a net, a simulator and a bus")
	}
	var o slaveOptions
	for _, opt := range opts {
		opt(&o)
	}

	sl := &Slave{
		cfg:   cfg,
		net:   net,
		sim:   s,
		bus:   bus,
		stall: o.stall,
		rng:   rand.New(rand.NewSource(o.seed)),
	}
	s.Register(sim.ComponentFunc(sl.tickFrontEnd))
	s.Register(sim.ComponentFunc(sl.tickEngine))

	if o.withMonitor {
		mcfg := vc.Config{
			ID:      net.NewIdentity(cfg.ID.Name() + " monitor"),
			Logger:  cfg.Logger,
			Checker: cfg.Checker,
			Policy:  cfg.Policy,
		}
		sl.monitor = NewMonitor(net, s, mcfg, bus)
		relay, err := vc.NewRelay(net, s, cfg.Logger, sl.monitor.Identity(), cfg.ID)
		if err != nil {
			return nil, err
		}
		sl.relay = relay
	}
	if o.withProtocol {
		sl.protocol = NewProtocolChecker(s, cfg, bus)
	}
	return sl, nil
}

// Identity returns the agent's mailbox endpoint, satisfying vc.Handle so the
// slave can be viewed as a sync or stream capability.
func (s *Slave) Identity() com.Identity { return s.cfg.ID }

// Monitor returns the attached monitor, or nil.
func (s *Slave) Monitor() *Monitor { return s.monitor }

// ProtocolChecker returns the attached protocol checker, or nil.
func (s *Slave) ProtocolChecker() *ProtocolChecker { return s.protocol }

// Completions returns the number of executed pop/check transactions.
func (s *Slave) Completions() uint64 { return s.completions }

// idle reports the synchronization predicate: no pending tokens and, when a
// monitor is attached, no traffic in flight on the bus.
func (s *Slave) idle() bool {
	if len(s.tokens) > 0 {
		return false
	}
	if s.monitor != nil && !s.monitor.Idle() {
		return false
	}
	return true
}

// tickFrontEnd is the command loop. It drains the mailbox every cycle unless
// parked on a blocking request; a parked loop re-tests its predicate and
// resumes receiving the moment it clears. Blocking one request never starves
// already accepted work: that proceeds independently in the engine.
func (s *Slave) tickFrontEnd(*sim.Simulator) {
	if s.dead {
		return
	}
	if s.parked != nil && !s.tryUnpark() {
		return
	}
	for !s.dead {
		m, ok := s.net.TryReceive(s.cfg.ID)
		if !ok {
			return
		}
		s.dispatch(m)
		if s.parked != nil && !s.tryUnpark() {
			return
		}
	}
}

func (s *Slave) dispatch(m com.Message) {
	switch m.Kind {
	case stream.KindPop:
		s.accept(workItem{msg: m, kind: workPop})
	case stream.KindCheck:
		p, ok := m.Payload.(stream.Payload)
		if !ok {
			s.unexpected(m)
			return
		}
		s.accept(workItem{
			msg:      m,
			kind:     workCheck,
			expected: Transaction{Data: p.Data, Last: p.Last},
			fields:   fieldData | fieldLast,
		})
	case KindCheck:
		tx, ok := m.Payload.(Transaction)
		if !ok {
			s.unexpected(m)
			return
		}
		s.accept(workItem{msg: m, kind: workCheck, expected: tx, fields: allFields})
	case vc.KindWaitUntilIdle:
		s.parked = &parkedRequest{msg: m, kind: parkedUntilIdle}
	case vc.KindWaitForTime:
		d, ok := m.Payload.(time.Duration)
		if !ok {
			s.unexpected(m)
			return
		}
		s.parked = &parkedRequest{msg: m, kind: parkedForTime, duration: d}
	case vc.KindIsIdle:
		if err := s.net.Reply(m, s.idle()); err != nil {
			s.cfg.Logger.Error("is-idle reply failed", "agent", s.cfg.ID.String(), "err", err)
		}
	case vc.KindSetParameter:
		cfg, ok := m.Payload.(StallConfig)
		if !ok {
			s.unexpected(m)
			return
		}
		s.stall = cfg
		s.cfg.Logger.Debug("stall configuration updated",
			"agent", s.cfg.ID.String(), "probability", cfg.Probability,
			"min", cfg.MinCycles, "max", cfg.MaxCycles)
	default:
		s.unexpected(m)
	}
}

// accept queues a transaction request and pushes its pending token.
func (s *Slave) accept(it workItem) {
	s.queue = append(s.queue, it)
	s.tokens = append(s.tokens, pendingToken{requestID: it.msg.ID})
}

// unexpected applies the unexpected-message policy: fatal assertion
// terminating this command loop, or a silent drop. A dead front end leaves
// the engine untouched; already accepted work still executes.
func (s *Slave) unexpected(m com.Message) {
	if s.cfg.Policy == vc.IgnoreUnexpected {
		s.cfg.Logger.Debug("dropping unexpected message",
			"agent", s.cfg.ID.String(), "kind", m.Kind)
		return
	}
	s.cfg.Checker.Fail("unexpected message",
		"agent", s.cfg.ID.String(), "kind", m.Kind)
	s.cfg.Logger.Error("command loop terminated on unexpected message",
		"agent", s.cfg.ID.String(), "kind", m.Kind)
	s.dead = true
}

// tryUnpark re-tests the parked request's predicate, replying and clearing
// the park when it holds.
func (s *Slave) tryUnpark() bool {
	p := s.parked
	switch p.kind {
	case parkedUntilIdle:
		if !s.idle() {
			return false
		}
	case parkedForTime:
		if !p.timing {
			if len(s.tokens) > 0 {
				return false
			}
			p.deadline = s.sim.Now() + p.duration
			p.timing = true
		}
		if s.sim.Now() < p.deadline {
			return false
		}
	}
	if err := s.net.Reply(p.msg, vc.Ack{}); err != nil {
		s.cfg.Logger.Error("sync reply failed",
			"agent", s.cfg.ID.String(), "kind", p.msg.Kind, "err", err)
	}
	s.parked = nil
	return true
}

// tickEngine is the bus execution engine: on each clock edge it drains the
// work queue in strict arrival order, one ready/valid handshake per item.
func (s *Slave) tickEngine(*sim.Simulator) {
	switch s.state {
	case engineIdle:
		if len(s.queue) == 0 {
			s.bus.TReady.Drive(false)
			return
		}
		s.state = engineDraining
		s.drain()
	case engineDraining:
		s.drain()
	}
}

func (s *Slave) drain() {
	if s.inflight == nil {
		if len(s.queue) == 0 {
			s.state = engineIdle
			s.bus.TReady.Drive(false)
			return
		}
		it := s.queue[0]
		s.queue = s.queue[1:]
		s.inflight = &it
		s.stallLeft = s.nextStall()
	}
	if s.stallLeft > 0 {
		s.stallLeft--
		s.bus.TReady.Drive(false)
		return
	}
	s.bus.TReady.Drive(true)
	if s.bus.TReady.Read() && s.bus.TValid.Read() {
		s.complete(sampleBus(s.bus))
	}
}

// complete finishes the in-flight item with the transaction sampled at this
// edge: reply or field checks, token pop, notification toggle.
func (s *Slave) complete(tx Transaction) {
	it := s.inflight
	s.inflight = nil
	s.bus.TReady.Drive(false)

	switch it.kind {
	case workPop:
		if err := s.net.Reply(it.msg, tx); err != nil {
			s.cfg.Logger.Error("pop reply failed",
				"agent", s.cfg.ID.String(), "err", err)
		}
	case workCheck:
		s.checkFields(it, tx)
	}

	if len(s.tokens) > 0 {
		s.tokens = s.tokens[1:]
	}
	s.pulse = !s.pulse
	s.completions++
}

// checkFields compares every selected sampled field against the expected
// payload. Comparison continues past the first mismatch; each differing
// field raises its own named failure.
func (s *Slave) checkFields(it *workItem, got Transaction) {
	c := s.cfg.Checker
	want := it.expected
	if it.fields&fieldData != 0 {
		c.Equal("tdata", got.Data, want.Data)
	}
	if it.fields&fieldLast != 0 {
		c.Equal("tlast", got.Last, want.Last)
	}
	if it.fields&fieldKeep != 0 {
		c.Equal("tkeep", got.Keep, want.Keep)
	}
	if it.fields&fieldStrb != 0 {
		c.Equal("tstrb", got.Strb, want.Strb)
	}
	if it.fields&fieldID != 0 {
		c.Equal("tid", got.ID, want.ID)
	}
	if it.fields&fieldDest != 0 {
		c.Equal("tdest", got.Dest, want.Dest)
	}
	if it.fields&fieldUser != 0 {
		c.Equal("tuser", got.User, want.User)
	}
}

// nextStall draws the stall length preceding the next transaction.
func (s *Slave) nextStall() int {
	if s.stall.Probability <= 0 {
		return 0
	}
	if s.rng.Float64() >= s.stall.Probability {
		return 0
	}
	min, max := s.stall.MinCycles, s.stall.MaxCycles
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return min + s.rng.Intn(max-min+1)
}
