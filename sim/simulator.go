package sim

import (
	"time"

	"github.com/yogotie/vunit/logging"
)

// Component is stepped once per clock cycle, at the rising edge. Components
// run in registration order.
type Component interface {
	Tick(s *Simulator)
}

// ComponentFunc adapts a plain function to the Component interface.
type ComponentFunc func(s *Simulator)

// Tick calls f.
func (f ComponentFunc) Tick(s *Simulator) { f(s) }

// Simulator advances a set of components and signals cycle by cycle. One
// Step is one clock cycle: every component ticks in registration order
// against the previously committed signal values, then all staged signal
// values commit and simulated time advances by the clock period.
type Simulator struct {
	logger  logging.Logger
	period  time.Duration
	cycle   uint64
	now     time.Duration
	comps   []Component
	signals []*Signal
	buses   []*Bus
}

// New creates a simulator with the given clock period. A nil logger disables
// diagnostics.
func New(period time.Duration, logger logging.Logger) *Simulator {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	if period <= 0 {
		period = time.Nanosecond
	}
	return &Simulator{logger: logger, period: period}
}

// Signal allocates a named single-bit wire, initially low.
func (s *Simulator) Signal(name string) *Signal {
	sig := &Signal{name: name}
	s.signals = append(s.signals, sig)
	return sig
}

// Bus allocates a named wire of the given width (1..64 bits), initially zero.
func (s *Simulator) Bus(name string, width uint) *Bus {
	if width == 0 || width > 64 {
		width = 64
	}
	var mask uint64
	if width == 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << width) - 1
	}
	b := &Bus{name: name, width: width, mask: mask}
	s.buses = append(s.buses, b)
	return b
}

// Register appends a component to the per-cycle evaluation order.
func (s *Simulator) Register(c Component) {
	s.comps = append(s.comps, c)
}

// Step advances the simulation by one clock cycle.
func (s *Simulator) Step() {
	for _, c := range s.comps {
		c.Tick(s)
	}
	for _, sig := range s.signals {
		sig.commit()
	}
	for _, b := range s.buses {
		b.commit()
	}
	s.cycle++
	s.now += s.period
}

// Run advances the simulation by n clock cycles.
func (s *Simulator) Run(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// RunFor advances the simulation until at least d of simulated time has
// passed.
func (s *Simulator) RunFor(d time.Duration) {
	deadline := s.now + d
	for s.now < deadline {
		s.Step()
	}
}

// RunUntil steps the simulation until cond returns true or limit cycles have
// elapsed. It reports whether cond held before the limit.
func (s *Simulator) RunUntil(cond func() bool, limit int) bool {
	for i := 0; i < limit; i++ {
		if cond() {
			return true
		}
		s.Step()
	}
	return cond()
}

// Cycle returns the number of completed clock cycles.
func (s *Simulator) Cycle() uint64 { return s.cycle }

// Now returns the current simulated time.
func (s *Simulator) Now() time.Duration { return s.now }

// Period returns the clock period.
func (s *Simulator) Period() time.Duration { return s.period }
