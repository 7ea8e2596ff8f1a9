package axis

import "github.com/yogotie/vunit/sim"

// Bus bundles the signals of one AXI-Stream interface. TVALID and the
// payload signals are driven by the transmitting side, TREADY by the
// receiving side; data is transferred on every clock edge where TVALID and
// TREADY are both high.
type Bus struct {
	TValid *sim.Signal
	TReady *sim.Signal
	TLast  *sim.Signal
	TData  *sim.Bus
	TKeep  *sim.Bus
	TStrb  *sim.Bus
	TID    *sim.Bus
	TDest  *sim.Bus
	TUser  *sim.Bus
}

// BusConfig sets the side-channel widths of a Bus. Zero widths get the
// customary defaults: keep/strb one bit per data byte, one bit for id, dest
// and user.
type BusConfig struct {
	DataWidth uint
	IDWidth   uint
	DestWidth uint
	UserWidth uint
}

// NewBus allocates all interface signals on the simulator, named with the
// given prefix.
func NewBus(s *sim.Simulator, prefix string, cfg BusConfig) *Bus {
	dataWidth := cfg.DataWidth
	if dataWidth == 0 {
		dataWidth = 8
	}
	byteWidth := dataWidth / 8
	if byteWidth == 0 {
		byteWidth = 1
	}
	width := func(w uint) uint {
		if w == 0 {
			return 1
		}
		return w
	}
	return &Bus{
		TValid: s.Signal(prefix + "_tvalid"),
		TReady: s.Signal(prefix + "_tready"),
		TLast:  s.Signal(prefix + "_tlast"),
		TData:  s.Bus(prefix+"_tdata", dataWidth),
		TKeep:  s.Bus(prefix+"_tkeep", byteWidth),
		TStrb:  s.Bus(prefix+"_tstrb", byteWidth),
		TID:    s.Bus(prefix+"_tid", width(cfg.IDWidth)),
		TDest:  s.Bus(prefix+"_tdest", width(cfg.DestWidth)),
		TUser:  s.Bus(prefix+"_tuser", width(cfg.UserWidth)),
	}
}

// fullMask returns the all-ones value of a width-bit bus.
func fullMask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// sampleBus reads all payload signals into a transaction record.
func sampleBus(b *Bus) Transaction {
	return Transaction{
		Data: b.TData.Read(),
		Last: b.TLast.Read(),
		Keep: b.TKeep.Read(),
		Strb: b.TStrb.Read(),
		ID:   b.TID.Read(),
		Dest: b.TDest.Read(),
		User: b.TUser.Read(),
	}
}
