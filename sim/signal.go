package sim

// Signal is a single-bit wire. Read returns the value committed at the last
// step boundary; Drive stages a value that becomes visible after the current
// step commits. A driven value holds until re-driven. Signals follow a
// single-writer discipline: exactly one component drives a signal, except
// handshake lines explicitly shared by a protocol.
type Signal struct {
	name string
	cur  bool
	next bool
}

// Name returns the signal name.
func (s *Signal) Name() string { return s.name }

// Read returns the committed value.
func (s *Signal) Read() bool { return s.cur }

// Drive stages v for the next step boundary.
func (s *Signal) Drive(v bool) { s.next = v }

func (s *Signal) commit() { s.cur = s.next }

// Bus is a multi-bit wire holding up to 64 bits. Values are masked to the
// bus width on Drive. Semantics match Signal.
type Bus struct {
	name  string
	width uint
	mask  uint64
	cur   uint64
	next  uint64
}

// Name returns the bus name.
func (b *Bus) Name() string { return b.name }

// Width returns the bus width in bits.
func (b *Bus) Width() uint { return b.width }

// Read returns the committed value.
func (b *Bus) Read() uint64 { return b.cur }

// Drive stages v, masked to the bus width, for the next step boundary.
func (b *Bus) Drive(v uint64) { b.next = v & b.mask }

func (b *Bus) commit() { b.cur = b.next }
