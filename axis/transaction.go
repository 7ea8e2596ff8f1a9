package axis

import (
	"github.com/yogotie/vunit/com"
	"github.com/yogotie/vunit/vc"
)

// Message kinds specific to the AXI-Stream protocol. The generic kinds from
// the stream and vc packages are honored as well.
const (
	// KindPush hands a full transaction, side channels included, to a
	// master for transmission. Fire and forget.
	KindPush = "axi stream push"
	// KindCheck asks a slave to receive the next beat and assert every
	// sampled field matches the expected transaction. No reply; each
	// mismatching field is raised as a separately named failure.
	KindCheck = "axi stream check"
	// KindTransaction is published by a monitor for every beat it
	// observes. The payload is the sampled Transaction.
	KindTransaction = "axi stream transaction"
)

// Transaction is the record of one data beat: the data word plus all side
// channel values sampled at the handshake edge.
type Transaction struct {
	Data uint64
	Last bool
	Keep uint64
	Strb uint64
	ID   uint64
	Dest uint64
	User uint64
}

// StallConfig tunes randomized TREADY back-pressure on a slave. With
// Probability zero the slave accepts as fast as it can; otherwise each
// transaction is preceded, with the given probability, by a stall of
// MinCycles..MaxCycles cycles. A fixed seed makes the pattern reproducible.
type StallConfig struct {
	Probability float64
	MinCycles   int
	MaxCycles   int
}

// StallFromSection converts the testbench-file stall section.
func StallFromSection(s vc.StallSection) StallConfig {
	return StallConfig{Probability: s.Probability, MinCycles: s.MinCycles, MaxCycles: s.MaxCycles}
}

// Push queues a full transaction on a master agent.
func Push(net *com.Net, from com.Identity, m vc.StreamMaster, tx Transaction) error {
	return net.Send(from, m.Identity(), com.Message{Kind: KindPush, Payload: tx})
}

// Check asks a slave agent to receive the next beat and assert all fields of
// the sampled transaction match tx. Mismatches are raised through the
// slave's checker, one named failure per differing field.
func Check(net *com.Net, from com.Identity, s vc.StreamSlave, tx Transaction) error {
	return net.Send(from, s.Identity(), com.Message{Kind: KindCheck, Payload: tx})
}

// SetStall updates a slave's stall configuration for subsequent
// transactions.
func SetStall(net *com.Net, from com.Identity, h vc.Handle, cfg StallConfig) error {
	return vc.SetParameter(net, from, h, cfg)
}
