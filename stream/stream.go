package stream

import (
	"github.com/yogotie/vunit/com"
	"github.com/yogotie/vunit/vc"
)

// Message kinds of the generic streaming protocol.
const (
	// KindPush hands one data beat to a stream master for transmission.
	// Fire and forget.
	KindPush = "stream push"
	// KindPop requests the next received beat from a stream slave. The
	// reply payload is protocol specific (the slave's transaction record).
	KindPop = "stream pop"
	// KindCheck asks a stream slave to receive the next beat and assert it
	// matches the expected data and last flag. No reply; mismatches are
	// raised through the slave's checker.
	KindCheck = "stream check"
)

// Payload is the generic beat carried by push and check requests: a data
// word and an end-of-packet marker.
type Payload struct {
	Data uint64
	Last bool
}

// Push queues one beat on a stream master.
func Push(net *com.Net, from com.Identity, m vc.StreamMaster, data uint64, last bool) error {
	return net.Send(from, m.Identity(), com.Message{Kind: KindPush, Payload: Payload{Data: data, Last: last}})
}

// Pop requests the next beat from a stream slave. The returned future
// completes with the slave's transaction record.
func Pop(net *com.Net, from com.Identity, s vc.StreamSlave) (*com.Future, error) {
	return net.Request(from, s.Identity(), com.Message{Kind: KindPop})
}

// Check asks a stream slave to receive the next beat and assert its data and
// last flag match.
func Check(net *com.Net, from com.Identity, s vc.StreamSlave, data uint64, last bool) error {
	return net.Send(from, s.Identity(), com.Message{Kind: KindCheck, Payload: Payload{Data: data, Last: last}})
}
