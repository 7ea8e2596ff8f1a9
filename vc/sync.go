package vc

import (
	"time"

	"github.com/yogotie/vunit/com"
)

// Message kinds of the generic synchronization protocol. Every command-loop
// based component is expected to honor these.
const (
	// KindWaitUntilIdle requests an ack once no accepted transaction
	// remains unexecuted (and an attached monitor, if any, reports idle).
	KindWaitUntilIdle = "wait until idle"
	// KindWaitForTime requests an ack once the component has drained its
	// pending work and the given duration of simulated time has elapsed.
	KindWaitForTime = "wait for time"
	// KindIsIdle requests an immediate boolean reply, without blocking the
	// command loop.
	KindIsIdle = "is idle"
)

// Ack is the empty payload acknowledging a completed blocking request.
type Ack struct{}

// WaitUntilIdle asks the component behind h to reply once it is idle. The
// returned future completes with Ack.
func WaitUntilIdle(net *com.Net, from com.Identity, h SyncHandle) (*com.Future, error) {
	return net.Request(from, h.Identity(), com.Message{Kind: KindWaitUntilIdle})
}

// WaitForTime asks the component behind h to reply once its pending work has
// drained and d of simulated time has passed. The returned future completes
// with Ack.
func WaitForTime(net *com.Net, from com.Identity, h SyncHandle, d time.Duration) (*com.Future, error) {
	return net.Request(from, h.Identity(), com.Message{Kind: KindWaitForTime, Payload: d})
}

// IsIdle asks the component behind h whether it is idle right now. The
// returned future completes with a bool; the query never blocks the
// component's command loop.
func IsIdle(net *com.Net, from com.Identity, h SyncHandle) (*com.Future, error) {
	return net.Request(from, h.Identity(), com.Message{Kind: KindIsIdle})
}
