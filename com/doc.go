// Package com implements the asynchronous message passing layer that
// verification components communicate over: opaque identities, one FIFO
// mailbox per identity, fire-and-forget sends, correlated request/reply via
// futures, and publish/subscribe fan-out.
//
// The substrate itself is scheduler agnostic. Polled consumers (bus agents
// stepped by a simulator) use TryReceive; goroutine based consumers use the
// blocking Receive. All operations on a Net are safe for concurrent use.
package com
