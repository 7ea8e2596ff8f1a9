// Package axis implements verification components for a ready/valid
// streaming bus in the AXI-Stream style: a slave agent that executes queued
// pop and check transactions clock-synchronously, a minimal master agent
// used as stimulus, a passive monitor publishing a report for every beat it
// observes, and a passive protocol checker asserting handshake legality.
//
// The slave agent is the worked example of the dual-stage pipeline: an
// asynchronous command front end accepts requests from the messaging layer
// and queues work, while the bus execution engine drains that queue in
// strict arrival order on clock edges. The two stages share a pending-token
// queue whose emptiness defines idle.
package axis
