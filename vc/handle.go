package vc

import "github.com/yogotie/vunit/com"

// Handle is anything that exposes a component identity. Capability views
// below are structural projections of a Handle: they carry only the
// identity, add no state, and stay valid exactly as long as the handle they
// were projected from. Any handle exposing an identity can be viewed through
// any identity-only capability; there is no type hierarchy.
type Handle interface {
	Identity() com.Identity
}

// SyncHandle is the synchronization capability: the target of wait-until-
// idle, wait-for-time and is-idle requests.
type SyncHandle struct {
	id com.Identity
}

// AsSync projects a handle onto its synchronization capability.
func AsSync(h Handle) SyncHandle { return SyncHandle{id: h.Identity()} }

// Identity returns the projected identity.
func (h SyncHandle) Identity() com.Identity { return h.id }

// StreamSlave is the stream-sink capability: the target of pop and check
// requests.
type StreamSlave struct {
	id com.Identity
}

// AsStreamSlave projects a handle onto its stream-sink capability.
func AsStreamSlave(h Handle) StreamSlave { return StreamSlave{id: h.Identity()} }

// Identity returns the projected identity.
func (h StreamSlave) Identity() com.Identity { return h.id }

// StreamMaster is the stream-source capability: the target of push requests.
type StreamMaster struct {
	id com.Identity
}

// AsStreamMaster projects a handle onto its stream-source capability.
func AsStreamMaster(h Handle) StreamMaster { return StreamMaster{id: h.Identity()} }

// Identity returns the projected identity.
func (h StreamMaster) Identity() com.Identity { return h.id }
