// Package stream defines the protocol-agnostic streaming message kinds and
// the operations issued against stream capability views. Any agent whose
// handle can be viewed as a vc.StreamMaster or vc.StreamSlave speaks this
// protocol, whatever its bus encoding.
package stream
